package uikit

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// KV conditionally includes a class. It is the same key/value pair templ
// produces, so values built with templ.KV flow through Classes unchanged.
func KV(name string, condition bool) templ.KeyValue[string, bool] {
	return templ.KV(name, condition)
}

// Classes flattens a heterogeneous list of class inputs into a single
// space-separated class string. Inputs are walked depth-first, left to
// right. Supported inputs:
//
//   - string: split on whitespace, empty strings skipped
//   - int / float: converted to a string token
//   - []any, []string: flattened recursively
//   - map[string]bool: keys with true values, in sorted key order
//     (Go maps are unordered; sorting keeps the result deterministic)
//   - templ.KeyValue[string, bool]: key included when the value is true
//   - fmt.Stringer: its String() value
//   - nil and anything else: ignored
//
// No validation is performed; arbitrary tokens pass through unchanged.
func Classes(inputs ...any) string {
	tokens := appendTokens(nil, inputs)
	return strings.Join(tokens, " ")
}

func appendTokens(tokens []string, inputs []any) []string {
	for _, input := range inputs {
		switch v := input.(type) {
		case nil:
			// skip
		case string:
			tokens = append(tokens, strings.Fields(v)...)
		case int:
			tokens = append(tokens, strconv.Itoa(v))
		case int64:
			tokens = append(tokens, strconv.FormatInt(v, 10))
		case float64:
			tokens = append(tokens, strconv.FormatFloat(v, 'f', -1, 64))
		case float32:
			tokens = append(tokens, strconv.FormatFloat(float64(v), 'f', -1, 32))
		case []any:
			tokens = appendTokens(tokens, v)
		case []string:
			for _, s := range v {
				tokens = append(tokens, strings.Fields(s)...)
			}
		case map[string]bool:
			keys := make([]string, 0, len(v))
			for k, on := range v {
				if on {
					keys = append(keys, k)
				}
			}
			sort.Strings(keys)
			for _, k := range keys {
				tokens = append(tokens, strings.Fields(k)...)
			}
		case templ.KeyValue[string, bool]:
			if v.Value {
				tokens = append(tokens, strings.Fields(v.Key)...)
			}
		case fmt.Stringer:
			tokens = append(tokens, strings.Fields(v.String())...)
		default:
			// Unrecognized input shapes contribute nothing.
		}
	}
	return tokens
}
