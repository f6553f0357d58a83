package uikit

import "strings"

// Merge resolves conflicts in a space-separated class string. When two
// tokens share a conflict key (same variant prefix, same conflict group),
// only the last one survives, at the position of its last occurrence.
// Tokens outside every known group pass through in order; exact duplicates
// of such tokens are dropped. Merge is idempotent.
func Merge(classes string) string {
	tokens := strings.Fields(classes)
	if len(tokens) == 0 {
		return ""
	}

	out := make([]string, 0, len(tokens))
	lastByKey := make(map[string]int) // conflict key -> index into out
	seen := make(map[string]bool)     // exact dedup for ungrouped tokens

	for _, tok := range tokens {
		key, ok := CategoryKey(tok)
		if !ok {
			if seen[tok] {
				continue
			}
			seen[tok] = true
			out = append(out, tok)
			continue
		}
		if i, dup := lastByKey[key]; dup {
			out[i] = "" // displaced; the winner takes the later position
		}
		lastByKey[key] = len(out)
		out = append(out, tok)
	}

	return strings.Join(compact(out), " ")
}

// Resolve flattens the inputs with Classes and merges the result. It is the
// entry point every component uses to combine default, variant and caller
// classes, with later inputs winning conflicts.
func Resolve(inputs ...any) string {
	return Merge(Classes(inputs...))
}

// Conflict records a token displaced by a later token in the same group.
type Conflict struct {
	Loser  string
	Winner string
}

// Conflicts reports every conflict a class string contains, in input order
// of the losing token. Duplicate ungrouped tokens are reported as
// self-conflicts (Loser == Winner).
func Conflicts(classes string) []Conflict {
	tokens := strings.Fields(classes)

	var conflicts []Conflict
	lastByKey := make(map[string]int) // conflict key -> token index
	seen := make(map[string]bool)

	for i, tok := range tokens {
		key, ok := CategoryKey(tok)
		if !ok {
			if seen[tok] {
				conflicts = append(conflicts, Conflict{Loser: tok, Winner: tok})
			}
			seen[tok] = true
			continue
		}
		if j, dup := lastByKey[key]; dup {
			conflicts = append(conflicts, Conflict{Loser: tokens[j], Winner: tok})
		}
		lastByKey[key] = i
	}

	return conflicts
}

func compact(tokens []string) []string {
	kept := tokens[:0]
	for _, tok := range tokens {
		if tok != "" {
			kept = append(kept, tok)
		}
	}
	return kept
}
