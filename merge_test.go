package uikit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "later padding wins",
			input:    "p-2 p-4",
			expected: "p-4",
		},
		{
			name:     "later background wins",
			input:    "bg-red-500 bg-blue-500",
			expected: "bg-blue-500",
		},
		{
			name:     "winner takes the later position",
			input:    "p-2 shadow p-4",
			expected: "shadow p-4",
		},
		{
			name:     "different groups never conflict",
			input:    "p-2 m-2 px-4",
			expected: "p-2 m-2 px-4",
		},
		{
			name:     "variant prefixes keep groups apart",
			input:    "p-2 hover:p-4 md:p-8",
			expected: "p-2 hover:p-4 md:p-8",
		},
		{
			name:     "same variant prefix conflicts",
			input:    "hover:bg-red-500 hover:bg-blue-500",
			expected: "hover:bg-blue-500",
		},
		{
			name:     "stacked prefixes",
			input:    "md:hover:p-2 md:hover:p-4",
			expected: "md:hover:p-4",
		},
		{
			name:     "text color vs text size are separate groups",
			input:    "text-sm text-red-500 text-lg",
			expected: "text-red-500 text-lg",
		},
		{
			name:     "text align is its own group",
			input:    "text-left text-red-500 text-center",
			expected: "text-red-500 text-center",
		},
		{
			name:     "border width vs border color",
			input:    "border-2 border-red-500 border-4",
			expected: "border-red-500 border-4",
		},
		{
			name:     "bare border conflicts with numbered widths",
			input:    "border border-2",
			expected: "border-2",
		},
		{
			name:     "display keywords conflict",
			input:    "block flex hidden",
			expected: "hidden",
		},
		{
			name:     "radius sides are separate groups",
			input:    "rounded-l-none rounded-r-none",
			expected: "rounded-l-none rounded-r-none",
		},
		{
			name:     "shorthand radius conflicts with itself",
			input:    "rounded-md rounded-none",
			expected: "rounded-none",
		},
		{
			name:     "negative margins group with positive",
			input:    "-ml-px ml-2",
			expected: "ml-2",
		},
		{
			name:     "unknown tokens pass through in order",
			input:    "btn btn--brand p-2",
			expected: "btn btn--brand p-2",
		},
		{
			name:     "unknown duplicates are dropped",
			input:    "btn p-2 btn",
			expected: "btn p-2",
		},
		{
			name:     "font weight vs family",
			input:    "font-sans font-bold font-serif",
			expected: "font-bold font-serif",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Merge(tt.input))
		})
	}
}

func TestMergeIdempotent(t *testing.T) {
	inputs := []string{
		"p-2 p-4 bg-red-500 bg-blue-500 btn shadow-sm shadow",
		"text-sm text-lg text-red-500 hover:p-2 hover:p-4",
		"block flex rounded-md rounded-lg border border-2 border-red-500",
	}
	for _, in := range inputs {
		once := Merge(in)
		assert.Equal(t, once, Merge(once), "Merge(%q)", in)
	}
}

func TestResolve(t *testing.T) {
	got := Resolve("rounded-md p-2", map[string]bool{"p-4": true}, KV("bg-white", true))
	require.Equal(t, "rounded-md p-4 bg-white", got)
}

func TestCategoryKey(t *testing.T) {
	tests := []struct {
		token string
		key   string
		known bool
	}{
		{"p-4", "p", true},
		{"px-2", "px", true},
		{"bg-red-500", "bg", true},
		{"hover:bg-red-500", "hover:bg", true},
		{"md:hover:p-2", "md:hover:p", true},
		{"text-sm", "text-size", true},
		{"text-red-500", "text-color", true},
		{"text-center", "text-align", true},
		{"font-bold", "font-weight", true},
		{"font-sans", "font-family", true},
		{"border", "border-w", true},
		{"border-2", "border-w", true},
		{"border-[3px]", "border-w", true},
		{"border-red-500", "border-color", true},
		{"border-t-2", "border-t-w", true},
		{"ring-2", "ring-w", true},
		{"ring-blue-500", "ring-color", true},
		{"flex", "display", true},
		{"flex-col", "flex-direction", true},
		{"absolute", "position", true},
		{"-ml-px", "ml", true},
		{"rounded", "rounded", true},
		{"rounded-tl-sm", "rounded-tl", true},
		{"max-w-lg", "max-w", true},
		{"translate-x-1/2", "translate-x", true},
		{"btn--brand", "", false},
		{"custom-thing", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			key, known := CategoryKey(tt.token)
			require.Equal(t, tt.known, known)
			if tt.known {
				assert.Equal(t, tt.key, key)
			}
		})
	}
}

func TestConflicts(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Conflict
	}{
		{
			name:  "single conflict",
			input: "p-2 p-4",
			expected: []Conflict{
				{Loser: "p-2", Winner: "p-4"},
			},
		},
		{
			name:  "chain reports each displaced token",
			input: "p-2 p-4 p-8",
			expected: []Conflict{
				{Loser: "p-2", Winner: "p-4"},
				{Loser: "p-4", Winner: "p-8"},
			},
		},
		{
			name:  "duplicate unknown token is a self conflict",
			input: "btn btn",
			expected: []Conflict{
				{Loser: "btn", Winner: "btn"},
			},
		},
		{
			name:     "clean list",
			input:    "p-2 m-2 btn",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Conflicts(tt.input))
		})
	}
}
