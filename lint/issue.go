// Package lint detects conflicting utility classes in templ, Go and HTML
// sources. Two classes conflict when they style the same visual property
// under the same variant prefix; at render time the later one wins, so the
// earlier one is dead weight and usually a mistake.
package lint

// Issue represents a single linting violation in golangci-lint format.
type Issue struct {
	FromLinter  string   `json:"FromLinter"` // "classmerge"
	Text        string   `json:"Text"`
	Severity    string   `json:"Severity"`
	SourceLines []string `json:"SourceLines"`
	Pos         IssuePos `json:"Pos"`
}

// IssuePos specifies the exact location of an issue.
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"` // 1-based, start of the losing class
}

// Issue severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue message templates.
const (
	IssueConflict  = "conflicting utility classes %q and %q style the same property; %q wins"
	IssueDuplicate = "duplicate utility class %q"
)
