package lint

import (
	"fmt"

	"github.com/yacobolo/uikit"
)

// Config holds linting configuration.
type Config struct {
	ScanPaths []string // glob patterns, e.g. "internal/web/**/*.templ"
	Strict    bool     // exit nonzero on any issue (CI mode)

	// Output configuration
	MaxIssues        int // 0 = unlimited
	PrintIssuedLines bool
	PrintLinterName  bool
	UseColors        bool
}

// Result contains the linting analysis.
type Result struct {
	Issues         []Issue
	FilesScanned   int
	ListsScanned   int // class lists analyzed
	ConflictCount  int
	DuplicateCount int
	TruncatedCount int // issues removed due to MaxIssues
}

// ErrorCount returns the number of error-severity issues.
func (r *Result) ErrorCount() int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			n++
		}
	}
	return n
}

// Run scans the configured paths and reports class conflicts.
func Run(config Config) (*Result, error) {
	lists, stats, err := ScanFiles(config.ScanPaths)
	if err != nil {
		return nil, fmt.Errorf("scanning files: %w", err)
	}

	result := &Result{
		FilesScanned: stats.FilesScanned,
		ListsScanned: len(lists),
	}

	for _, list := range lists {
		issues, conflicts, duplicates := analyzeList(list)
		result.Issues = append(result.Issues, issues...)
		result.ConflictCount += conflicts
		result.DuplicateCount += duplicates
	}

	if config.MaxIssues > 0 && len(result.Issues) > config.MaxIssues {
		result.TruncatedCount = len(result.Issues) - config.MaxIssues
		result.Issues = result.Issues[:config.MaxIssues]
	}

	return result, nil
}

// analyzeList turns the conflicts of one class list into issues.
func analyzeList(list ClassList) (issues []Issue, conflicts, duplicates int) {
	for _, c := range uikit.Conflicts(list.Value) {
		var text string
		if c.Loser == c.Winner {
			text = fmt.Sprintf(IssueDuplicate, c.Loser)
			duplicates++
		} else {
			text = fmt.Sprintf(IssueConflict, c.Loser, c.Winner, c.Winner)
			conflicts++
		}

		column := findTokenColumn(list.Location.Text, c.Loser)
		if column == 0 {
			column = list.Location.Column
		}

		issues = append(issues, Issue{
			FromLinter:  "classmerge",
			Text:        text,
			Severity:    SeverityWarning,
			SourceLines: []string{list.Location.Text},
			Pos: IssuePos{
				Filename: list.Location.File,
				Line:     list.Location.Line,
				Column:   column,
			},
		})
	}
	return issues, conflicts, duplicates
}
