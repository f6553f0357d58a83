package lint

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Reporter formats linting results in golangci-lint style.
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a reporter with the given configuration.
func NewReporter(w io.Writer, config Config) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       shouldUseColors(config),
		printLines:      config.PrintIssuedLines,
		printLinterName: config.PrintLinterName,
	}
}

// shouldUseColors determines if colors should be enabled.
func shouldUseColors(config Config) bool {
	if config.UseColors {
		return true
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}
	if fileInfo, _ := os.Stdout.Stat(); fileInfo != nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}
	return false
}

// PrintIssues outputs issues sorted by file, line, column.
func (r *Reporter) PrintIssues(issues []Issue) {
	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})

	for _, issue := range issues {
		r.printIssue(issue)
	}
}

// printIssue formats one issue: file:line:col: message (linter), then the
// source line with a caret under the losing class.
func (r *Reporter) printIssue(issue Issue) {
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		renderStyle(styleCyan, location, r.useColors),
		issue.Text,
		renderStyle(styleGray, linterSuffix, r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}
		caret := buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", renderStyle(styleYellow, caret, r.useColors))
	}
}

// buildCaretIndicator creates the "^" indicator aligned with the column,
// matching tabs in the prefix so alignment survives mixed indentation.
func buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}
	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}
	return padding.String() + "^"
}

// PrintSummary outputs the issue count summary.
func (r *Reporter) PrintSummary(result Result) {
	fmt.Fprintln(r.w, "")

	total := len(result.Issues)
	if total == 0 {
		fmt.Fprintf(r.w, "%s %d class lists across %d files, no conflicts\n",
			renderStyle(styleGreen, "ok:", r.useColors),
			result.ListsScanned, result.FilesScanned)
		return
	}

	if result.TruncatedCount > 0 {
		fmt.Fprintf(r.w, "%s (%s truncated):\n",
			pluralizeCount(total, "issue", "issues"),
			pluralizeCount(result.TruncatedCount, "issue", "issues"))
	} else {
		fmt.Fprintf(r.w, "%s:\n", pluralizeCount(total, "issue", "issues"))
	}
	fmt.Fprintf(r.w, "* conflicts: %d\n", result.ConflictCount)
	if result.DuplicateCount > 0 {
		fmt.Fprintf(r.w, "* duplicates: %d\n", result.DuplicateCount)
	}
}

func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled.
func (r *Reporter) UseColors() bool {
	return r.useColors
}
