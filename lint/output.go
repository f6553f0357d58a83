package lint

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// OutputFormat represents the linter output format.
type OutputFormat string

const (
	// OutputIssues shows errors/warnings in golangci-lint format.
	OutputIssues OutputFormat = "issues"
	// OutputJSON exports structured data for tooling.
	OutputJSON OutputFormat = "json"
	// OutputMarkdown generates a shareable Markdown report.
	OutputMarkdown OutputFormat = "markdown"
)

// DetermineOutputFormat selects the output format from the flag value,
// defaulting to issues.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "json":
		return OutputJSON
	case "markdown", "md":
		return OutputMarkdown
	default:
		return OutputIssues
	}
}

// WriteOutput writes the lint result in the specified format.
func WriteOutput(w io.Writer, result *Result, format OutputFormat, config Config) error {
	switch format {
	case OutputJSON:
		return WriteJSON(w, result)
	case OutputMarkdown:
		return WriteMarkdown(w, result)
	default:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
		return nil
	}
}

// JSONOutput is the structured JSON export schema.
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Issues    []JSONIssue `json:"issues"`
}

// JSONSummary contains high-level counts.
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Conflicts    int `json:"conflicts"`
	Duplicates   int `json:"duplicates"`
	FilesScanned int `json:"files_scanned"`
	ListsScanned int `json:"lists_scanned"`
}

// JSONIssue is one issue in the export.
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"`
}

// WriteJSON writes the lint result as indented JSON.
func WriteJSON(w io.Writer, result *Result) error {
	issues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		issues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	output := JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Conflicts:    result.ConflictCount,
			Duplicates:   result.DuplicateCount,
			FilesScanned: result.FilesScanned,
			ListsScanned: result.ListsScanned,
		},
		Issues: issues,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// WriteMarkdown writes the lint result as a Markdown report.
func WriteMarkdown(w io.Writer, result *Result) error {
	fmt.Fprintln(w, "# Class conflict report")
	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "Generated: %s\n\n", time.Now().Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "- Files scanned: %d\n", result.FilesScanned)
	fmt.Fprintf(w, "- Class lists analyzed: %d\n", result.ListsScanned)
	fmt.Fprintf(w, "- Conflicts: %d\n", result.ConflictCount)
	fmt.Fprintf(w, "- Duplicates: %d\n\n", result.DuplicateCount)

	if len(result.Issues) == 0 {
		fmt.Fprintln(w, "No issues found.")
		return nil
	}

	fmt.Fprintln(w, "| Location | Issue |")
	fmt.Fprintln(w, "|---|---|")
	for _, issue := range result.Issues {
		fmt.Fprintf(w, "| `%s:%d:%d` | %s |\n",
			issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column, issue.Text)
	}
	return nil
}
