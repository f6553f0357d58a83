package lint

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/html"
)

// ClassList is one class attribute or class-building call found in a source
// file. The whole space-separated value is kept so conflicts across the list
// can be analyzed together.
type ClassList struct {
	Value    string // "p-2 p-4 rounded-md"
	Location FileLocation
}

// FileLocation tracks where a class list was found.
type FileLocation struct {
	File   string
	Line   int
	Column int    // 1-based column of the value's first token
	Text   string // full line content for source display
}

// ScanStats tracks file scanning statistics.
type ScanStats struct {
	FilesDiscovered int
	FilesScanned    int
	FilesSkipped    int
}

var (
	// Patterns for class lists in templ and Go sources, most specific first.
	linePatterns = []*regexp.Regexp{
		regexp.MustCompile(`class="([^"]+)"`),
		regexp.MustCompile(`class=\{\s*"([^"]+)"`),
		regexp.MustCompile(`templ\.Classes\(\s*"([^"]+)"`),
		regexp.MustCompile(`templ\.KV\(\s*"([^"]+)"`),
		regexp.MustCompile(`uikit\.Classes\(\s*"([^"]+)"`),
		regexp.MustCompile(`uikit\.Resolve\(\s*"([^"]+)"`),
	}

	commentPattern = regexp.MustCompile(`^\s*//`)

	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// isTemplGenerated checks if a file is a templ-generated Go file.
func isTemplGenerated(path string) bool {
	return strings.HasSuffix(path, "_templ.go") ||
		strings.HasSuffix(path, ".templ.go")
}

// loadGitIgnore loads the .gitignore file once, degrading gracefully when it
// does not exist.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile excludes templ-generated files and, for paths inside the
// project, anything matched by .gitignore.
func shouldSkipFile(path string) bool {
	if isTemplGenerated(path) {
		return true
	}
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}
	return false
}

// ScanFiles scans files matching the given glob patterns for class lists.
func ScanFiles(patterns []string) ([]ClassList, ScanStats, error) {
	files, stats, err := expandGlobPatterns(patterns)
	if err != nil {
		return nil, stats, err
	}

	var lists []ClassList
	for _, file := range files {
		found, err := scanFile(file)
		if err != nil {
			// Unreadable files are skipped, not fatal.
			continue
		}
		lists = append(lists, found...)
	}
	return lists, stats, nil
}

// expandGlobPatterns expands doublestar globs to file paths, deduplicated
// and filtered.
func expandGlobPatterns(patterns []string) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}
		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++
			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			seen[match] = true
			allFiles = append(allFiles, match)
			stats.FilesScanned++
		}
	}
	return allFiles, stats, nil
}

// scanFile dispatches on file type: HTML gets a real tokenizer, templ and Go
// sources are matched line by line.
func scanFile(path string) ([]ClassList, error) {
	if strings.HasSuffix(path, ".html") || strings.HasSuffix(path, ".htm") {
		return scanHTMLFile(path)
	}
	return scanLineFile(path)
}

func scanLineFile(path string) ([]ClassList, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lists []ClassList
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		lists = append(lists, extractFromLine(line, lineNum, path)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lists, nil
}

// extractFromLine extracts class lists from one templ/Go source line.
func extractFromLine(line string, lineNum int, file string) []ClassList {
	if commentPattern.MatchString(line) {
		return nil
	}

	var lists []ClassList
	for _, pattern := range linePatterns {
		for _, match := range pattern.FindAllStringSubmatchIndex(line, -1) {
			if len(match) < 4 {
				continue
			}
			value := line[match[2]:match[3]]
			lists = append(lists, ClassList{
				Value: value,
				Location: FileLocation{
					File:   file,
					Line:   lineNum,
					Column: match[2] + 1,
					Text:   strings.TrimSpace(line),
				},
			})
		}
	}
	return lists
}

// scanHTMLFile tokenizes an HTML document and collects every class
// attribute. The lexer handles what line regexes cannot: attributes split
// across lines, single quotes, unquoted values.
func scanHTMLFile(path string) ([]ClassList, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(content), "\n")
	lexer := html.NewLexer(parse.NewInputBytes(content))

	var lists []ClassList
	offset := 0
	for {
		tt, data := lexer.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.AttributeToken && strings.EqualFold(string(lexer.Text()), "class") {
			value := strings.Trim(string(lexer.AttrVal()), `"'`)
			if strings.TrimSpace(value) != "" {
				line := 1 + bytes.Count(content[:offset], []byte("\n"))
				text := ""
				if line-1 < len(lines) {
					text = strings.TrimSpace(lines[line-1])
				}
				lists = append(lists, ClassList{
					Value: value,
					Location: FileLocation{
						File:   path,
						Line:   line,
						Column: findClassColumn(text, value),
						Text:   text,
					},
				})
			}
		}
		offset += len(data)
	}
	return lists, nil
}

// findClassColumn locates the column where the first token of the class
// value starts within line. Returns 0 when it cannot be located.
func findClassColumn(line, classValue string) int {
	tokens := strings.Fields(classValue)
	target := classValue
	if len(tokens) > 0 {
		target = tokens[0]
	}

	if attrIdx := strings.Index(line, "class="); attrIdx != -1 {
		if quoteIdx := strings.IndexAny(line[attrIdx:], `"'`); quoteIdx != -1 {
			start := attrIdx + quoteIdx + 1
			rest := line[start:]
			if end := strings.IndexAny(rest, `"'`); end != -1 {
				rest = rest[:end]
			}
			if idx := strings.Index(rest, target); idx != -1 {
				return start + idx + 1
			}
		}
	}
	if idx := strings.Index(line, `"`+target); idx != -1 {
		return idx + 2
	}
	if idx := strings.Index(line, target); idx != -1 {
		return idx + 1
	}
	return 0
}

// findTokenColumn locates the column of token within line, matching whole
// tokens only so "p-2" is not found inside "p-24". Returns 0 when the token
// does not appear.
func findTokenColumn(line, token string) int {
	from := 0
	for {
		i := strings.Index(line[from:], token)
		if i == -1 {
			return 0
		}
		start := from + i
		end := start + len(token)
		if isTokenBoundary(line, start-1) && isTokenBoundary(line, end) {
			return start + 1
		}
		from = start + 1
	}
}

// isTokenBoundary reports whether position i delimits a class token: the
// line edges, whitespace, or a quote.
func isTokenBoundary(line string, i int) bool {
	if i < 0 || i >= len(line) {
		return true
	}
	switch line[i] {
	case ' ', '\t', '"', '\'', '`':
		return true
	}
	return false
}
