// Package ignore compiles .gitignore-style glob lines into path predicates.
//
// Only the common subset of gitignore semantics is supported: literal
// segments, `*` (any run of non-separator characters), `**` (any run
// including separators), a trailing slash meaning "directory", and a leading
// slash anchoring the pattern to the rule's root. Negation and character
// classes are not supported.
package ignore

import (
	"bufio"
	"os"
	"regexp"
	"strings"
)

// Rule is one compiled ignore pattern.
type Rule struct {
	// Pattern is the original glob line, kept for diagnostics.
	Pattern string
	re      *regexp.Regexp
}

// Matches reports whether the rule ignores the given candidate. relPath is
// the forward-slash path relative to the traversal root; name is the bare
// entry name. A directory candidate is tested with a trailing slash appended
// so that directory-only patterns like "dist/" match it. A match on either
// the relative path or the bare name counts: bare filename patterns apply at
// any depth while anchored patterns stay root-relative.
func (r Rule) Matches(relPath, name string, isDir bool) bool {
	if isDir && !strings.HasSuffix(relPath, "/") {
		relPath += "/"
	}
	return r.re.MatchString(relPath) || r.re.MatchString(name)
}

// CompileLines compiles the lines of an ignore file into an ordered rule
// set. Blank lines and #-comments are dropped. Lines that produce an invalid
// expression are skipped.
func CompileLines(lines []string) []Rule {
	rules := make([]Rule, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if r, ok := Compile(line); ok {
			rules = append(rules, r)
		}
	}
	return rules
}

// Compile translates a single glob line into a Rule.
func Compile(pattern string) (Rule, bool) {
	re, err := regexp.Compile(translate(pattern))
	if err != nil {
		return Rule{}, false
	}
	return Rule{Pattern: pattern, re: re}, true
}

// Matched reports whether any rule in the set ignores the candidate.
func Matched(rules []Rule, relPath, name string, isDir bool) bool {
	for _, r := range rules {
		if r.Matches(relPath, name, isDir) {
			return true
		}
	}
	return false
}

// translate converts one glob line to a regular expression source string.
func translate(pattern string) string {
	// node_modules shows up phrased both ways across projects; pin both
	// spellings to the same anchored-from-root expression.
	if pattern == "node_modules" || pattern == "node_modules/" {
		return `^node_modules(/.*)?$`
	}

	anchored := strings.HasPrefix(pattern, "/")
	pattern = strings.TrimPrefix(pattern, "/")
	// Directory-only semantics are approximated: the trailing slash is
	// stripped and the matcher also tests the bare name.
	pattern = strings.TrimSuffix(pattern, "/")

	body := regexp.QuoteMeta(pattern)
	// Substitute ** before * so the single-star expansion cannot eat half
	// of a double star.
	body = strings.ReplaceAll(body, `\*\*`, `.*`)
	body = strings.ReplaceAll(body, `\*`, `[^/]*`)

	prefix := `(^|/)`
	if anchored {
		prefix = `^`
	}
	return prefix + body + `(/.*)?$`
}

// ParseFile reads and compiles an ignore file. A missing or unreadable file
// yields no rules.
func ParseFile(path string) []Rule {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return CompileLines(lines)
}
