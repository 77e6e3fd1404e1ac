package search

import "strings"

// Search returns every line of contents that contains query, comparing bytes
// exactly. An empty query matches every line.
func Search(query, contents string) []string {
	var matches []string
	for _, line := range Lines(contents) {
		if strings.Contains(line, query) {
			matches = append(matches, line)
		}
	}
	return matches
}

// SearchCaseInsensitive returns every line of contents that contains query
// after ASCII case folding of both sides. Non-ASCII bytes compare exactly.
func SearchCaseInsensitive(query, contents string) []string {
	q := foldASCII(query)

	var matches []string
	for _, line := range Lines(contents) {
		if strings.Contains(foldASCII(line), q) {
			matches = append(matches, line)
		}
	}
	return matches
}

// Lines splits contents on '\n'. A '\r' immediately before the '\n' is
// dropped, a trailing newline does not produce an empty final line, and a
// final line without a newline is still returned.
func Lines(contents string) []string {
	var lines []string
	for line := range strings.Lines(contents) {
		if l, ok := strings.CutSuffix(line, "\n"); ok {
			line = strings.TrimSuffix(l, "\r")
		}
		lines = append(lines, line)
	}
	return lines
}

// foldASCII lowercases A-Z and leaves every other byte untouched.
// Returns s itself when there is nothing to fold.
func foldASCII(s string) string {
	i := 0
	for ; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			break
		}
	}
	if i == len(s) {
		return s
	}

	b := []byte(s)
	for ; i < len(b); i++ {
		if c := b[i]; 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
