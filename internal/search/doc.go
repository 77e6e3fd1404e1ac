// Package search implements line filtering over in-memory file contents.
//
// Both matching policies split contents into lines the same way and return
// matching lines in their original order. Returned lines are substrings of the
// input, so no per-match copy is made.
package search
