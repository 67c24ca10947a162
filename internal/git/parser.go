package git

import "strings"

// Parser turns the text a command printed into a value.
type Parser[T any] interface {
	Parse(text string) T
}

// SimpleParser returns its input with leading and trailing characters at or
// below the space character removed. It never fails.
type SimpleParser struct{}

// Parse implements Parser.
func (SimpleParser) Parse(text string) string {
	return Trim(text)
}

// Trim removes leading and trailing runes <= ' ' (spaces, tabs, newlines,
// and other control characters).
func Trim(text string) string {
	return strings.TrimFunc(text, func(r rune) bool { return r <= ' ' })
}
