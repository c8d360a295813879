package gitmoji

import (
	"regexp"
	"strings"
)

var (
	// Scissors line and everything below it, appended by git for verbose
	// commits (git commit --verbose).
	verboseIgnoredRe = regexp.MustCompile(`(?ms)^# -{24} >8 -{24}\r?\n.*\z`)
	commentLineRe    = regexp.MustCompile(`(?m)^#.*\r?\n?`)
)

// Clean normalizes a raw commit message for matching: line endings become
// LF, comment lines and the scissors-delimited diff section are removed.
func Clean(message string) string {
	message = verboseIgnoredRe.ReplaceAllString(message, "")
	message = commentLineRe.ReplaceAllString(message, "")

	return strings.ReplaceAll(message, "\r\n", "\n")
}

// firstLine returns the part of the message up to the first newline.
func firstLine(message string) string {
	line, _, _ := strings.Cut(message, "\n")
	return line
}
