// Package gitmoji validates commit messages against the Customized
// Conventional Commits format, which replaces the textual type prefix of
// Conventional Commits with a GitMoji emoji:
//
//	<emoji> <description>
//
//	optional extended body
//
// See https://gitmoji.dev/ for the emoji catalog.
package gitmoji

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MatchMode controls whether auto-generated commit forms bypass the emoji
// format.
type MatchMode int

const (
	// Lenient accepts autosquash (amend!, fixup!, squash!) and merge
	// commits without requiring the emoji format.
	Lenient MatchMode = iota
	// Strict requires every commit message to match the emoji format.
	Strict
)

// Reason identifies how a commit message failed to match the format.
type Reason string

const (
	// ReasonNoEmojiPrefix means no emoji from the set prefixes the first
	// line. Empty and whitespace-only messages fail with this reason.
	ReasonNoEmojiPrefix Reason = "no_emoji_prefix"
	// ReasonEmptyDescription means an emoji prefixes the first line but no
	// well-formed description follows it.
	ReasonEmptyDescription Reason = "empty_description"
)

// Verdict is the result of validating a single commit message. When Matched
// is false, Reason selects the guidance shown to the user. Exempted commits
// (autosquash, merge) match with empty Emoji and Description.
type Verdict struct {
	Matched     bool
	Emoji       string
	Description string
	Reason      Reason
}

// Autosquash prefixes written by git rebase, see git-rebase(1).
var autosquashPrefixes = []string{"amend! ", "fixup! ", "squash! "}

var mergePrefixRe = regexp.MustCompile(`^Merge\b`)

// Validate checks a commit message against the Customized Conventional
// Commits format. Matching is anchored at the start of the first line after
// cleaning and trimming; the body is never validated. Candidate emojis are
// tried in set order and the first full match (emoji, whitespace, non-empty
// description) wins.
func Validate(message string, set EmojiSet, mode MatchMode) Verdict {
	line := firstLine(strings.TrimSpace(Clean(message)))

	if mode == Lenient && isExempt(line) {
		return Verdict{Matched: true}
	}

	prefixFound := false

	for _, emoji := range set {
		rest, ok := strings.CutPrefix(line, emoji)
		if !ok {
			continue
		}

		prefixFound = true

		if !startsWithSpace(rest) {
			continue
		}

		description := strings.TrimSpace(rest)
		if description == "" {
			continue
		}

		return Verdict{
			Matched:     true,
			Emoji:       emoji,
			Description: description,
		}
	}

	if prefixFound {
		return Verdict{Matched: false, Reason: ReasonEmptyDescription}
	}

	return Verdict{Matched: false, Reason: ReasonNoEmojiPrefix}
}

// IsCustomizedConventional reports whether message matches the Customized
// Conventional Commits format in lenient mode, with extras added to the
// built-in emoji catalog.
func IsCustomizedConventional(message string, extras []string) bool {
	return Validate(message, ResolveEmojiSet(extras), Lenient).Matched
}

// isExempt reports whether the first line is an auto-generated commit form
// that lenient mode accepts without the emoji format.
func isExempt(line string) bool {
	for _, prefix := range autosquashPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}

	return mergePrefixRe.MatchString(line)
}

func startsWithSpace(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return false
	}

	return unicode.IsSpace(r)
}
