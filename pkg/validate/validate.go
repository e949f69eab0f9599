// Package validate holds the pure input predicates used before any storage
// write. The rules here are authoritative; clients may pre-check with
// stricter rules but the server always re-validates.
package validate

import (
	"regexp"
	"strings"
	"unicode/utf16"
)

const (
	minNameLength = 2
	maxNameLength = 50

	minPasswordLength = 8
	maxPasswordLength = 64
)

var (
	// Deliberately conservative: one @, no whitespace, at least one dot in
	// the domain part. Full RFC 5322 parsing is not the goal.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Letters of any script, spaces, hyphens, apostrophes.
	namePattern = regexp.MustCompile(`^[\p{L}\s'-]+$`)
)

// Email reports whether s looks like a plausible email address after
// trimming and case-normalization.
func Email(s string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	return emailPattern.MatchString(trimmed)
}

// NormalizeEmail returns the canonical form used for storage and lookups:
// trimmed and lowercased. Two addresses differing only in case or
// surrounding whitespace are the same account.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name reports whether s is an acceptable first or last name: trimmed
// length in [2,50], letters (any script), spaces, hyphens and apostrophes
// only.
func Name(s string) bool {
	trimmed := strings.TrimSpace(s)
	if len([]rune(trimmed)) < minNameLength || len([]rune(trimmed)) > maxNameLength {
		return false
	}
	return namePattern.MatchString(trimmed)
}

// Password reports whether s satisfies the password policy: length in
// [8,64] and at least 3 of the 4 character classes (lowercase, uppercase,
// digit, symbol). Classes are ASCII-only; any other character counts as a
// symbol. Length is measured in UTF-16 code units so surrogate-pair
// characters count double.
func Password(s string) bool {
	length := len(utf16.Encode([]rune(s)))
	if length < minPasswordLength || length > maxPasswordLength {
		return false
	}

	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			symbol = true
		}
	}

	classes := 0
	for _, ok := range []bool{lower, upper, digit, symbol} {
		if ok {
			classes++
		}
	}
	return classes >= 3
}
