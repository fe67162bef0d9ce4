package parser

import (
	"strings"
	"unicode"
)

// Low-level scanning helpers shared by the block splitter and the inline
// scanner. Every marker is a single ASCII byte, so the scanners walk the
// input byte-wise; bytes of multi-byte runes never collide with markers.

// escapable reports whether c is a marker character that a backslash
// escape applies to.
func escapable(c byte) bool {
	switch c {
	case '#', '>', '\\', '`', '*', '~':
		return true
	}
	return false
}

// unescape removes backslashes from escaped marker characters. Used for
// code-span content, which is otherwise kept literal. Backslashes before
// non-marker characters stay.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && escapable(s[i+1]) {
			b.WriteByte(s[i+1])
			i++
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// findDelim returns the index of the first occurrence of delim at or after
// from, skipping backslash-escaped characters so that an escaped delimiter
// never closes a span. Returns -1 when no occurrence exists.
func findDelim(s string, from int, delim string) int {
	for i := from; i+len(delim) <= len(s); {
		if s[i] == '\\' && i+1 < len(s) {
			i += 2
			continue
		}
		if s[i:i+len(delim)] == delim {
			return i
		}
		i++
	}
	return -1
}

// findSingleStar returns the index of the next unescaped * at or after
// from that is not part of a ** pair. Pairs are skipped whole. Returns -1
// when no such star exists.
func findSingleStar(s string, from int) int {
	for i := from; i < len(s); {
		if s[i] == '\\' && i+1 < len(s) {
			i += 2
			continue
		}
		if s[i] == '*' {
			if i+1 < len(s) && s[i+1] == '*' {
				i += 2
				continue
			}
			return i
		}
		i++
	}
	return -1
}

// digitRun returns the end of the ASCII digit run starting at from.
func digitRun(s string, from int) int {
	i := from
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}

// isLinkRune reports whether r may appear inside an autolink.
func isLinkRune(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsNumber(r) {
		return true
	}
	switch r {
	case '-', '.', '_', '~', ':', '/', '?', '#', '[', ']', '@',
		'!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '%', '=':
		return true
	}
	return false
}

// isLinkFinalRune reports whether r may end an autolink. Sentence
// punctuation such as a trailing period or comma is excluded here so it
// stays outside the link.
func isLinkFinalRune(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsNumber(r) {
		return true
	}
	switch r {
	case '#', '$', '-', '_', '+', '*', '\'':
		return true
	}
	return false
}
