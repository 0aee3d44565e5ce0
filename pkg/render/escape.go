package render

import "strings"

// MarkdownV2 reserves a fixed set of ASCII punctuation: any of these appearing
// as literal text must be backslash-escaped, or the API rejects the message.
// Code content and link URLs each follow a narrower rule with their own
// functions below; the three paths are kept separate on purpose, because
// routing code content through the text rule is how characters got lost or
// double-escaped in the past.

// reservedText is the escape set for ordinary text.
const reservedText = `_*[]()~` + "`" + `>#+-=|{}.!\`

// EscapeText escapes every reserved MarkdownV2 character in s. The output is
// safe to place anywhere outside code spans, code blocks, and link URLs.
func EscapeText(s string) string {
	if !strings.ContainsAny(s, reservedText) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/4)
	for i := 0; i < len(s); i++ {
		if isReservedText(s[i]) {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// EscapeCode escapes content destined for inline code spans and code blocks.
// Only backtick and backslash are special there; everything else passes
// through untouched.
func EscapeCode(s string) string {
	if !strings.ContainsAny(s, "`\\") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	for i := 0; i < len(s); i++ {
		if s[i] == '`' || s[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// EscapeURL escapes a link destination for the (...) part of a MarkdownV2
// link. Only the closing parenthesis and backslash are special.
func EscapeURL(s string) string {
	if !strings.ContainsAny(s, `)\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	for i := 0; i < len(s); i++ {
		if s[i] == ')' || s[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// Unescape removes MarkdownV2 backslash escapes, reversing any of the three
// escape functions. Escape-then-Unescape reproduces the input exactly.
func Unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// isReservedText reports whether c must be escaped in MarkdownV2 text.
func isReservedText(c byte) bool {
	switch c {
	case '_', '*', '[', ']', '(', ')', '~', '`', '>', '#', '+', '-', '=', '|', '{', '}', '.', '!', '\\':
		return true
	default:
		return false
	}
}
