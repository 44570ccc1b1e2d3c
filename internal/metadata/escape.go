package metadata

import (
	"regexp"
	"strings"
)

// ampersandPattern matches either one of the entities the manifest escape
// introduces, or a bare ampersand (the optional group stays empty). RE2 has
// no lookahead, so bare ampersands are told apart in the replace callback.
var ampersandPattern = regexp.MustCompile(`&(quot;|apos;|lt;|gt;|amp;)?`)

// EscapePO converts manifest text to its catalog form. Double-quote
// entities become backslash-escaped quotes; all other entities are valid
// catalog text as-is.
func EscapePO(s string) string {
	return strings.ReplaceAll(s, "&quot;", `\"`)
}

// EscapeXML converts catalog text to its manifest form. Backslash-escaped
// quotes turn into literal quotes before quote escaping, and bare
// ampersands are escaped last so the entities just introduced survive.
// Applying EscapeXML to already-escaped text is a no-op, which keeps
// repeated syncs from growing the file.
func EscapeXML(s string) string {
	s = strings.ReplaceAll(s, `\"`, `"`)
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, `'`, "&apos;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return ampersandPattern.ReplaceAllStringFunc(s, func(m string) string {
		if m == "&" {
			return "&amp;"
		}
		return m
	})
}
