package pofile

import (
	"strings"

	"github.com/xbmc/sync-addon-metadata-translations/internal/metadata"
	"github.com/xbmc/sync-addon-metadata-translations/pkg/samt"
)

// quotePlaceholder shields escaped quotes while the surrounding string
// quotes are stripped during cleanup.
const quotePlaceholder = "%repdq%"

// ExtractField returns the text stored under field's msgctxt in doc.
//
// The reference catalog keeps its source text in msgid, every other
// catalog in msgstr, so the scan follows a different column depending
// on doc.Language. Multi-line values are folded into a single string.
// The second return is false when the block is absent or its value is
// empty.
func ExtractField(doc *Document, field metadata.Field) (string, bool) {
	target := field.ContextLine()
	isReference := doc.Language == samt.ReferenceLanguage

	inBlock := false
	captured := false
	var fragments []string

	for _, line := range doc.Lines {
		if !inBlock {
			if strings.HasPrefix(line, target) {
				inBlock = true
			}
			continue
		}

		if isReference {
			if !captured && strings.HasPrefix(line, "msgid ") {
				captured = true
				fragments = append(fragments, strings.ReplaceAll(line, "msgid ", ""))
				continue
			}
			if strings.HasPrefix(line, "msgstr ") {
				break
			}
			fragments = append(fragments, line)
			continue
		}

		if !captured {
			if strings.HasPrefix(line, "msgstr ") {
				captured = true
				fragments = append(fragments, strings.ReplaceAll(line, "msgstr ", ""))
			}
			continue
		}
		if !strings.HasPrefix(line, `"`) {
			break
		}
		fragments = append(fragments, line)
	}

	if len(fragments) == 0 {
		return "", false
	}

	text := cleanValue(strings.Join(fragments, "\n"))
	if text == "" {
		return "", false
	}
	return text, true
}

// cleanValue folds gettext string fragments into the bare value: the
// quote-newline-quote seams between continuation lines go first, then
// the enclosing quotes, while escaped quotes survive as literals.
func cleanValue(s string) string {
	s = strings.ReplaceAll(s, "\"\n\"", "")
	s = strings.ReplaceAll(s, "\n", "")
	s = strings.ReplaceAll(s, `\"`, quotePlaceholder)
	s = strings.ReplaceAll(s, `"`, "")
	s = strings.ReplaceAll(s, quotePlaceholder, `\"`)
	return s
}
