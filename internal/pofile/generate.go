package pofile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xbmc/sync-addon-metadata-translations/internal/metadata"
	"github.com/xbmc/sync-addon-metadata-translations/pkg/samt"
)

// Block is a rendered msgctxt/msgid/msgstr triple destined for one
// catalog. Weight orders blocks within a catalog when several fields
// are spliced together.
type Block struct {
	Language string
	Weight   int
	Lines    []string
}

// RenderBlocks builds one Block per merged item for field. The msgid
// column always carries the reference language text and the msgstr
// column the translation, left empty for the reference catalog itself.
// Returns nil when no reference item exists since the msgid column
// cannot be filled without one.
func RenderBlocks(field metadata.Field, items []metadata.Item) []Block {
	reference := metadata.FindLanguage(items, samt.ReferenceLanguage)
	if reference == nil {
		return nil
	}

	msgid := metadata.EscapePO(reference.Text)
	blocks := make([]Block, 0, len(items))
	for _, item := range items {
		msgstr := ""
		if item.Language != samt.ReferenceLanguage {
			msgstr = metadata.EscapePO(item.Text)
		}
		blocks = append(blocks, Block{
			Language: item.Language,
			Weight:   field.Weight,
			Lines: []string{
				field.ContextLine(),
				fmt.Sprintf(`msgid "%s"`, msgid),
				fmt.Sprintf(`msgstr "%s"`, msgstr),
			},
		})
	}
	return blocks
}

// StripBlocks removes the managed blocks for fields from lines,
// including continuation lines and the blank separator after each
// block. Everything else is kept in order.
func StripBlocks(lines []string, fields []metadata.Field) []string {
	targets := make([]string, 0, len(fields))
	for _, field := range fields {
		targets = append(targets, field.ContextLine())
	}

	msgctxt := false
	msgid := false
	msgstr := false

	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if !msgctxt && hasAnyPrefix(line, targets) {
			msgctxt = true
			continue
		}

		if msgctxt && !msgid {
			if strings.HasPrefix(line, "msgid ") {
				msgid = true
			}
			continue
		}

		if msgid && !msgstr {
			if strings.HasPrefix(line, "msgstr ") {
				msgstr = true
			}
			continue
		}

		if msgctxt && msgid && msgstr {
			if strings.TrimSpace(line) == "" {
				msgctxt, msgid, msgstr = false, false, false
				continue
			}
			if strings.HasPrefix(line, `"`) {
				continue
			}
			msgctxt, msgid, msgstr = false, false, false
		}

		kept = append(kept, line)
	}

	return kept
}

func hasAnyPrefix(line string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// InsertIndex locates the line directly below the catalog header: the
// first non-continuation line after the header's empty msgstr and its
// quoted attribute lines. Returns -1 when no such spot exists.
func InsertIndex(lines []string) int {
	msgstr := false
	firstQuote := false

	for i, line := range lines {
		if !msgstr && strings.HasPrefix(line, `msgstr ""`) {
			msgstr = true
			continue
		}

		if msgstr {
			if !firstQuote && strings.HasPrefix(line, `"`) {
				firstQuote = true
				continue
			}
			if firstQuote && !strings.HasPrefix(line, `"`) {
				return i + 1
			}
		}
	}

	return -1
}

// Rebuild strips the managed blocks for fields from doc and splices
// blocks back in below the catalog header, lowest weight first, each
// followed by a blank separator. Trailing blank lines are dropped so
// the result ends with exactly one newline.
//
// The second return is false when blocks need inserting but the header
// anchor cannot be found; the original lines are returned unchanged so
// the catalog is left alone.
func Rebuild(doc *Document, fields []metadata.Field, blocks []Block) ([]string, bool) {
	stripped := StripBlocks(doc.Lines, fields)
	if len(blocks) == 0 {
		return normalizeEOF(stripped), true
	}

	index := InsertIndex(stripped)
	if index <= 0 {
		return doc.Lines, false
	}

	sorted := make([]Block, len(blocks))
	copy(sorted, blocks)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Weight < sorted[j].Weight })

	spliced := make([]string, 0, len(stripped)+len(sorted)*4)
	spliced = append(spliced, stripped[:index]...)
	for _, block := range sorted {
		spliced = append(spliced, block.Lines...)
		spliced = append(spliced, "")
	}
	spliced = append(spliced, stripped[index:]...)

	return normalizeEOF(spliced), true
}

// normalizeEOF trims trailing blank lines, leaving a single empty
// element so the joined content ends with one newline.
func normalizeEOF(lines []string) []string {
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return append(lines[:end:end], "")
}
