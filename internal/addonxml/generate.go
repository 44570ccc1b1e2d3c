package addonxml

import (
	"fmt"
	"strings"

	"github.com/xbmc/sync-addon-metadata-translations/internal/metadata"
	"github.com/xbmc/sync-addon-metadata-translations/pkg/samt"
)

// Both attribute quote styles are accepted for the anchor element.
const (
	metadataExtensionDQ = `<extension point="xbmc.addon.metadata">`
	metadataExtensionSQ = `<extension point='xbmc.addon.metadata'>`
)

// InsertIndex returns the line index regenerated lines are spliced at: the
// line after the metadata extension point, pulled back to the closing
// </extension> line when one follows. A manifest without the extension
// point cannot hold metadata and is a fatal configuration error.
func InsertIndex(doc *Document) (int, error) {
	index := -1
	for i, line := range doc.Lines {
		if strings.Contains(line, metadataExtensionDQ) || strings.Contains(line, metadataExtensionSQ) {
			index = i + 1
		}
		if index > -1 && strings.Contains(line, "</extension>") {
			return i, nil
		}
	}
	if index < 0 {
		return 0, fmt.Errorf("%s: %w", doc.Path, samt.ErrNoMetadataExtension)
	}
	return index, nil
}

// StripManagedLines drops every line containing a managed field's opening
// tag marker. Everything else is kept verbatim.
func StripManagedLines(lines []string, fields []metadata.Field) []string {
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if isManagedLine(line, fields) {
			continue
		}
		kept = append(kept, line)
	}
	return kept
}

func isManagedLine(line string, fields []metadata.Field) bool {
	for _, field := range fields {
		if strings.Contains(line, field.Marker) {
			return true
		}
	}
	return false
}

// Render builds the manifest lines for the merged items of each active
// field, in field order. Bodies pass through the manifest escape.
// Lifecycle-state lines carry the package-wide type attribute and are only
// emitted for nonempty bodies.
func Render(extraction *Extraction, merged map[string][]metadata.Item) []string {
	whitespace := extraction.Whitespace()
	var lines []string
	for _, field := range extraction.ActiveFields() {
		for _, item := range merged[field.Name] {
			body := metadata.EscapeXML(item.Text)
			if field.HasType && body == "" {
				continue
			}
			lines = append(lines, field.ManifestLine(whitespace, extraction.LifecycleType(), item.Language, body))
		}
	}
	return lines
}

// Rebuild strips the managed lines and splices the regenerated ones at the
// insertion anchor, returning the document's new lines. The caller
// compares them against the original and writes only on change.
func Rebuild(doc *Document, extraction *Extraction, merged map[string][]metadata.Item) ([]string, error) {
	stripped := StripManagedLines(doc.Lines, extraction.ActiveFields())
	working := &Document{Path: doc.Path, Content: doc.Content, Lines: stripped}

	index, err := InsertIndex(working)
	if err != nil {
		return nil, err
	}

	rendered := Render(extraction, merged)

	rebuilt := make([]string, 0, len(stripped)+len(rendered))
	rebuilt = append(rebuilt, stripped[:index]...)
	rebuilt = append(rebuilt, rendered...)
	rebuilt = append(rebuilt, stripped[index:]...)
	return rebuilt, nil
}
