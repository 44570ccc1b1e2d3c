package addonxml

import (
	"regexp"

	"github.com/xbmc/sync-addon-metadata-translations/internal/metadata"
)

// metadataChildPattern captures the indentation of any known metadata
// child element. Used as the whitespace template fallback when no managed
// line exists yet.
var metadataChildPattern = regexp.MustCompile(
	`(?m)^([ \t]*)<(?:news|assets|platform|license|source|forum|reuselanguageinvoker)>[^<\n]*(?:</(?:news|assets|platform|license|source|forum|reuselanguageinvoker)>)?[ \t\r]*$`)

// defaultIndent is used when a manifest has neither managed lines nor any
// recognized metadata child to copy indentation from.
const defaultIndent = "    "

// Extraction holds everything one sync pass needs from a manifest: the
// per-field items in document order, the indentation of each field's first
// line, and the package-wide lifecycle type.
type Extraction struct {
	doc           *Document
	items         map[string][]metadata.Item
	indents       map[string]string
	lifecycleType string
}

// Extract scans the manifest for all managed fields.
func Extract(doc *Document) *Extraction {
	e := &Extraction{
		doc:     doc,
		items:   make(map[string][]metadata.Item, len(metadata.Fields)),
		indents: make(map[string]string, len(metadata.Fields)),
	}

	for _, field := range metadata.Fields {
		matches := field.Pattern.FindAllStringSubmatch(doc.Content, -1)
		for _, m := range matches {
			whitespace, language, body := m[1], m[2], m[3]
			if field.HasType {
				language, body = m[3], m[4]
				if e.lifecycleType == "" {
					e.lifecycleType = m[2]
				}
			}
			if _, ok := e.indents[field.Name]; !ok {
				e.indents[field.Name] = whitespace
			}
			e.items[field.Name] = append(e.items[field.Name], metadata.Item{
				Language: language,
				Text:     body,
			})
		}
	}

	return e
}

// Items returns the field's items in document order.
func (e *Extraction) Items(field metadata.Field) []metadata.Item {
	return e.items[field.Name]
}

// HasLifecycle reports whether the manifest carries a lifecycle-state
// element. The field only takes part in a sync when it does, because the
// type attribute lives nowhere else.
func (e *Extraction) HasLifecycle() bool {
	return len(e.items[metadata.Lifecyclestate.Name]) > 0
}

// LifecycleType returns the package-wide lifecycle type attribute, from
// the first lifecycle-state line in the manifest.
func (e *Extraction) LifecycleType() string {
	return e.lifecycleType
}

// ActiveFields returns the fields this manifest takes part in: the three
// always-managed fields, plus lifecycle-state when the manifest has one.
func (e *Extraction) ActiveFields() []metadata.Field {
	fields := []metadata.Field{metadata.Summary, metadata.Description, metadata.Disclaimer}
	if e.HasLifecycle() {
		fields = append(fields, metadata.Lifecyclestate)
	}
	return fields
}

// Whitespace returns the indentation template for regenerated lines,
// copied from the first existing managed line in field-template order,
// then from any known metadata child element, then a four space default.
func (e *Extraction) Whitespace() string {
	order := []metadata.Field{
		metadata.Description,
		metadata.Disclaimer,
		metadata.Summary,
		metadata.Lifecyclestate,
	}
	for _, field := range order {
		if ws, ok := e.indents[field.Name]; ok {
			return ws
		}
	}
	if m := metadataChildPattern.FindStringSubmatch(e.doc.Content); m != nil {
		return m[1]
	}
	return defaultIndent
}
