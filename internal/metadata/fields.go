package metadata

import (
	"fmt"
	"regexp"
)

// Field describes one managed metadata field.
type Field struct {
	// Name is the lowercase field name used in logs.
	Name string

	// Context is the msgctxt tag that marks the field in catalogs.
	Context string

	// Element is the addon.xml element name.
	Element string

	// Marker is the opening-tag substring that identifies managed manifest
	// lines independent of language, e.g. `summary lang=`.
	Marker string

	// Pattern matches one whole manifest line for the field. Submatches:
	// whitespace, language code, body; for fields with HasType the type
	// attribute is captured between whitespace and language code.
	Pattern *regexp.Regexp

	// HasType marks fields whose element carries a package-wide type
	// attribute before the lang attribute.
	HasType bool

	// Weight fixes the field's block position in regenerated catalogs.
	Weight int
}

// fieldPattern builds the single-line matcher for a plain lang-only element.
// Attribute values may use either quote style; bodies cannot span lines or
// contain a '<'.
func fieldPattern(element string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^([ \t]*)<` + element + ` lang=["']([^"']+?)["']>([^<\n]+?)</` + element + `>[ \t\r]*$`)
}

// typedFieldPattern is fieldPattern for elements with a leading type attribute.
func typedFieldPattern(element string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^([ \t]*)<` + element + ` type=["']([^"']+?)["'] lang=["']([^"']+?)["']>([^<\n]+?)</` + element + `>[ \t\r]*$`)
}

// The managed fields. Weights fix catalog block order; manifest line order
// follows Fields order.
var (
	Summary = Field{
		Name:    "summary",
		Context: "Addon Summary",
		Element: "summary",
		Marker:  "summary lang=",
		Pattern: fieldPattern("summary"),
		Weight:  0,
	}

	Description = Field{
		Name:    "description",
		Context: "Addon Description",
		Element: "description",
		Marker:  "description lang=",
		Pattern: fieldPattern("description"),
		Weight:  1,
	}

	Disclaimer = Field{
		Name:    "disclaimer",
		Context: "Addon Disclaimer",
		Element: "disclaimer",
		Marker:  "disclaimer lang=",
		Pattern: fieldPattern("disclaimer"),
		Weight:  2,
	}

	Lifecyclestate = Field{
		Name:    "lifecyclestate",
		Context: "Addon Lifecyclestate",
		Element: "lifecyclestate",
		Marker:  "lifecyclestate type=",
		Pattern: typedFieldPattern("lifecyclestate"),
		HasType: true,
		Weight:  3,
	}
)

// Fields lists the managed fields in manifest line order. Lifecyclestate is
// last and only takes part in a sync when the manifest carries the element.
var Fields = []Field{Summary, Description, Disclaimer, Lifecyclestate}

// ContextLine returns the full msgctxt line that starts the field's catalog
// block.
func (f Field) ContextLine() string {
	return fmt.Sprintf(`msgctxt "%s"`, f.Context)
}

// ManifestLine renders one manifest line for the field. typ is ignored for
// fields without a type attribute.
func (f Field) ManifestLine(whitespace, typ, language, body string) string {
	if f.HasType {
		return fmt.Sprintf(`%s<%s type="%s" lang="%s">%s</%s>`,
			whitespace, f.Element, typ, language, body, f.Element)
	}
	return fmt.Sprintf(`%s<%s lang="%s">%s</%s>`,
		whitespace, f.Element, language, body, f.Element)
}
