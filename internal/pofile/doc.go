// Package pofile reads and regenerates the metadata blocks of gettext
// catalogs without a structural po parser.
//
// A catalog is handled as plain lines. The package provides:
//
//   - Extraction of the text stored under a managed msgctxt, following
//     msgid for the reference language and msgstr for translations
//   - Removal of managed blocks ahead of regeneration
//   - Rendering of fresh msgctxt/msgid/msgstr blocks and splicing them
//     in directly below the catalog header
//
// Everything outside the managed blocks is carried through untouched.
package pofile
