// Package addonxml reads and rewrites the managed metadata lines of a Kodi
// addon.xml without parsing the document structurally.
//
// Managed elements are matched one line at a time with the patterns from
// the metadata package; every byte outside those lines is preserved.
// Regenerated lines are spliced directly under the xbmc.addon.metadata
// extension point, pulled back to the closing </extension> line when one
// exists, using the indentation of the first managed line found (or of a
// known metadata child element as fallback).
package addonxml
