// Package metadata defines the four managed addon metadata fields and the
// text transforms shared by both sides of the sync.
//
// A Field carries everything format code needs to recognize and rebuild a
// field: the po msgctxt tag, the addon.xml element name and line pattern,
// the substring that marks managed manifest lines, and the sort weight
// that fixes block order in catalogs.
//
// The escape functions convert between the two at-rest encodings:
// addon.xml values carry XML entities, po values carry backslash-escaped
// quotes. Applying one after the other returns the original text.
package metadata
