// Package scanner discovers the files a sync run operates on: the
// addon.xml manifest of an add-on directory and the gettext catalogs
// underneath its resource.language.* directories.
//
// Discovery runs through a filesystem.Provider so tests can use an
// in-memory filesystem. Catalogs whose language cannot be derived from
// their directory name are skipped.
package scanner
