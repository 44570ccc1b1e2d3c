// Package files provides file-related functionality organized into sub-packages.
//
// This package has been refactored into the following sub-packages:
//   - filesystem: Filesystem abstraction interface with go-billy backed
//     implementations (OS and in-memory)
//   - scanner: Discovery and parsing of addon.xml manifests and language
//     catalogs
//
// # Usage
//
//	import (
//	    "github.com/xbmc/sync-addon-metadata-translations/internal/files/filesystem"
//	    "github.com/xbmc/sync-addon-metadata-translations/internal/files/scanner"
//	)
//
//	fileScanner := scanner.NewScanner(logger)
//	manifest, err := fileScanner.FindAddonXML("./plugin.video.example")
//	catalogs, err := fileScanner.FindCatalogs("./plugin.video.example")
//
// # Organization
//
// Each sub-package is focused on a specific concern:
//   - filesystem: Provides filesystem abstraction for testability
//   - scanner: Handles file discovery, language code derivation, and
//     document parsing
package files
