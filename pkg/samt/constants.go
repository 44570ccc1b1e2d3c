package samt

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Sync/check completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration or parameters
	ExitMissingFiles    = 11 // addon.xml, po files, or en_GB po missing
	ExitMetadataMissing = 12 // No xbmc.addon.metadata extension in addon.xml
	ExitOutOfSync       = 13 // check found files a sync would rewrite
)

const (
	// AddonXMLFilename is the manifest file expected at an addon's root.
	AddonXMLFilename = "addon.xml"

	// ReferenceLanguage is the language whose catalog supplies the source
	// (msgid) text for every other language's catalog entries.
	ReferenceLanguage = "en_GB"

	// LanguageDirPrefix marks catalog directories. The language code is
	// encoded in the directory name, e.g. resource.language.de_de.
	LanguageDirPrefix = "resource.language."

	// POExtension is the file extension of gettext catalogs.
	POExtension = ".po"
)
