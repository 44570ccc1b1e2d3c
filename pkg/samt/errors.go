package samt

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := syncer.Run(config)
//	if errors.Is(err, samt.ErrNoReferencePO) {
//	    // Handle missing en_GB catalog
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoAddonXML indicates no addon.xml was found in the addon directory.
	ErrNoAddonXML = errors.New("addon.xml not found")

	// ErrNoPOFiles indicates no language catalogs were found for the addon.
	ErrNoPOFiles = errors.New("no po files found")

	// ErrNoReferencePO indicates the reference language catalog (en_GB)
	// was not found among the addon's po files.
	ErrNoReferencePO = errors.New("en_GB po file not found")

	// ErrNoMetadataExtension indicates addon.xml has no
	// xbmc.addon.metadata extension point to anchor generated lines to.
	ErrNoMetadataExtension = errors.New("metadata extension point not found")

	// ErrOutOfSync indicates a check run found files that a sync would rewrite.
	ErrOutOfSync = errors.New("addon metadata out of sync")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check for sentinel errors
	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrNoAddonXML), errors.Is(err, ErrNoPOFiles), errors.Is(err, ErrNoReferencePO):
		return ExitMissingFiles
	case errors.Is(err, ErrNoMetadataExtension):
		return ExitMetadataMissing
	case errors.Is(err, ErrOutOfSync):
		return ExitOutOfSync
	}

	// Check for cobra/pflag usage error patterns
	errStr := err.Error()
	if strings.Contains(errStr, "unknown flag") ||
		strings.Contains(errStr, "unknown shorthand flag") ||
		strings.Contains(errStr, "unknown command") ||
		strings.Contains(errStr, "required flag") ||
		strings.Contains(errStr, "invalid argument") ||
		(strings.Contains(errStr, "accepts ") && strings.Contains(errStr, "arg(s)")) {
		return ExitUsageError
	}

	return ExitGeneralError
}
