package samt

import (
	"errors"
	"fmt"
)

// Direction selects which side of the sync acts as the source of new data.
type Direction int

const (
	// DirectionBoth runs po-to-xml first, then xml-to-po over the same
	// addon directory. This is the default.
	DirectionBoth Direction = iota

	// DirectionXMLToPO syncs addon.xml metadata into the language catalogs.
	DirectionXMLToPO

	// DirectionPOToXML syncs catalog metadata into addon.xml.
	DirectionPOToXML
)

// String returns the CLI spelling of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionBoth:
		return "both"
	case DirectionXMLToPO:
		return "xml-to-po"
	case DirectionPOToXML:
		return "po-to-xml"
	default:
		return fmt.Sprintf("Unknown(%d)", d)
	}
}

// IsValid returns true if the Direction is a defined value.
func (d Direction) IsValid() bool {
	return d >= DirectionBoth && d <= DirectionPOToXML
}

// ParseDirection converts a CLI/config spelling into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "both", "":
		return DirectionBoth, nil
	case "xml-to-po", "xtp":
		return DirectionXMLToPO, nil
	case "po-to-xml", "ptx":
		return DirectionPOToXML, nil
	default:
		return DirectionBoth, fmt.Errorf("unknown direction %q: %w", s, ErrInvalidConfig)
	}
}

// Priority determines which side wins when both sides define a value for
// the same language. It is threaded explicitly through every merge.
type Priority int

const (
	// PriorityPO keeps catalog values and only adds languages the
	// catalogs are missing. Existing translations are never overwritten.
	PriorityPO Priority = iota

	// PriorityXML makes addon.xml values win over catalog values.
	PriorityXML
)

// String returns a human-readable name for the priority.
func (p Priority) String() string {
	switch p {
	case PriorityPO:
		return "po"
	case PriorityXML:
		return "xml"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// IsValid returns true if the Priority is a defined value.
func (p Priority) IsValid() bool {
	return p == PriorityPO || p == PriorityXML
}

// SyncConfig contains all parameters needed for a sync, check, or watch run.
type SyncConfig struct {
	// Path is the addon directory, or in multi mode the directory whose
	// immediate subdirectories are addon directories.
	Path string

	// Direction selects which side feeds the other.
	Direction Direction

	// Multi treats each immediate subdirectory of Path as an addon.
	// Addons missing required files are reported and skipped.
	Multi bool

	// Priority decides merge conflicts for the xml-to-po direction.
	// po-to-xml always uses PriorityPO.
	Priority Priority

	// DryRun regenerates everything but writes nothing (check command).
	DryRun bool

	// Verbose enables detailed logging.
	Verbose bool
}

// Validate checks if the SyncConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *SyncConfig) Validate() error {
	var errs []error

	if c.Path == "" {
		errs = append(errs, fmt.Errorf("Path is required: %w", ErrInvalidConfig))
	}

	if !c.Direction.IsValid() {
		errs = append(errs, fmt.Errorf("direction %s is not valid: %w", c.Direction, ErrInvalidConfig))
	}

	if !c.Priority.IsValid() {
		errs = append(errs, fmt.Errorf("priority %s is not valid: %w", c.Priority, ErrInvalidConfig))
	}

	// xml priority only means something when xml feeds the catalogs
	if c.Priority == PriorityXML && c.Direction == DirectionPOToXML {
		errs = append(errs, fmt.Errorf("xml priority applies only when syncing to po files: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// PackageResult reports what a run did to one addon directory.
type PackageResult struct {
	// Path is the addon directory.
	Path string

	// AddonXMLChanged is true when addon.xml was rewritten (or, in dry-run
	// mode, would have been).
	AddonXMLChanged bool

	// ChangedPOFiles lists the paths of catalogs that were rewritten
	// (or would have been).
	ChangedPOFiles []string

	// CheckedPOFiles is the number of catalogs considered.
	CheckedPOFiles int

	// Err records why the addon was skipped, if it was.
	Err error
}

// Changed returns true when the run touched (or would touch) any file.
func (r *PackageResult) Changed() bool {
	return r.AddonXMLChanged || len(r.ChangedPOFiles) > 0
}

// Result aggregates per-addon outcomes of a run.
type Result struct {
	Packages []PackageResult
}

// Changed returns true when any addon changed.
func (r *Result) Changed() bool {
	for i := range r.Packages {
		if r.Packages[i].Changed() {
			return true
		}
	}
	return false
}

// Skipped returns the number of addons that were skipped with an error.
func (r *Result) Skipped() int {
	n := 0
	for i := range r.Packages {
		if r.Packages[i].Err != nil {
			n++
		}
	}
	return n
}
