package samt

// Syncer is the main interface for running metadata synchronization.
// Implementations handle discovery of addon.xml and language catalogs,
// merging, regeneration, and change-only writes.
type Syncer interface {
	// Run executes a sync (or dry run) using the provided configuration.
	// The returned Result always covers every addon directory considered,
	// including skipped ones. Run returns an error when the run as a
	// whole failed; per-addon skips in multi mode are reported through
	// the Result instead.
	Run(config SyncConfig) (*Result, error)
}
