package services

import (
	"errors"
	"fmt"
	"slices"

	"github.com/xbmc/sync-addon-metadata-translations/internal/addonxml"
	"github.com/xbmc/sync-addon-metadata-translations/internal/files/filesystem"
	"github.com/xbmc/sync-addon-metadata-translations/internal/files/scanner"
	"github.com/xbmc/sync-addon-metadata-translations/internal/metadata"
	"github.com/xbmc/sync-addon-metadata-translations/internal/pofile"
	"github.com/xbmc/sync-addon-metadata-translations/pkg/samt"
)

// SyncService implements the samt.Syncer interface. A run reads each
// addon directory once, keeps both sides in memory, and writes a file
// only when its regenerated content differs from what was read.
//
// Thread-Safety: safe for concurrent Run() calls as long as runs do
// not overlap on the same addon directory.
type SyncService struct {
	logger     samt.Logger
	scanner    *scanner.Scanner
	fsProvider filesystem.Provider
}

// NewSyncService creates a sync service backed by the OS filesystem.
// Panics if logger is nil.
func NewSyncService(logger samt.Logger) *SyncService {
	return NewSyncServiceWithFS(logger, filesystem.NewOS())
}

// NewSyncServiceWithFS creates a sync service with a custom filesystem
// provider. This is primarily useful for testing with in-memory
// filesystems. Panics if logger or fsProvider is nil.
func NewSyncServiceWithFS(logger samt.Logger, fsProvider filesystem.Provider) *SyncService {
	if logger == nil {
		panic("logger cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &SyncService{
		logger:     logger,
		scanner:    scanner.NewScannerWithFS(logger, fsProvider),
		fsProvider: fsProvider,
	}
}

// Run executes one sync pass over the configured path.
//
// In multi mode every immediate subdirectory is processed and addons
// missing required files are recorded and skipped. In single mode a
// missing file aborts the run with the matching sentinel error.
func (s *SyncService) Run(config samt.SyncConfig) (*samt.Result, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	dirs := []string{config.Path}
	if config.Multi {
		var err error
		dirs, err = s.scanner.ListAddonDirs(config.Path)
		if err != nil {
			return nil, err
		}
	}

	result := &samt.Result{}
	for _, dir := range dirs {
		s.logger.Info("Running sync-addon-metadata-translations on %s...", dir)

		pkg := s.syncPackage(dir, config)
		result.Packages = append(result.Packages, pkg)

		if pkg.Err != nil && !config.Multi {
			return result, pkg.Err
		}
	}

	return result, nil
}

// syncPackage runs the configured directions over a single addon
// directory. Failures to locate the manifest, any catalog, or the
// reference catalog abort the package.
func (s *SyncService) syncPackage(dir string, config samt.SyncConfig) samt.PackageResult {
	result := samt.PackageResult{Path: dir}

	manifest, err := s.scanner.FindAddonXML(dir)
	if err != nil {
		if errors.Is(err, samt.ErrNoAddonXML) {
			s.logger.Info("No addon.xml file found in %s... aborted", dir)
		}
		result.Err = err
		return result
	}

	catalogs, err := s.scanner.FindCatalogs(dir)
	if err != nil {
		result.Err = err
		return result
	}
	if len(catalogs) == 0 {
		s.logger.Info("No po files found in %s... aborted", dir)
		result.Err = fmt.Errorf("%s: %w", dir, samt.ErrNoPOFiles)
		return result
	}
	result.CheckedPOFiles = len(catalogs)

	if !hasReferenceCatalog(catalogs) {
		s.logger.Info("No en_gb po file found... aborted")
		result.Err = fmt.Errorf("%s: %w", dir, samt.ErrNoReferencePO)
		return result
	}

	// Both directions work from the same snapshot: the manifest leg
	// writing first must not change what the catalog leg reads.
	extraction := addonxml.Extract(manifest)

	if config.Direction == samt.DirectionBoth || config.Direction == samt.DirectionPOToXML {
		if err := s.syncManifest(&result, manifest, extraction, catalogs, config); err != nil {
			result.Err = err
			return result
		}
	}
	if config.Direction == samt.DirectionBoth || config.Direction == samt.DirectionXMLToPO {
		if err := s.syncCatalogs(&result, extraction, catalogs, config); err != nil {
			result.Err = err
			return result
		}
	}

	return result
}

// syncManifest regenerates the managed elements of addon.xml from the
// merged view of both sides. Catalog values win so translations flow
// into the manifest without overwriting newer catalog work.
func (s *SyncService) syncManifest(result *samt.PackageResult, manifest *addonxml.Document, extraction *addonxml.Extraction, catalogs []*pofile.Document, config samt.SyncConfig) error {
	s.logger.Info("Syncing po files to addon.xml...")

	merged := make(map[string][]metadata.Item, len(extraction.ActiveFields()))
	for _, field := range extraction.ActiveFields() {
		poItems := s.catalogItems(catalogs, field)
		s.logger.Verbose("%s from po files... %v", field.Context, poItems)
		merged[field.Name] = metadata.Merge(extraction.Items(field), poItems, samt.PriorityPO)
	}

	lines, err := addonxml.Rebuild(manifest, extraction, merged)
	if err != nil {
		return err
	}

	if slices.Equal(lines, manifest.Lines) {
		s.logger.Info("No changes made to addon.xml... completed")
		return nil
	}

	result.AddonXMLChanged = true
	if config.DryRun {
		s.logger.Verbose("%s is out of sync", manifest.Path)
		return nil
	}

	if err := s.fsProvider.WriteFile(manifest.Path, []byte(addonxml.Join(lines))); err != nil {
		return fmt.Errorf("failed to write %s: %w", manifest.Path, err)
	}
	s.logger.Info("addon.xml has been modified... completed")
	return nil
}

// syncCatalogs regenerates the managed blocks of every catalog from
// the merged view of both sides. config.Priority decides conflicts,
// catalog values winning by default.
func (s *SyncService) syncCatalogs(result *samt.PackageResult, extraction *addonxml.Extraction, catalogs []*pofile.Document, config samt.SyncConfig) error {
	s.logger.Info("Syncing addon.xml to po files...")

	fields := extraction.ActiveFields()
	blocksByLanguage := make(map[string][]pofile.Block)
	for _, field := range fields {
		poItems := s.catalogItems(catalogs, field)
		s.logger.Verbose("%s from po files... %v", field.Context, poItems)
		items := metadata.Merge(extraction.Items(field), poItems, config.Priority)

		blocks := pofile.RenderBlocks(field, items)
		if blocks == nil {
			s.logger.Info("Unable to generate lines for %s... missing en_GB", field.Context)
			continue
		}
		for _, block := range blocks {
			blocksByLanguage[block.Language] = append(blocksByLanguage[block.Language], block)
		}
	}

	if !config.DryRun {
		s.logger.Info("Writing po files... starting")
	}

	for _, catalog := range catalogs {
		blocks := blocksByLanguage[catalog.Language]
		if len(blocks) == 0 {
			// untranslated catalogs get the reference blocks so every
			// language carries the source text
			blocks = blocksByLanguage[samt.ReferenceLanguage]
		}

		lines, ok := pofile.Rebuild(catalog, fields, blocks)
		if !ok {
			s.logger.Info("Skipped inserting lines into %s po file...", catalog.Language)
			continue
		}
		if slices.Equal(lines, catalog.Lines) {
			continue
		}

		result.ChangedPOFiles = append(result.ChangedPOFiles, catalog.Path)
		if config.DryRun {
			s.logger.Verbose("%s is out of sync", catalog.Path)
			continue
		}

		s.logger.Info("%s po file changed... writing", catalog.Language)
		if err := s.fsProvider.WriteFile(catalog.Path, []byte(pofile.Join(lines))); err != nil {
			return fmt.Errorf("failed to write %s: %w", catalog.Path, err)
		}
	}

	if !config.DryRun {
		s.logger.Info("Writing po files... completed")
	}
	return nil
}

// catalogItems extracts one field from every catalog. Catalogs without
// the field, or with an empty value, contribute nothing.
func (s *SyncService) catalogItems(catalogs []*pofile.Document, field metadata.Field) []metadata.Item {
	var items []metadata.Item
	for _, catalog := range catalogs {
		text, ok := pofile.ExtractField(catalog, field)
		if !ok {
			continue
		}
		items = append(items, metadata.Item{Language: catalog.Language, Text: text})
	}
	return items
}

func hasReferenceCatalog(catalogs []*pofile.Document) bool {
	for _, catalog := range catalogs {
		if catalog.Language == samt.ReferenceLanguage {
			return true
		}
	}
	return false
}

// Verify SyncService implements the interface at compile time
var _ samt.Syncer = (*SyncService)(nil)
