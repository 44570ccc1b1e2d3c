package scanner

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xbmc/sync-addon-metadata-translations/internal/addonxml"
	"github.com/xbmc/sync-addon-metadata-translations/internal/files/filesystem"
	"github.com/xbmc/sync-addon-metadata-translations/internal/metadata"
	"github.com/xbmc/sync-addon-metadata-translations/internal/pofile"
	"github.com/xbmc/sync-addon-metadata-translations/pkg/samt"
)

// Scanner locates and parses the manifest and catalogs of add-on
// directories. It is safe for concurrent use as long as the provided
// logger and fsProvider are too.
type Scanner struct {
	logger     samt.Logger
	fsProvider filesystem.Provider
}

// NewScanner creates a scanner backed by the OS filesystem.
// Panics if logger is nil.
func NewScanner(logger samt.Logger) *Scanner {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Scanner{
		logger:     logger,
		fsProvider: filesystem.NewOS(),
	}
}

// NewScannerWithFS creates a scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if logger or fsProvider is nil.
func NewScannerWithFS(logger samt.Logger, fsProvider filesystem.Provider) *Scanner {
	if logger == nil {
		panic("logger cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{
		logger:     logger,
		fsProvider: fsProvider,
	}
}

// FindAddonXML reads and parses the addon.xml manifest of the add-on
// directory dir. Returns an error wrapping samt.ErrNoAddonXML when the
// manifest does not exist.
func (s *Scanner) FindAddonXML(dir string) (*addonxml.Document, error) {
	path := filepath.Join(dir, samt.AddonXMLFilename)

	exists, err := s.fsProvider.Exists(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !exists {
		return nil, fmt.Errorf("%s: %w", dir, samt.ErrNoAddonXML)
	}

	data, err := s.fsProvider.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return addonxml.Parse(path, data), nil
}

// FindCatalogs walks the add-on directory dir and parses every .po
// file under a resource.language.* directory. Files whose language
// cannot be derived from their path are skipped. Results are ordered
// by path so runs are deterministic.
func (s *Scanner) FindCatalogs(dir string) ([]*pofile.Document, error) {
	var catalogs []*pofile.Document

	err := s.fsProvider.Walk(dir, func(path string, info filesystem.FileInfo, err error) error {
		if err != nil {
			return fmt.Errorf("error walking %s: %w", path, err)
		}
		if info.IsDir() {
			return nil
		}
		if filepath.Ext(path) != samt.POExtension {
			return nil
		}

		languageDir := filepath.ToSlash(filepath.Dir(path))
		if !strings.Contains(languageDir, samt.LanguageDirPrefix) {
			return nil
		}

		code, ok := metadata.LanguageCodeFromPath(languageDir)
		if !ok {
			s.logger.Verbose("skipping %s: no language code in path", path)
			return nil
		}

		data, err := s.fsProvider.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		catalogs = append(catalogs, pofile.Parse(path, code, data))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(catalogs, func(i, j int) bool { return catalogs[i].Path < catalogs[j].Path })
	return catalogs, nil
}

// ListAddonDirs returns the immediate subdirectories of dir, sorted by
// name. Used to fan a run out over a repository holding several
// add-ons.
func (s *Scanner) ListAddonDirs(dir string) ([]string, error) {
	entries, err := s.fsProvider.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(dirs)
	return dirs, nil
}
