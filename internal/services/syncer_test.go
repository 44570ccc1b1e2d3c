package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/xbmc/sync-addon-metadata-translations/internal/files/filesystem"
	"github.com/xbmc/sync-addon-metadata-translations/internal/logging"
	"github.com/xbmc/sync-addon-metadata-translations/pkg/samt"
)

const testAddonXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<addon id="plugin.video.example" name="Example" version="1.0.0" provider-name="example">
    <extension point="xbmc.addon.metadata">
        <summary lang="en_GB">Example summary</summary>
        <summary lang="fr_FR">Exemple de résumé</summary>
        <description lang="en_GB">Example description</description>
        <disclaimer lang="en_GB">Example disclaimer</disclaimer>
        <platform>all</platform>
    </extension>
</addon>
`

const testReferencePO = `# Kodi Media Center language file
msgid ""
msgstr ""
"Language: en_GB\n"
"Content-Type: text/plain; charset=UTF-8\n"

msgctxt "Addon Summary"
msgid "Example summary"
msgstr ""

msgctxt "#30000"
msgid "Play"
msgstr ""
`

const testGermanPO = `# Kodi Media Center language file
msgid ""
msgstr ""
"Language: de_DE\n"
"Content-Type: text/plain; charset=UTF-8\n"

msgctxt "Addon Summary"
msgid "Example summary"
msgstr "Beispiel Zusammenfassung"

msgctxt "#30000"
msgid "Play"
msgstr "Abspielen"
`

const (
	addonXMLPath  = "/addon/addon.xml"
	referencePath = "/addon/resources/language/resource.language.en_gb/strings.po"
	germanPath    = "/addon/resources/language/resource.language.de_de/strings.po"
)

// recordingLogger captures log lines so tests can assert on the
// messages a run produces.
type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) log(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Verbose(format string, args ...interface{}) { l.log(format, args...) }
func (l *recordingLogger) Info(format string, args ...interface{})    { l.log(format, args...) }
func (l *recordingLogger) Error(format string, args ...interface{})   { l.log(format, args...) }

func (l *recordingLogger) contains(t *testing.T, want string) bool {
	t.Helper()
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, line := range l.lines {
		if line == want {
			return true
		}
	}
	return false
}

func newTestService(t *testing.T) (*SyncService, filesystem.Provider) {
	t.Helper()
	fs := filesystem.NewMemory()
	return NewSyncServiceWithFS(logging.NewNullLogger(), fs), fs
}

func seedAddon(t *testing.T, fs filesystem.Provider) {
	t.Helper()
	files := map[string]string{
		addonXMLPath:  testAddonXML,
		referencePath: testReferencePO,
		germanPath:    testGermanPO,
	}
	for path, content := range files {
		if err := fs.WriteFile(path, []byte(content)); err != nil {
			t.Fatalf("WriteFile(%s) failed: %v", path, err)
		}
	}
}

func readFile(t *testing.T, fs filesystem.Provider, path string) string {
	t.Helper()
	data, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%s) failed: %v", path, err)
	}
	return string(data)
}

func TestNewSyncServiceWithFS_NilArgs(t *testing.T) {
	logger := logging.NewNullLogger()
	fs := filesystem.NewMemory()

	tests := []struct {
		name string
		fn   func()
	}{
		{"nil logger", func() { NewSyncServiceWithFS(nil, fs) }},
		{"nil filesystem", func() { NewSyncServiceWithFS(logger, nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Error("Expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestRun_BothDirections(t *testing.T) {
	s, fs := newTestService(t)
	seedAddon(t, fs)

	result, err := s.Run(samt.SyncConfig{Path: "/addon", Direction: samt.DirectionBoth})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(result.Packages) != 1 {
		t.Fatalf("expected 1 package, got %d", len(result.Packages))
	}

	pkg := result.Packages[0]
	if !pkg.AddonXMLChanged {
		t.Error("addon.xml should have been rewritten")
	}
	if len(pkg.ChangedPOFiles) != 1 || pkg.ChangedPOFiles[0] != referencePath {
		t.Errorf("ChangedPOFiles = %v, want only the reference catalog", pkg.ChangedPOFiles)
	}
	if pkg.CheckedPOFiles != 2 {
		t.Errorf("CheckedPOFiles = %d, want 2", pkg.CheckedPOFiles)
	}

	manifest := readFile(t, fs, addonXMLPath)
	if !strings.Contains(manifest, `        <summary lang="de_DE">Beispiel Zusammenfassung</summary>`) {
		t.Errorf("german summary missing from manifest:\n%s", manifest)
	}
	if !strings.Contains(manifest, `<summary lang="fr_FR">Exemple de résumé</summary>`) {
		t.Errorf("french summary lost:\n%s", manifest)
	}
	if !strings.Contains(manifest, "<platform>all</platform>") {
		t.Errorf("unmanaged element lost:\n%s", manifest)
	}

	reference := readFile(t, fs, referencePath)
	for _, want := range []string{
		"msgctxt \"Addon Summary\"\nmsgid \"Example summary\"\nmsgstr \"\"",
		"msgctxt \"Addon Description\"\nmsgid \"Example description\"\nmsgstr \"\"",
		"msgctxt \"Addon Disclaimer\"\nmsgid \"Example disclaimer\"\nmsgstr \"\"",
	} {
		if !strings.Contains(reference, want) {
			t.Errorf("reference catalog missing block %q:\n%s", want, reference)
		}
	}
	if !strings.Contains(reference, `msgctxt "#30000"`) {
		t.Errorf("string entries lost:\n%s", reference)
	}

	german := readFile(t, fs, germanPath)
	if german != testGermanPO {
		t.Errorf("german catalog was already canonical and should be untouched:\n%s", german)
	}
}

func TestRun_SecondRunIsNoOp(t *testing.T) {
	s, fs := newTestService(t)
	seedAddon(t, fs)

	config := samt.SyncConfig{Path: "/addon", Direction: samt.DirectionBoth}
	if _, err := s.Run(config); err != nil {
		t.Fatalf("first Run failed: %v", err)
	}

	snapshot := map[string]string{
		addonXMLPath:  readFile(t, fs, addonXMLPath),
		referencePath: readFile(t, fs, referencePath),
		germanPath:    readFile(t, fs, germanPath),
	}

	result, err := s.Run(config)
	if err != nil {
		t.Fatalf("second Run failed: %v", err)
	}
	if result.Changed() {
		t.Errorf("second run reported changes: %+v", result.Packages[0])
	}

	for path, want := range snapshot {
		if got := readFile(t, fs, path); got != want {
			t.Errorf("%s changed between runs:\n--- got ---\n%s\n--- want ---\n%s", path, got, want)
		}
	}
}

func TestRun_POToXMLLeavesCatalogsAlone(t *testing.T) {
	s, fs := newTestService(t)
	seedAddon(t, fs)

	result, err := s.Run(samt.SyncConfig{Path: "/addon", Direction: samt.DirectionPOToXML})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !result.Packages[0].AddonXMLChanged {
		t.Error("addon.xml should have been rewritten")
	}
	if got := readFile(t, fs, referencePath); got != testReferencePO {
		t.Errorf("reference catalog modified in po-to-xml direction:\n%s", got)
	}
}

func TestRun_XMLToPOLeavesManifestAlone(t *testing.T) {
	s, fs := newTestService(t)
	seedAddon(t, fs)

	result, err := s.Run(samt.SyncConfig{Path: "/addon", Direction: samt.DirectionXMLToPO})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.Packages[0].AddonXMLChanged {
		t.Error("addon.xml should not change in xml-to-po direction")
	}
	if got := readFile(t, fs, addonXMLPath); got != testAddonXML {
		t.Errorf("manifest modified in xml-to-po direction:\n%s", got)
	}
	if len(result.Packages[0].ChangedPOFiles) == 0 {
		t.Error("catalogs should have been rewritten")
	}
}

func TestRun_PriorityDecidesConflicts(t *testing.T) {
	conflictXML := `<addon id="plugin.video.example">
    <extension point="xbmc.addon.metadata">
        <summary lang="en_GB">Manifest wording</summary>
    </extension>
</addon>
`
	conflictPO := `msgid ""
msgstr ""
"Language: en_GB\n"

msgctxt "Addon Summary"
msgid "Catalog wording"
msgstr ""
`

	tests := []struct {
		name        string
		priority    samt.Priority
		wantMsgid   string
		wantChanged bool
	}{
		{"catalog wins by default", samt.PriorityPO, `msgid "Catalog wording"`, false},
		{"manifest wins when preferred", samt.PriorityXML, `msgid "Manifest wording"`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, fs := newTestService(t)
			if err := fs.WriteFile(addonXMLPath, []byte(conflictXML)); err != nil {
				t.Fatal(err)
			}
			if err := fs.WriteFile(referencePath, []byte(conflictPO)); err != nil {
				t.Fatal(err)
			}

			result, err := s.Run(samt.SyncConfig{
				Path:      "/addon",
				Direction: samt.DirectionXMLToPO,
				Priority:  tt.priority,
			})
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}

			if changed := result.Packages[0].Changed(); changed != tt.wantChanged {
				t.Errorf("Changed() = %v, want %v", changed, tt.wantChanged)
			}
			if got := readFile(t, fs, referencePath); !strings.Contains(got, tt.wantMsgid) {
				t.Errorf("catalog missing %q:\n%s", tt.wantMsgid, got)
			}
		})
	}
}

func TestRun_LifecycleState(t *testing.T) {
	lifecycleXML := `<addon id="plugin.video.dead">
    <extension point="xbmc.addon.metadata">
        <summary lang="en_GB">Dead addon</summary>
        <lifecyclestate type="broken" lang="en_GB">Site shut down</lifecyclestate>
    </extension>
</addon>
`
	germanWithLifecycle := `msgid ""
msgstr ""
"Language: de_DE\n"

msgctxt "Addon Lifecyclestate"
msgid "Site shut down"
msgstr "Seite abgeschaltet"
`
	referenceMinimal := `msgid ""
msgstr ""
"Language: en_GB\n"

msgctxt "Addon Summary"
msgid "Dead addon"
msgstr ""
`

	s, fs := newTestService(t)
	for path, content := range map[string]string{
		addonXMLPath:  lifecycleXML,
		referencePath: referenceMinimal,
		germanPath:    germanWithLifecycle,
	} {
		if err := fs.WriteFile(path, []byte(content)); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := s.Run(samt.SyncConfig{Path: "/addon", Direction: samt.DirectionBoth}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	manifest := readFile(t, fs, addonXMLPath)
	if !strings.Contains(manifest, `<lifecyclestate type="broken" lang="de_DE">Seite abgeschaltet</lifecyclestate>`) {
		t.Errorf("german lifecycle state missing from manifest:\n%s", manifest)
	}
	if !strings.Contains(manifest, `<lifecyclestate type="broken" lang="en_GB">Site shut down</lifecyclestate>`) {
		t.Errorf("reference lifecycle state lost:\n%s", manifest)
	}

	reference := readFile(t, fs, referencePath)
	if !strings.Contains(reference, "msgctxt \"Addon Lifecyclestate\"\nmsgid \"Site shut down\"\nmsgstr \"\"") {
		t.Errorf("lifecycle block missing from reference catalog:\n%s", reference)
	}
}

func TestRun_QuoteEntitiesSurviveRoundTrip(t *testing.T) {
	quotedXML := `<addon id="plugin.video.example">
    <extension point="xbmc.addon.metadata">
        <summary lang="en_GB">Watch &quot;live&quot; TV</summary>
    </extension>
</addon>
`
	referenceMinimal := `msgid ""
msgstr ""
"Language: en_GB\n"

msgctxt "#30000"
msgid "Play"
msgstr ""
`

	s, fs := newTestService(t)
	if err := fs.WriteFile(addonXMLPath, []byte(quotedXML)); err != nil {
		t.Fatal(err)
	}
	if err := fs.WriteFile(referencePath, []byte(referenceMinimal)); err != nil {
		t.Fatal(err)
	}

	config := samt.SyncConfig{Path: "/addon", Direction: samt.DirectionBoth}
	if _, err := s.Run(config); err != nil {
		t.Fatalf("first Run failed: %v", err)
	}

	reference := readFile(t, fs, referencePath)
	if !strings.Contains(reference, `msgid "Watch \"live\" TV"`) {
		t.Errorf("catalog msgid should carry escaped quotes:\n%s", reference)
	}

	result, err := s.Run(config)
	if err != nil {
		t.Fatalf("second Run failed: %v", err)
	}
	if result.Changed() {
		t.Error("quote escaping should be stable across runs")
	}
	manifest := readFile(t, fs, addonXMLPath)
	if !strings.Contains(manifest, `<summary lang="en_GB">Watch &quot;live&quot; TV</summary>`) {
		t.Errorf("manifest should keep the quot entities:\n%s", manifest)
	}
}

func TestRun_DryRunWritesNothing(t *testing.T) {
	s, fs := newTestService(t)
	seedAddon(t, fs)

	result, err := s.Run(samt.SyncConfig{Path: "/addon", Direction: samt.DirectionBoth, DryRun: true})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !result.Changed() {
		t.Error("dry run should report pending changes")
	}
	if got := readFile(t, fs, addonXMLPath); got != testAddonXML {
		t.Error("dry run modified addon.xml")
	}
	if got := readFile(t, fs, referencePath); got != testReferencePO {
		t.Error("dry run modified the reference catalog")
	}
}

func TestRun_MissingAddonXML(t *testing.T) {
	s, fs := newTestService(t)
	if err := fs.WriteFile(referencePath, []byte(testReferencePO)); err != nil {
		t.Fatal(err)
	}

	result, err := s.Run(samt.SyncConfig{Path: "/addon"})
	if !errors.Is(err, samt.ErrNoAddonXML) {
		t.Fatalf("Run error = %v, want ErrNoAddonXML", err)
	}
	if len(result.Packages) != 1 || result.Packages[0].Err == nil {
		t.Errorf("package error missing: %+v", result.Packages)
	}
}

func TestRun_MissingCatalogs(t *testing.T) {
	s, fs := newTestService(t)
	if err := fs.WriteFile(addonXMLPath, []byte(testAddonXML)); err != nil {
		t.Fatal(err)
	}

	_, err := s.Run(samt.SyncConfig{Path: "/addon"})
	if !errors.Is(err, samt.ErrNoPOFiles) {
		t.Fatalf("Run error = %v, want ErrNoPOFiles", err)
	}
}

func TestRun_MissingReferenceCatalog(t *testing.T) {
	s, fs := newTestService(t)
	if err := fs.WriteFile(addonXMLPath, []byte(testAddonXML)); err != nil {
		t.Fatal(err)
	}
	if err := fs.WriteFile(germanPath, []byte(testGermanPO)); err != nil {
		t.Fatal(err)
	}

	_, err := s.Run(samt.SyncConfig{Path: "/addon"})
	if !errors.Is(err, samt.ErrNoReferencePO) {
		t.Fatalf("Run error = %v, want ErrNoReferencePO", err)
	}
}

func TestRun_MissingMetadataExtension(t *testing.T) {
	s, fs := newTestService(t)
	if err := fs.WriteFile(addonXMLPath, []byte("<addon id=\"plugin.video.example\">\n</addon>\n")); err != nil {
		t.Fatal(err)
	}
	if err := fs.WriteFile(referencePath, []byte(testReferencePO)); err != nil {
		t.Fatal(err)
	}

	_, err := s.Run(samt.SyncConfig{Path: "/addon", Direction: samt.DirectionPOToXML})
	if !errors.Is(err, samt.ErrNoMetadataExtension) {
		t.Fatalf("Run error = %v, want ErrNoMetadataExtension", err)
	}
}

func TestRun_MultiSkipsBrokenAddons(t *testing.T) {
	s, fs := newTestService(t)

	// first addon is complete, second lacks addon.xml
	files := map[string]string{
		"/repo/plugin.one/addon.xml": testAddonXML,
		"/repo/plugin.one/resources/language/resource.language.en_gb/strings.po": testReferencePO,
		"/repo/plugin.two/resources/language/resource.language.en_gb/strings.po": testReferencePO,
	}
	for path, content := range files {
		if err := fs.WriteFile(path, []byte(content)); err != nil {
			t.Fatal(err)
		}
	}

	result, err := s.Run(samt.SyncConfig{Path: "/repo", Multi: true})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(result.Packages) != 2 {
		t.Fatalf("expected 2 packages, got %d", len(result.Packages))
	}
	if result.Skipped() != 1 {
		t.Errorf("Skipped() = %d, want 1", result.Skipped())
	}
	if !result.Packages[0].Changed() {
		t.Error("first addon should have been synced")
	}
	if !errors.Is(result.Packages[1].Err, samt.ErrNoAddonXML) {
		t.Errorf("second addon error = %v, want ErrNoAddonXML", result.Packages[1].Err)
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	s, _ := newTestService(t)

	_, err := s.Run(samt.SyncConfig{
		Path:      "/addon",
		Direction: samt.DirectionPOToXML,
		Priority:  samt.PriorityXML,
	})
	if !errors.Is(err, samt.ErrInvalidConfig) {
		t.Fatalf("Run error = %v, want ErrInvalidConfig", err)
	}
}

func TestRun_ProgressMessages(t *testing.T) {
	logger := &recordingLogger{}
	fs := filesystem.NewMemory()
	s := NewSyncServiceWithFS(logger, fs)
	seedAddon(t, fs)

	if _, err := s.Run(samt.SyncConfig{Path: "/addon", Direction: samt.DirectionBoth}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for _, want := range []string{
		"Running sync-addon-metadata-translations on /addon...",
		"Syncing po files to addon.xml...",
		"addon.xml has been modified... completed",
		"Syncing addon.xml to po files...",
		"Writing po files... starting",
		"en_GB po file changed... writing",
		"Writing po files... completed",
	} {
		if !logger.contains(t, want) {
			t.Errorf("missing log line %q in %v", want, logger.lines)
		}
	}
}
