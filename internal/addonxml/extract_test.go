package addonxml

import (
	"testing"

	"github.com/xbmc/sync-addon-metadata-translations/internal/metadata"
)

const sampleAddonXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<addon id="plugin.video.example" name="Example" version="1.2.3" provider-name="example">
    <requires>
        <import addon="xbmc.python" version="3.0.0"/>
    </requires>
    <extension point="xbmc.python.pluginsource" library="main.py">
        <provides>video</provides>
    </extension>
    <extension point="xbmc.addon.metadata">
        <summary lang="en_GB">Example summary</summary>
        <summary lang="de_DE">Beispiel Zusammenfassung</summary>
        <description lang="en_GB">Example description</description>
        <disclaimer lang="en_GB">Example disclaimer</disclaimer>
        <platform>all</platform>
        <license>GPL-3.0-only</license>
        <assets>
            <icon>resources/icon.png</icon>
        </assets>
    </extension>
</addon>
`

func parseSample(t *testing.T, content string) *Document {
	t.Helper()
	return Parse("/addon/addon.xml", []byte(content))
}

func TestExtract_Items(t *testing.T) {
	doc := parseSample(t, sampleAddonXML)
	e := Extract(doc)

	summaries := e.Items(metadata.Summary)
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].Language != "en_GB" || summaries[0].Text != "Example summary" {
		t.Errorf("summaries[0] = %+v", summaries[0])
	}
	if summaries[1].Language != "de_DE" || summaries[1].Text != "Beispiel Zusammenfassung" {
		t.Errorf("summaries[1] = %+v", summaries[1])
	}

	descriptions := e.Items(metadata.Description)
	if len(descriptions) != 1 || descriptions[0].Text != "Example description" {
		t.Errorf("descriptions = %+v", descriptions)
	}

	disclaimers := e.Items(metadata.Disclaimer)
	if len(disclaimers) != 1 || disclaimers[0].Text != "Example disclaimer" {
		t.Errorf("disclaimers = %+v", disclaimers)
	}
}

func TestExtract_NoLifecycleMeansThreeActiveFields(t *testing.T) {
	doc := parseSample(t, sampleAddonXML)
	e := Extract(doc)

	if e.HasLifecycle() {
		t.Error("HasLifecycle() = true, want false")
	}
	fields := e.ActiveFields()
	if len(fields) != 3 {
		t.Fatalf("ActiveFields() returned %d fields, want 3", len(fields))
	}
}

func TestExtract_Lifecycle(t *testing.T) {
	content := `<addon id="plugin.video.dead">
    <extension point="xbmc.addon.metadata">
        <summary lang="en_GB">Dead addon</summary>
        <lifecyclestate type="broken" lang="en_GB">Site shut down</lifecyclestate>
        <lifecyclestate type="deprecated" lang="de_DE">Seite abgeschaltet</lifecyclestate>
    </extension>
</addon>
`
	doc := parseSample(t, content)
	e := Extract(doc)

	if !e.HasLifecycle() {
		t.Fatal("HasLifecycle() = false, want true")
	}
	if got := e.LifecycleType(); got != "broken" {
		t.Errorf("LifecycleType() = %q, want %q (first match wins)", got, "broken")
	}

	items := e.Items(metadata.Lifecyclestate)
	if len(items) != 2 {
		t.Fatalf("expected 2 lifecycle items, got %d", len(items))
	}
	if items[0].Language != "en_GB" || items[0].Text != "Site shut down" {
		t.Errorf("items[0] = %+v", items[0])
	}

	if fields := e.ActiveFields(); len(fields) != 4 {
		t.Errorf("ActiveFields() returned %d fields, want 4", len(fields))
	}
}

func TestWhitespace_FallbackOrder(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			"description wins",
			"  <summary lang=\"en_GB\">S</summary>\n\t<description lang=\"en_GB\">D</description>\n",
			"\t",
		},
		{
			"disclaimer before summary",
			"  <summary lang=\"en_GB\">S</summary>\n\t\t<disclaimer lang=\"en_GB\">X</disclaimer>\n",
			"\t\t",
		},
		{
			"summary when alone",
			"      <summary lang=\"en_GB\">S</summary>\n",
			"      ",
		},
		{
			"metadata child fallback",
			"<extension point=\"xbmc.addon.metadata\">\n        <platform>all</platform>\n</extension>\n",
			"        ",
		},
		{
			"closed metadata child fallback",
			"    <license>GPL-3.0-only</license>\n",
			"    ",
		},
		{
			"default when nothing found",
			"<addon>\n</addon>\n",
			defaultIndent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parseSample(t, tt.content)
			if got := Extract(doc).Whitespace(); got != tt.want {
				t.Errorf("Whitespace() = %q, want %q", got, tt.want)
			}
		})
	}
}
