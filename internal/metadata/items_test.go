package metadata

import (
	"testing"

	"github.com/xbmc/sync-addon-metadata-translations/pkg/samt"
)

func TestMerge_POPriority(t *testing.T) {
	xmlItems := []Item{
		{"en_GB", "xml english"},
		{"de_DE", "xml german"},
	}
	poItems := []Item{
		{"en_GB", "po english"},
		{"fr_FR", "po french"},
	}

	got := Merge(xmlItems, poItems, samt.PriorityPO)

	want := []Item{
		{"de_DE", "xml german"},
		{"en_GB", "po english"},
		{"fr_FR", "po french"},
	}
	assertItems(t, got, want)
}

func TestMerge_XMLPriority(t *testing.T) {
	xmlItems := []Item{
		{"en_GB", "xml english"},
		{"de_DE", "xml german"},
	}
	poItems := []Item{
		{"en_GB", "po english"},
		{"fr_FR", "po french"},
	}

	got := Merge(xmlItems, poItems, samt.PriorityXML)

	want := []Item{
		{"de_DE", "xml german"},
		{"en_GB", "xml english"},
		{"fr_FR", "po french"},
	}
	assertItems(t, got, want)
}

func TestMerge_DuplicateWithinSide(t *testing.T) {
	xmlItems := []Item{
		{"en_GB", "first"},
		{"en_GB", "second"},
	}

	got := Merge(xmlItems, nil, samt.PriorityXML)

	want := []Item{{"en_GB", "first"}}
	assertItems(t, got, want)
}

func TestMerge_EmptySides(t *testing.T) {
	if got := Merge(nil, nil, samt.PriorityPO); len(got) != 0 {
		t.Errorf("Merge(nil, nil) = %v, want empty", got)
	}

	got := Merge(nil, []Item{{"de_DE", "x"}}, samt.PriorityPO)
	assertItems(t, got, []Item{{"de_DE", "x"}})
}

func TestMerge_SortsByLanguage(t *testing.T) {
	poItems := []Item{
		{"zh_CN", "c"},
		{"de_DE", "a"},
		{"en_GB", "b"},
	}

	got := Merge(nil, poItems, samt.PriorityPO)

	want := []Item{
		{"de_DE", "a"},
		{"en_GB", "b"},
		{"zh_CN", "c"},
	}
	assertItems(t, got, want)
}

func TestFindLanguage(t *testing.T) {
	items := []Item{
		{"en_GB", "english"},
		{"de_DE", "german"},
	}

	if got := FindLanguage(items, "de_DE"); got == nil || got.Text != "german" {
		t.Errorf("FindLanguage(de_DE) = %v, want german", got)
	}
	if got := FindLanguage(items, "fr_FR"); got != nil {
		t.Errorf("FindLanguage(fr_FR) = %v, want nil", got)
	}
}

func assertItems(t *testing.T, got, want []Item) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d items %v, want %d items %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
