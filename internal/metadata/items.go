package metadata

import (
	"sort"

	"github.com/xbmc/sync-addon-metadata-translations/pkg/samt"
)

// Item is one language's value for a field.
type Item struct {
	Language string
	Text     string
}

// Merge unions manifest and catalog items for one field, keyed by language
// code. The priority side wins duplicates; the other side contributes only
// languages the winner is missing. Within a side the first occurrence of a
// language wins. The result is sorted by language code so manifest
// regeneration is deterministic.
func Merge(xmlItems, poItems []Item, priority samt.Priority) []Item {
	primary, secondary := poItems, xmlItems
	if priority == samt.PriorityXML {
		primary, secondary = xmlItems, poItems
	}

	merged := make([]Item, 0, len(primary)+len(secondary))
	seen := make(map[string]bool, len(primary))

	for _, item := range primary {
		if seen[item.Language] {
			continue
		}
		seen[item.Language] = true
		merged = append(merged, item)
	}
	for _, item := range secondary {
		if seen[item.Language] {
			continue
		}
		seen[item.Language] = true
		merged = append(merged, item)
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Language < merged[j].Language
	})
	return merged
}

// FindLanguage returns the item for the given language code, or nil.
func FindLanguage(items []Item, language string) *Item {
	for i := range items {
		if items[i].Language == language {
			return &items[i]
		}
	}
	return nil
}
