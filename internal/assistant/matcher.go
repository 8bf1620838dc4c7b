package assistant

import (
	"strings"

	"github.com/voicebite/voicebite-backend/pkg/db/models"
)

// Match fuzzy-resolves a spoken item name against the catalog. The test
// is a case-insensitive bidirectional substring: the query inside the
// entry name or the entry name inside the query, whichever holds. The
// first match in catalog order wins. The oracle often extracts a partial
// or superset phrase of the real name ("tikka pizza" for "Chicken Tikka
// Pizza"), so both directions are needed for recall.
func Match(name string, items []models.MenuItem) (models.MenuItem, bool) {
	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" {
		return models.MenuItem{}, false
	}
	for _, item := range items {
		entryName := strings.ToLower(item.Name)
		if strings.Contains(entryName, query) || strings.Contains(query, entryName) {
			return item, true
		}
	}
	return models.MenuItem{}, false
}
