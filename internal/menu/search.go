package menu

import (
	"strings"

	"github.com/voicebite/voicebite-backend/pkg/db/models"
)

// minTokenLength filters out noise tokens ("a", "to") that would otherwise
// match almost every entry.
const minTokenLength = 3

// Filter returns the entries matching the free-text query. Matching is
// case-insensitive: the query is split on whitespace and an entry matches
// when its name, description, or category contains any token of at least
// minTokenLength characters.
func Filter(items []models.MenuItem, query string) []models.MenuItem {
	tokens := searchTokens(query)
	if len(tokens) == 0 {
		return nil
	}

	var matched []models.MenuItem
	for _, item := range items {
		if matchesAny(item, tokens) {
			matched = append(matched, item)
		}
	}
	return matched
}

func searchTokens(query string) []string {
	var tokens []string
	for _, field := range strings.Fields(strings.ToLower(query)) {
		if len(field) >= minTokenLength {
			tokens = append(tokens, field)
		}
	}
	return tokens
}

func matchesAny(item models.MenuItem, tokens []string) bool {
	name := strings.ToLower(item.Name)
	description := strings.ToLower(item.Description)
	category := strings.ToLower(item.Category)
	for _, token := range tokens {
		if strings.Contains(name, token) ||
			strings.Contains(description, token) ||
			strings.Contains(category, token) {
			return true
		}
	}
	return false
}
