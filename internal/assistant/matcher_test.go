package assistant

import (
	"testing"

	"github.com/voicebite/voicebite-backend/pkg/db/models"
)

func TestMatchBidirectionalSubstring(t *testing.T) {
	catalog := []models.MenuItem{
		{Name: "Margherita Pizza"},
		{Name: "Pepperoni Blast"},
		{Name: "Chicken Tikka Pizza"},
	}

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{name: "query inside entry name", query: "pizza", want: "Margherita Pizza"},
		{name: "entry name inside query", query: "one large margherita pizza please", want: "Margherita Pizza"},
		{name: "partial phrase", query: "tikka pizza", want: "Chicken Tikka Pizza"},
		{name: "case insensitive", query: "PEPPERONI BLAST", want: "Pepperoni Blast"},
		{name: "first match wins", query: "pizza", want: "Margherita Pizza"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Match(tt.query, catalog)
			if !ok {
				t.Fatalf("no match for %q", tt.query)
			}
			if got.Name != tt.want {
				t.Fatalf("matched %q, want %q", got.Name, tt.want)
			}
		})
	}
}

func TestMatchCommutativeContains(t *testing.T) {
	entry := []models.MenuItem{{Name: "Margherita Pizza"}}

	if _, ok := Match("pizza", entry); !ok {
		t.Fatalf("query contained in name should match")
	}
	if _, ok := Match("a hot margherita pizza with extra basil", entry); !ok {
		t.Fatalf("name contained in query should match")
	}
}

func TestMatchMisses(t *testing.T) {
	catalog := []models.MenuItem{{Name: "Margherita Pizza"}}

	if _, ok := Match("sushi platter", catalog); ok {
		t.Fatalf("unrelated query should not match")
	}
	if _, ok := Match("   ", catalog); ok {
		t.Fatalf("blank query should not match")
	}
	if _, ok := Match("pizza", nil); ok {
		t.Fatalf("empty catalog should not match")
	}
}
