package intent

import (
	"strings"
	"testing"
	"time"

	"github.com/voicebite/voicebite-backend/internal/menu"
	"github.com/voicebite/voicebite-backend/pkg/db/models"
)

func promptSnapshot() menu.Snapshot {
	return menu.Snapshot{
		Items: []models.MenuItem{
			{Name: "Margherita Pizza", Description: "Classic tomato and mozzarella.", Category: "pizza"},
			{Name: "Classic Coke", Description: "Chilled can of Coca-Cola.", Category: "beverages"},
			{Name: "Molten Lava Cake", Description: "Warm chocolate cake.", Category: "desserts"},
		},
		CapturedAt: time.Now(),
	}
}

func TestCompileEmbedsCatalogAndTranscript(t *testing.T) {
	doc := string(Compile("show me beverages", promptSnapshot()))

	for _, want := range []string{
		"Margherita Pizza",
		"Chilled can of Coca-Cola.",
		"pizza, beverages, desserts",
		`"show me beverages"`,
		PromptVersion,
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("document missing %q:\n%s", want, doc)
		}
	}

	for _, action := range []Action{
		ActionGetCategory, ActionGetOffers, ActionSearch, ActionNavigate,
		ActionAddToCart, ActionProcessPayment, ActionListCategories, ActionGuideUser,
	} {
		if !strings.Contains(doc, string(action)) {
			t.Fatalf("document missing action %s", action)
		}
	}
}

func TestCompileIsDeterministic(t *testing.T) {
	snap := promptSnapshot()
	first := Compile("add a coke", snap)
	second := Compile("add a coke", snap)
	if first != second {
		t.Fatalf("same inputs produced different documents")
	}
}

func TestCompileQuotesTranscriptVerbatim(t *testing.T) {
	transcript := `add the "family feast" deal`
	doc := string(Compile(transcript, promptSnapshot()))
	if !strings.Contains(doc, `add the \"family feast\" deal`) {
		t.Fatalf("transcript not embedded verbatim:\n%s", doc)
	}
}
