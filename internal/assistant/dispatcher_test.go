package assistant

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/voicebite/voicebite-backend/internal/intent"
	"github.com/voicebite/voicebite-backend/internal/menu"
	"github.com/voicebite/voicebite-backend/pkg/db/models"
)

func planSnapshot() menu.Snapshot {
	return menu.Snapshot{
		Items: []models.MenuItem{
			{ID: uuid.New(), Name: "Pepperoni Blast", Description: "Loaded with pepperoni.", Category: "pizza"},
			{ID: uuid.New(), Name: "Classic Coke", Description: "Chilled can.", Category: "beverages"},
		},
		CapturedAt: time.Now(),
	}
}

func singleEffect(t *testing.T, cmd intent.Command, snap menu.Snapshot) Effect {
	t.Helper()
	effects := Plan(cmd, snap)
	if len(effects) != 1 {
		t.Fatalf("expected one effect, got %+v", effects)
	}
	return effects[0]
}

func TestPlanGetCategory(t *testing.T) {
	snap := planSnapshot()

	known := singleEffect(t, intent.Command{
		Action:  intent.ActionGetCategory,
		Payload: intent.Payload{Category: "Beverages"},
	}, snap)
	if known.Kind != EffectNavigate || known.Path != "/category/beverages" {
		t.Fatalf("known category effect = %+v", known)
	}

	unknown := singleEffect(t, intent.Command{
		Action:  intent.ActionGetCategory,
		Payload: intent.Payload{Category: "sushi"},
	}, snap)
	if unknown.Kind != EffectNavigate || unknown.Path != "/search?q=sushi" {
		t.Fatalf("unknown category should degrade to search, got %+v", unknown)
	}
}

func TestPlanNavigation(t *testing.T) {
	snap := planSnapshot()
	tests := []struct {
		name string
		cmd  intent.Command
		path string
	}{
		{name: "offers", cmd: intent.Command{Action: intent.ActionGetOffers}, path: "/offers"},
		{name: "search", cmd: intent.Command{Action: intent.ActionSearch, Payload: intent.Payload{Query: "spicy pizza"}}, path: "/search?q=spicy+pizza"},
		{name: "home", cmd: intent.Command{Action: intent.ActionNavigate, Payload: intent.Payload{Page: "Home"}}, path: "/"},
		{name: "menu is root", cmd: intent.Command{Action: intent.ActionNavigate, Payload: intent.Payload{Page: "menu"}}, path: "/"},
		{name: "other page", cmd: intent.Command{Action: intent.ActionNavigate, Payload: intent.Payload{Page: "Cart"}}, path: "/cart"},
		{name: "empty page", cmd: intent.Command{Action: intent.ActionNavigate}, path: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			effect := singleEffect(t, tt.cmd, snap)
			if effect.Kind != EffectNavigate || effect.Path != tt.path {
				t.Fatalf("effect = %+v, want navigate to %s", effect, tt.path)
			}
		})
	}
}

func TestPlanAddToCart(t *testing.T) {
	snap := planSnapshot()

	matched := singleEffect(t, intent.Command{
		Action:  intent.ActionAddToCart,
		Payload: intent.Payload{Name: "pepperoni pizza"},
	}, snap)
	if matched.Kind != EffectCartAdd || matched.Item.Name != "Pepperoni Blast" {
		t.Fatalf("matched effect = %+v", matched)
	}

	missed := singleEffect(t, intent.Command{
		Action:  intent.ActionAddToCart,
		Payload: intent.Payload{Name: "sushi platter"},
	}, snap)
	if missed.Kind != EffectNotify || missed.Level != NotifyError {
		t.Fatalf("miss should notify an error, got %+v", missed)
	}
	if !strings.Contains(missed.Message, "sushi platter") {
		t.Fatalf("miss message should name the requested item: %q", missed.Message)
	}

	unnamed := singleEffect(t, intent.Command{Action: intent.ActionAddToCart}, snap)
	if !strings.Contains(unnamed.Message, "that item") {
		t.Fatalf("nameless miss should use the placeholder: %q", unnamed.Message)
	}
}

func TestPlanListCategories(t *testing.T) {
	snap := planSnapshot()

	withOffers := singleEffect(t, intent.Command{
		Action:  intent.ActionListCategories,
		Payload: intent.Payload{Categories: []string{"pizza", "beverages"}, HasOffers: true},
	}, snap)
	if withOffers.Kind != EffectNotify || withOffers.Level != NotifyInfo {
		t.Fatalf("effect = %+v", withOffers)
	}
	if !strings.Contains(withOffers.Message, "pizza, beverages") || !strings.Contains(withOffers.Message, "deals") {
		t.Fatalf("message = %q", withOffers.Message)
	}

	empty := singleEffect(t, intent.Command{Action: intent.ActionListCategories}, snap)
	if empty.Kind != EffectNotify || empty.Level != NotifyError {
		t.Fatalf("empty category list should be an error message, got %+v", empty)
	}
}

func TestPlanGuideUser(t *testing.T) {
	snap := planSnapshot()

	verbatim := singleEffect(t, intent.Command{
		Action:  intent.ActionGuideUser,
		Payload: intent.Payload{Message: "Say 'show me pizzas' to browse."},
	}, snap)
	if verbatim.Message != "Say 'show me pizzas' to browse." {
		t.Fatalf("message not surfaced verbatim: %q", verbatim.Message)
	}

	fallback := singleEffect(t, intent.Command{Action: intent.ActionGuideUser}, snap)
	if fallback.Message != genericHelpMessage {
		t.Fatalf("absent message should use the generic help text, got %q", fallback.Message)
	}
}

func TestPlanProcessPayment(t *testing.T) {
	effect := singleEffect(t, intent.Command{Action: intent.ActionProcessPayment}, planSnapshot())
	if effect.Kind != EffectSettlePayment {
		t.Fatalf("effect = %+v", effect)
	}
}
