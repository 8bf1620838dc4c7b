package assistant

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/voicebite/voicebite-backend/internal/intent"
	"github.com/voicebite/voicebite-backend/internal/menu"
)

const genericHelpMessage = "Try asking for a category, searching for a dish, or adding something to your basket."

// Plan maps a resolved command and the current catalog snapshot to the
// side effects it should have. It is a pure function: no ledger mutation,
// no navigation, no settlement happens here. The session engine executes
// the returned effects in order.
func Plan(cmd intent.Command, snap menu.Snapshot) []Effect {
	switch cmd.Action {
	case intent.ActionGetCategory:
		return planGetCategory(cmd.Payload.Category, snap)
	case intent.ActionGetOffers:
		return []Effect{navigateTo("/offers")}
	case intent.ActionSearch:
		return []Effect{navigateTo(searchPath(cmd.Payload.Query))}
	case intent.ActionNavigate:
		return []Effect{navigateTo(pagePath(cmd.Payload.Page))}
	case intent.ActionAddToCart:
		return planAddToCart(cmd.Payload.Name, snap)
	case intent.ActionProcessPayment:
		return []Effect{{Kind: EffectSettlePayment}}
	case intent.ActionListCategories:
		return planListCategories(cmd.Payload.Categories, cmd.Payload.HasOffers)
	case intent.ActionGuideUser:
		message := cmd.Payload.Message
		if message == "" {
			message = genericHelpMessage
		}
		return []Effect{notify(NotifyInfo, message)}
	default:
		// Unreachable for resolver-built commands; kept so a stray
		// hand-built command cannot crash the engine.
		return []Effect{notify(NotifyError, "I couldn't understand that command.")}
	}
}

// planGetCategory navigates to the category view when the category is
// known, and degrades to a search for the same text otherwise, so the
// user never lands on a dead end.
func planGetCategory(category string, snap menu.Snapshot) []Effect {
	if snap.HasCategory(category) {
		return []Effect{navigateTo("/category/" + url.PathEscape(strings.ToLower(strings.TrimSpace(category))))}
	}
	return []Effect{navigateTo(searchPath(category))}
}

func planAddToCart(name string, snap menu.Snapshot) []Effect {
	item, ok := Match(name, snap.Items)
	if !ok {
		requested := name
		if requested == "" {
			requested = "that item"
		}
		return []Effect{notify(NotifyError, fmt.Sprintf("Sorry, I couldn't find %q in our menu.", requested))}
	}
	return []Effect{{Kind: EffectCartAdd, Item: item}}
}

func planListCategories(categories []string, hasOffers bool) []Effect {
	if len(categories) == 0 {
		return []Effect{notify(NotifyError, "I couldn't find any categories to tell you about.")}
	}
	message := "We have: " + strings.Join(categories, ", ") + "."
	if hasOffers {
		message += " We also have deals running right now."
	}
	return []Effect{notify(NotifyInfo, message)}
}

func searchPath(query string) string {
	return "/search?q=" + url.QueryEscape(query)
}

// pagePath normalizes a spoken page name: home and menu are the root
// view, anything else becomes a path segment.
func pagePath(page string) string {
	normalized := strings.ToLower(strings.TrimSpace(page))
	switch normalized {
	case "", "home", "menu":
		return "/"
	default:
		return "/" + url.PathEscape(normalized)
	}
}
