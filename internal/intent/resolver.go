package intent

import (
	"encoding/json"
	"strings"
)

// rawCommand mirrors the JSON shape the oracle is asked to produce.
// Unknown payload fields are ignored; absent ones default to neutral
// values when the command is constructed.
type rawCommand struct {
	Action  string     `json:"action"`
	Payload rawPayload `json:"payload"`
}

type rawPayload struct {
	Category   string   `json:"category"`
	Query      string   `json:"query"`
	Page       string   `json:"page"`
	Name       string   `json:"name"`
	Categories []string `json:"categories"`
	HasOffers  bool     `json:"has_offers"`
	Message    string   `json:"message"`
}

// Resolve turns the oracle's raw text into a guaranteed well-formed
// command. It never fails: any response that does not parse as a single
// object with a known action tag falls back to a SEARCH command carrying
// the original transcript verbatim, so the user always lands on a results
// page instead of an error screen. Fallback reports whether that path was
// taken.
func Resolve(raw, transcript string) (Command, bool) {
	var parsed rawCommand
	decoder := json.NewDecoder(strings.NewReader(raw))
	if err := decoder.Decode(&parsed); err != nil {
		return fallback(transcript), true
	}

	action := Action(strings.ToUpper(strings.TrimSpace(parsed.Action)))
	if !action.Known() {
		return fallback(transcript), true
	}

	return Command{Action: action, Payload: payloadFor(action, parsed.Payload)}, false
}

func fallback(transcript string) Command {
	return Command{
		Action:  ActionSearch,
		Payload: Payload{Query: transcript},
	}
}

// payloadFor keeps only the fields the action defines, so a confused
// oracle response cannot smuggle extra state past the resolver.
func payloadFor(action Action, raw rawPayload) Payload {
	switch action {
	case ActionGetCategory:
		return Payload{Category: strings.TrimSpace(raw.Category)}
	case ActionSearch:
		return Payload{Query: raw.Query}
	case ActionNavigate:
		return Payload{Page: strings.TrimSpace(raw.Page)}
	case ActionAddToCart:
		return Payload{Name: strings.TrimSpace(raw.Name)}
	case ActionListCategories:
		return Payload{Categories: raw.Categories, HasOffers: raw.HasOffers}
	case ActionGuideUser:
		return Payload{Message: strings.TrimSpace(raw.Message)}
	default:
		return Payload{}
	}
}
