package intent

// Action is the closed vocabulary of things a voice command can ask for.
// The prompt rule table and the resolver must stay in sync with this set.
type Action string

const (
	ActionGetCategory    Action = "GET_CATEGORY"
	ActionGetOffers      Action = "GET_OFFERS"
	ActionSearch         Action = "SEARCH"
	ActionNavigate       Action = "NAVIGATE"
	ActionAddToCart      Action = "ADD_TO_CART"
	ActionProcessPayment Action = "PROCESS_PAYMENT"
	ActionListCategories Action = "LIST_CATEGORIES"
	ActionGuideUser      Action = "GUIDE_USER"
)

var knownActions = map[Action]struct{}{
	ActionGetCategory:    {},
	ActionGetOffers:      {},
	ActionSearch:         {},
	ActionNavigate:       {},
	ActionAddToCart:      {},
	ActionProcessPayment: {},
	ActionListCategories: {},
	ActionGuideUser:      {},
}

// Known reports whether the action tag belongs to the vocabulary.
func (a Action) Known() bool {
	_, ok := knownActions[a]
	return ok
}

// Payload carries the action-specific fields of a resolved command. Only
// the fields relevant to the command's action are populated; the rest stay
// at their zero values.
type Payload struct {
	Category   string   `json:"category,omitempty"`
	Query      string   `json:"query,omitempty"`
	Page       string   `json:"page,omitempty"`
	Name       string   `json:"name,omitempty"`
	Categories []string `json:"categories,omitempty"`
	HasOffers  bool     `json:"has_offers,omitempty"`
	Message    string   `json:"message,omitempty"`
}

// Command is a well-formed, resolved intent. Values of this type are only
// constructed by the resolver, which guarantees the action tag is known and
// the payload matches it.
type Command struct {
	Action  Action  `json:"action"`
	Payload Payload `json:"payload"`
}
