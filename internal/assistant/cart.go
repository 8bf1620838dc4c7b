package assistant

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/voicebite/voicebite-backend/pkg/db/models"
)

// Line is one cart entry: a weak reference to a menu item plus the
// quantity and the unit price captured when the item was first added.
type Line struct {
	ItemID    uuid.UUID       `json:"item_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// AddOutcome says whether an Add created a new line or bumped an
// existing one.
type AddOutcome string

const (
	OutcomeItemAdded         AddOutcome = "item added"
	OutcomeQuantityIncreased AddOutcome = "quantity increased"
)

// Ledger is the insertion-ordered record of cart lines for one session.
// At most one line exists per item id and quantities never drop below 1;
// a line leaving the cart is removed outright. The ledger itself is not
// safe for concurrent use; the owning session serializes access.
type Ledger struct {
	lines []Line
}

// Add puts the item in the cart. A repeated add for the same item id
// increments the existing line's quantity and keeps its position.
func (l *Ledger) Add(item models.MenuItem) AddOutcome {
	for i := range l.lines {
		if l.lines[i].ItemID == item.ID {
			l.lines[i].Quantity++
			return OutcomeQuantityIncreased
		}
	}
	l.lines = append(l.lines, Line{
		ItemID:    item.ID,
		Name:      item.Name,
		UnitPrice: item.Price,
		Quantity:  1,
	})
	return OutcomeItemAdded
}

// Remove deletes the line for the given item id. Removing an absent id
// is a no-op; the second return reports whether a line was removed.
func (l *Ledger) Remove(id uuid.UUID) (Line, bool) {
	for i, line := range l.lines {
		if line.ItemID == id {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
			return line, true
		}
	}
	return Line{}, false
}

// Clear drops every line unconditionally.
func (l *Ledger) Clear() {
	l.lines = nil
}

// Lines returns a copy of the cart in insertion order.
func (l *Ledger) Lines() []Line {
	out := make([]Line, len(l.lines))
	copy(out, l.lines)
	return out
}

// Count is the sum of quantities, recomputed on every call.
func (l *Ledger) Count() int {
	total := 0
	for _, line := range l.lines {
		total += line.Quantity
	}
	return total
}

// Total is the sum of quantity times unit price, recomputed on every
// call.
func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range l.lines {
		total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}
