package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/voicebite/voicebite-backend/internal/intent"
	"github.com/voicebite/voicebite-backend/internal/menu"
	"github.com/voicebite/voicebite-backend/pkg/db/models"
	pkgerrors "github.com/voicebite/voicebite-backend/pkg/errors"
	"github.com/voicebite/voicebite-backend/pkg/logger"
)

const orderPlacedMessage = "Order placed! Your basket has been cleared."

type commandResolver interface {
	Process(ctx context.Context, transcript string) (intent.Command, error)
}

type snapshotSource interface {
	Get(ctx context.Context) (menu.Snapshot, error)
}

// CartSummary is the ledger rendered for API responses; count and total
// are recomputed at read time.
type CartSummary struct {
	Lines []Line          `json:"lines"`
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// CommandResult is the outcome of one voice command: the resolved
// intent, the effects that were executed, and the session state they
// left behind.
type CommandResult struct {
	Command  intent.Command `json:"command"`
	Effects  []Effect       `json:"effects"`
	Messages []Message      `json:"messages"`
	Path     string         `json:"path"`
	Cart     CartSummary    `json:"cart"`
}

// Message is a user-visible notification surfaced while executing a
// command.
type Message struct {
	Level NotifyLevel `json:"level"`
	Text  string      `json:"text"`
}

// Engine executes resolved commands against per-session state. It is the
// single write path to every cart ledger: voice commands and direct cart
// endpoints both go through it.
type Engine struct {
	sessions  *Registry
	resolver  commandResolver
	snapshots snapshotSource
	settler   Settler
	logg      *logger.Logger
}

func NewEngine(sessions *Registry, resolver commandResolver, snapshots snapshotSource, settler Settler, logg *logger.Logger) (*Engine, error) {
	if sessions == nil {
		return nil, fmt.Errorf("session registry required")
	}
	if resolver == nil {
		return nil, fmt.Errorf("command resolver required")
	}
	if snapshots == nil {
		return nil, fmt.Errorf("snapshot source required")
	}
	if settler == nil {
		return nil, fmt.Errorf("settler required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Engine{
		sessions:  sessions,
		resolver:  resolver,
		snapshots: snapshots,
		settler:   settler,
		logg:      logg,
	}, nil
}

// HandleCommand runs the full pipeline for one transcript and executes
// the planned effects. An in-flight command for the same session is
// exclusive: a second concurrent call is rejected as busy, never queued.
func (e *Engine) HandleCommand(ctx context.Context, sessionID, transcript string) (CommandResult, error) {
	sess := e.sessions.Get(sessionID)
	if !sess.tryAcquire() {
		return CommandResult{}, pkgerrors.New(pkgerrors.CodeBusy, "voice command already in flight")
	}
	defer sess.release()

	cmd, err := e.resolver.Process(ctx, transcript)
	if err != nil {
		return CommandResult{}, err
	}

	snap, err := e.snapshots.Get(ctx)
	if err != nil {
		return CommandResult{}, err
	}

	effects := Plan(cmd, snap)
	messages, err := e.execute(ctx, sess, effects)
	if err != nil {
		return CommandResult{}, err
	}

	return CommandResult{
		Command:  cmd,
		Effects:  effects,
		Messages: messages,
		Path:     sess.path,
		Cart:     summarize(&sess.ledger),
	}, nil
}

// execute applies planned effects to the session in order. The caller
// holds the session lock.
func (e *Engine) execute(ctx context.Context, sess *Session, effects []Effect) ([]Message, error) {
	var messages []Message
	for _, effect := range effects {
		switch effect.Kind {
		case EffectNavigate:
			sess.path = effect.Path
		case EffectNotify:
			messages = append(messages, Message{Level: effect.Level, Text: effect.Message})
		case EffectCartAdd:
			outcome := sess.ledger.Add(effect.Item)
			messages = append(messages, Message{
				Level: NotifySuccess,
				Text:  fmt.Sprintf("%s: %s", outcome, effect.Item.Name),
			})
		case EffectSettlePayment:
			if err := e.settler.Settle(ctx); err != nil {
				return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "settlement interrupted")
			}
			sess.ledger.Clear()
			messages = append(messages, Message{Level: NotifySuccess, Text: orderPlacedMessage})
			sess.path = "/"
		}
	}
	return messages, nil
}

// Cart returns the session's current cart.
func (e *Engine) Cart(sessionID string) CartSummary {
	sess := e.sessions.Get(sessionID)
	sess.acquire()
	defer sess.release()
	return summarize(&sess.ledger)
}

// AddItem puts a catalog item in the cart, resolved either by exact id
// or by fuzzy name match against the current snapshot.
func (e *Engine) AddItem(ctx context.Context, sessionID string, itemID uuid.UUID, name string) (CartSummary, Message, error) {
	item, err := e.lookupItem(ctx, itemID, name)
	if err != nil {
		return CartSummary{}, Message{}, err
	}

	sess := e.sessions.Get(sessionID)
	sess.acquire()
	defer sess.release()

	outcome := sess.ledger.Add(item)
	msg := Message{Level: NotifySuccess, Text: fmt.Sprintf("%s: %s", outcome, item.Name)}
	return summarize(&sess.ledger), msg, nil
}

// RemoveItem deletes a cart line. Removing an item that is not in the
// cart is not an error.
func (e *Engine) RemoveItem(sessionID string, itemID uuid.UUID) (CartSummary, Message) {
	sess := e.sessions.Get(sessionID)
	sess.acquire()
	defer sess.release()

	line, removed := sess.ledger.Remove(itemID)
	msg := Message{Level: NotifyInfo, Text: "item was not in the cart"}
	if removed {
		msg = Message{Level: NotifySuccess, Text: fmt.Sprintf("item removed: %s", line.Name)}
	}
	return summarize(&sess.ledger), msg
}

// ClearCart empties the session's cart.
func (e *Engine) ClearCart(sessionID string) CartSummary {
	sess := e.sessions.Get(sessionID)
	sess.acquire()
	defer sess.release()

	sess.ledger.Clear()
	return summarize(&sess.ledger)
}

// Checkout runs the settlement simulation and clears the cart, the same
// path a voice PROCESS_PAYMENT takes.
func (e *Engine) Checkout(ctx context.Context, sessionID string) (CartSummary, Message, error) {
	sess := e.sessions.Get(sessionID)
	sess.acquire()
	defer sess.release()

	if err := e.settler.Settle(ctx); err != nil {
		return CartSummary{}, Message{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "settlement interrupted")
	}
	sess.ledger.Clear()
	sess.path = "/"
	return summarize(&sess.ledger), Message{Level: NotifySuccess, Text: orderPlacedMessage}, nil
}

// SweepSessions drops idle sessions and logs when any were removed.
func (e *Engine) SweepSessions(ctx context.Context) {
	if removed := e.sessions.Sweep(); removed > 0 {
		e.logg.Info(e.logg.WithField(ctx, "removed", removed), "swept idle assistant sessions")
	}
}

// lookupItem resolves a cart-add target: exact id wins when given,
// otherwise the name goes through the fuzzy matcher against the current
// snapshot.
func (e *Engine) lookupItem(ctx context.Context, itemID uuid.UUID, name string) (models.MenuItem, error) {
	snap, err := e.snapshots.Get(ctx)
	if err != nil {
		return models.MenuItem{}, err
	}
	if itemID != uuid.Nil {
		for _, item := range snap.Items {
			if item.ID == itemID {
				return item, nil
			}
		}
		return models.MenuItem{}, pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found")
	}
	if strings.TrimSpace(name) == "" {
		return models.MenuItem{}, pkgerrors.New(pkgerrors.CodeValidation, "item_id or name is required")
	}
	item, ok := Match(name, snap.Items)
	if !ok {
		return models.MenuItem{}, pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found").
			WithDetails(map[string]any{"name": name})
	}
	return item, nil
}

func summarize(l *Ledger) CartSummary {
	return CartSummary{
		Lines: l.Lines(),
		Count: l.Count(),
		Total: l.Total(),
	}
}
