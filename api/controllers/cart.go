package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/voicebite/voicebite-backend/api/middleware"
	"github.com/voicebite/voicebite-backend/api/responses"
	"github.com/voicebite/voicebite-backend/api/validators"
	"github.com/voicebite/voicebite-backend/internal/assistant"
	pkgerrors "github.com/voicebite/voicebite-backend/pkg/errors"
	"github.com/voicebite/voicebite-backend/pkg/logger"
)

func sessionIDOrError(w http.ResponseWriter, r *http.Request, logg *logger.Logger) (string, bool) {
	sessionID := middleware.SessionIDFromContext(r.Context())
	if sessionID == "" {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "session id missing"))
		return "", false
	}
	return sessionID, true
}

// CartGet returns the session's cart.
func CartGet(engine *assistant.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := sessionIDOrError(w, r, logg)
		if !ok {
			return
		}
		responses.WriteSuccess(w, engine.Cart(sessionID))
	}
}

type addCartItemRequest struct {
	ItemID string `json:"item_id"`
	Name   string `json:"name"`
}

// CartAddItem puts an item in the cart by exact id or fuzzy name.
func CartAddItem(engine *assistant.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := sessionIDOrError(w, r, logg)
		if !ok {
			return
		}

		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		itemID := uuid.Nil
		if payload.ItemID != "" {
			parsed, err := uuid.Parse(payload.ItemID)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid item id"))
				return
			}
			itemID = parsed
		}

		summary, msg, err := engine.AddItem(r.Context(), sessionID, itemID, payload.Name)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"cart": summary, "message": msg})
	}
}

// CartRemoveItem deletes a line; removing an absent item is not an
// error.
func CartRemoveItem(engine *assistant.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := sessionIDOrError(w, r, logg)
		if !ok {
			return
		}

		itemID, err := uuid.Parse(chi.URLParam(r, "itemId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid item id"))
			return
		}

		summary, msg := engine.RemoveItem(sessionID, itemID)
		responses.WriteSuccess(w, map[string]any{"cart": summary, "message": msg})
	}
}

// CartClear empties the session's cart.
func CartClear(engine *assistant.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := sessionIDOrError(w, r, logg)
		if !ok {
			return
		}
		responses.WriteSuccess(w, map[string]any{"cart": engine.ClearCart(sessionID)})
	}
}

// CartCheckout settles the order and clears the cart.
func CartCheckout(engine *assistant.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := sessionIDOrError(w, r, logg)
		if !ok {
			return
		}

		summary, msg, err := engine.Checkout(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"cart": summary, "message": msg})
	}
}
