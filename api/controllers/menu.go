package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/voicebite/voicebite-backend/api/responses"
	"github.com/voicebite/voicebite-backend/api/validators"
	menusvc "github.com/voicebite/voicebite-backend/internal/menu"
	pkgerrors "github.com/voicebite/voicebite-backend/pkg/errors"
	"github.com/voicebite/voicebite-backend/pkg/logger"
)

// MenuList returns the full catalog.
func MenuList(svc menusvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, menusvc.ToItemDTOs(items))
	}
}

// MenuByCategory returns items in a category, matched case-insensitively.
func MenuByCategory(svc menusvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := chi.URLParam(r, "category")
		items, err := svc.ListByCategory(r.Context(), category)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, menusvc.ToItemDTOs(items))
	}
}

// MenuSearch applies the free-text matching policy to the catalog.
func MenuSearch(svc menusvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := validators.RequireQueryString(r, "q")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		items, err := svc.Search(r.Context(), query)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, menusvc.ToItemDTOs(items))
	}
}

// MenuOffers returns only discounted items.
func MenuOffers(svc menusvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Offers(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, menusvc.ToItemDTOs(items))
	}
}

type createMenuItemRequest struct {
	Name            string          `json:"name" validate:"required"`
	Description     string          `json:"description" validate:"required"`
	Category        string          `json:"category" validate:"required"`
	Price           decimal.Decimal `json:"price"`
	DiscountPercent float64         `json:"discount_percent" validate:"gte=0,lte=100"`
}

// MenuCreate adds an item to the catalog and invalidates the snapshot so
// the next voice command sees it.
func MenuCreate(svc menusvc.Service, cache *menusvc.SnapshotCache, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createMenuItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.Create(r.Context(), menusvc.CreateItemInput{
			Name:            payload.Name,
			Description:     payload.Description,
			Category:        payload.Category,
			Price:           payload.Price,
			DiscountPercent: payload.DiscountPercent,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if cache != nil {
			cache.Invalidate()
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, menusvc.ToItemDTO(*item))
	}
}

// MenuDelete removes an item from the catalog.
func MenuDelete(svc menusvc.Service, cache *menusvc.SnapshotCache, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid item id"))
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if cache != nil {
			cache.Invalidate()
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
