package menu

import (
	"github.com/shopspring/decimal"

	"github.com/voicebite/voicebite-backend/pkg/db/models"
)

// ItemDTO is the wire representation of a menu item.
type ItemDTO struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	Price           decimal.Decimal `json:"price"`
	DiscountPercent float64         `json:"discount_percent,omitempty"`
}

// ToItemDTO converts a single item into its wire representation.
func ToItemDTO(item models.MenuItem) ItemDTO {
	return ItemDTO{
		ID:              item.ID.String(),
		Name:            item.Name,
		Description:     item.Description,
		Category:        item.Category,
		Price:           item.Price,
		DiscountPercent: item.DiscountPercent,
	}
}

// ToItemDTOs converts a listing into its wire representation.
func ToItemDTOs(items []models.MenuItem) []ItemDTO {
	out := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, ToItemDTO(item))
	}
	return out
}
