package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItem represents a catalog entry owned by the menu store. The intent
// pipeline only ever sees read-only, time-bounded copies of these rows.
type MenuItem struct {
	ID              uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name            string          `gorm:"column:name;not null"`
	Description     string          `gorm:"column:description;not null"`
	Category        string          `gorm:"column:category;not null;index"`
	Price           decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	DiscountPercent float64         `gorm:"column:discount_percent;type:numeric(5,2);not null;default:0"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName pins the table name independent of GORM pluralization rules.
func (MenuItem) TableName() string {
	return "menu_items"
}
