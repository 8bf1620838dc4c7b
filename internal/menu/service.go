package menu

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/voicebite/voicebite-backend/pkg/db/models"
	pkgerrors "github.com/voicebite/voicebite-backend/pkg/errors"
)

// Canonical category labels accepted by the catalog. Comparison is always
// case-insensitive.
var knownCategories = []string{
	"pizza",
	"pasta",
	"traditionals",
	"desserts",
	"beverages",
	"deals",
}

// Service exposes the catalog query and admin mutation operations.
type Service interface {
	List(ctx context.Context) ([]models.MenuItem, error)
	ListByCategory(ctx context.Context, category string) ([]models.MenuItem, error)
	Search(ctx context.Context, query string) ([]models.MenuItem, error)
	Offers(ctx context.Context) ([]models.MenuItem, error)
	Create(ctx context.Context, input CreateItemInput) (*models.MenuItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreateItemInput holds the validated payload for a new menu item.
type CreateItemInput struct {
	Name            string
	Description     string
	Category        string
	Price           decimal.Decimal
	DiscountPercent float64
}

type itemRepository interface {
	List(ctx context.Context) ([]models.MenuItem, error)
	ListByCategory(ctx context.Context, category string) ([]models.MenuItem, error)
	Create(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo itemRepository
}

// NewService constructs the catalog service.
func NewService(repo itemRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("menu repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]models.MenuItem, error) {
	return s.repo.List(ctx)
}

func (s *service) ListByCategory(ctx context.Context, category string) ([]models.MenuItem, error) {
	if strings.TrimSpace(category) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category is required")
	}
	return s.repo.ListByCategory(ctx, category)
}

// Search applies the tokenized free-text matching policy over the full
// catalog listing.
func (s *service) Search(ctx context.Context, query string) ([]models.MenuItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(items, query), nil
}

// Offers returns entries carrying a positive discount.
func (s *service) Offers(ctx context.Context) ([]models.MenuItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var discounted []models.MenuItem
	for _, item := range items {
		if item.DiscountPercent > 0 {
			discounted = append(discounted, item)
		}
	}
	return discounted, nil
}

func (s *service) Create(ctx context.Context, input CreateItemInput) (*models.MenuItem, error) {
	name := strings.TrimSpace(input.Name)
	description := strings.TrimSpace(input.Description)
	category := strings.ToLower(strings.TrimSpace(input.Category))

	if name == "" || description == "" || category == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name, description, and category are required")
	}
	if !isKnownCategory(category) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown category").
			WithDetails(map[string]any{"category": category, "known": knownCategories})
	}
	if input.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must be non-negative")
	}
	if input.DiscountPercent < 0 || input.DiscountPercent > 100 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "discount percent must be between 0 and 100")
	}

	return s.repo.Create(ctx, &models.MenuItem{
		Name:            name,
		Description:     description,
		Category:        category,
		Price:           input.Price,
		DiscountPercent: input.DiscountPercent,
	})
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func isKnownCategory(category string) bool {
	for _, known := range knownCategories {
		if category == known {
			return true
		}
	}
	return false
}
