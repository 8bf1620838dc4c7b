package menu

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/voicebite/voicebite-backend/pkg/db/models"
	pkgerrors "github.com/voicebite/voicebite-backend/pkg/errors"
)

type stubItemRepo struct {
	items   []models.MenuItem
	created []*models.MenuItem
}

func (s *stubItemRepo) List(ctx context.Context) ([]models.MenuItem, error) {
	return s.items, nil
}

func (s *stubItemRepo) ListByCategory(ctx context.Context, category string) ([]models.MenuItem, error) {
	return s.items, nil
}

func (s *stubItemRepo) Create(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	item.ID = uuid.New()
	s.created = append(s.created, item)
	return item, nil
}

func (s *stubItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func newStubService(t *testing.T, repo *stubItemRepo) Service {
	t.Helper()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestServiceCreateValidation(t *testing.T) {
	svc := newStubService(t, &stubItemRepo{})
	ctx := context.Background()

	tests := []struct {
		name  string
		input CreateItemInput
	}{
		{name: "missing name", input: CreateItemInput{Description: "d", Category: "pizza"}},
		{name: "missing description", input: CreateItemInput{Name: "n", Category: "pizza"}},
		{name: "missing category", input: CreateItemInput{Name: "n", Description: "d"}},
		{name: "unknown category", input: CreateItemInput{Name: "n", Description: "d", Category: "sushi"}},
		{name: "negative price", input: CreateItemInput{Name: "n", Description: "d", Category: "pizza", Price: decimal.RequireFromString("-1")}},
		{name: "discount above 100", input: CreateItemInput{Name: "n", Description: "d", Category: "pizza", DiscountPercent: 120}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.input)
			if !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestServiceCreateNormalizesCategory(t *testing.T) {
	repo := &stubItemRepo{}
	svc := newStubService(t, repo)

	item, err := svc.Create(context.Background(), CreateItemInput{
		Name:        " Hawaiian Delight ",
		Description: "Pineapple and ham.",
		Category:    " PIZZA ",
		Price:       decimal.RequireFromString("15.49"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Category != "pizza" {
		t.Fatalf("expected normalized category, got %q", item.Category)
	}
	if item.Name != "Hawaiian Delight" {
		t.Fatalf("expected trimmed name, got %q", item.Name)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one create call")
	}
}

func TestServiceOffersFiltersDiscountedEntries(t *testing.T) {
	repo := &stubItemRepo{items: []models.MenuItem{
		{Name: "Margherita Pizza", DiscountPercent: 0},
		{Name: "Couples Bundle", DiscountPercent: 15},
		{Name: "Family Feast", DiscountPercent: 20},
	}}
	svc := newStubService(t, repo)

	offers, err := svc.Offers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(offers) != 2 {
		t.Fatalf("expected 2 offers, got %d", len(offers))
	}
	if offers[0].Name != "Couples Bundle" {
		t.Fatalf("unexpected first offer %q", offers[0].Name)
	}
}

func TestServiceListByCategoryRequiresCategory(t *testing.T) {
	svc := newStubService(t, &stubItemRepo{})
	if _, err := svc.ListByCategory(context.Background(), "  "); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
