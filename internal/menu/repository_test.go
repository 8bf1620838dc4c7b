package menu

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/voicebite/voicebite-backend/pkg/db/models"
	pkgerrors "github.com/voicebite/voicebite-backend/pkg/errors"
)

func setupMenuTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS menu_items (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT NOT NULL,
  category TEXT NOT NULL,
  price NUMERIC NOT NULL,
  discount_percent NUMERIC NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, gdb.Exec(schema).Error)

	return gdb
}

func newTestItem(name, category, price string) *models.MenuItem {
	return &models.MenuItem{
		Name:        name,
		Description: name + " description",
		Category:    category,
		Price:       decimal.RequireFromString(price),
	}
}

func TestRepositoryCreateAndList(t *testing.T) {
	repo := NewRepository(setupMenuTestDB(t))
	ctx := context.Background()

	first, err := repo.Create(ctx, newTestItem("Margherita Pizza", "pizza", "14.99"))
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, first.ID)

	_, err = repo.Create(ctx, newTestItem("Fettuccine Alfredo", "pasta", "13.99"))
	require.NoError(t, err)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Margherita Pizza", items[0].Name)
	assert.True(t, items[0].Price.Equal(decimal.RequireFromString("14.99")))
}

func TestRepositoryListByCategoryIsCaseInsensitive(t *testing.T) {
	repo := NewRepository(setupMenuTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, newTestItem("Margherita Pizza", "pizza", "14.99"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newTestItem("Pesto Penne", "pasta", "13.49"))
	require.NoError(t, err)

	items, err := repo.ListByCategory(ctx, "PIZZA")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Margherita Pizza", items[0].Name)

	items, err = repo.ListByCategory(ctx, "  pasta ")
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestRepositoryDelete(t *testing.T) {
	repo := NewRepository(setupMenuTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, newTestItem("Classic Coke", "beverages", "2.49"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	err = repo.Delete(ctx, created.ID)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestRepositoryFindByIDNotFound(t *testing.T) {
	repo := NewRepository(setupMenuTestDB(t))

	_, err := repo.FindByID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}
