package menu

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/voicebite/voicebite-backend/pkg/db"
	"github.com/voicebite/voicebite-backend/pkg/db/models"
	"github.com/voicebite/voicebite-backend/pkg/logger"
)

type seedItem struct {
	name        string
	description string
	category    string
	price       string
	discount    float64
}

var seedMenu = []seedItem{
	{"Margherita Pizza", "Fresh basil, tomato sauce, and buffalo mozzarella.", "pizza", "14.99", 0},
	{"Pepperoni Blast", "Double pepperoni with extra mozzarella cheese.", "pizza", "16.99", 0},
	{"Veggie Supreme", "Bell peppers, onions, olives, and mushrooms.", "pizza", "15.99", 0},

	{"Fettuccine Alfredo", "Creamy white sauce with parmesan and garlic.", "pasta", "13.99", 0},
	{"Spaghetti Bolognese", "Rich meat sauce with herbs and fresh tomatoes.", "pasta", "12.99", 0},
	{"Pesto Penne", "Fresh basil pesto with pine nuts and olive oil.", "pasta", "13.49", 0},

	{"Chicken Fajita Pizza", "Spicy fajita chicken, onions, and jalapeños.", "traditionals", "18.99", 0},
	{"Behari Kabab Pizza", "Tender kabab chunks with special spicy sauce.", "traditionals", "19.99", 0},
	{"Chicken Tikka Pizza", "Traditional tikka chunks with onions and green chilies.", "traditionals", "17.99", 0},

	{"Chocolate Lava Cake", "Warm chocolate cake with a gooey center.", "desserts", "7.99", 0},
	{"New York Cheesecake", "Classic creamy cheesecake with strawberry topping.", "desserts", "8.49", 0},

	{"Classic Coke", "Refreshing 500ml chilled soda.", "beverages", "2.49", 0},
	{"Fresh Lime", "Chilled soda with fresh lime and mint.", "beverages", "3.99", 0},

	{"Couples Bundle", "1 Medium Pizza, 1 Pasta, and 2 Drinks.", "deals", "29.99", 15},
	{"Family Feast", "2 Large Pizzas, 1 Side, and 1.5L Drink.", "deals", "54.99", 20},
	{"Solo Deal", "1 Personal Pizza and 1 Drink.", "deals", "14.99", 10},
}

// Seed inserts the starter menu when the table is empty. Used in dev so a
// fresh database immediately has something to browse and order.
func Seed(ctx context.Context, client *db.Client, logg *logger.Logger) error {
	repo := NewRepository(client.DB())

	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	err = client.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := repo.WithTx(tx)
		for _, seed := range seedMenu {
			price, err := decimal.NewFromString(seed.price)
			if err != nil {
				return err
			}
			if _, err := txRepo.Create(ctx, &models.MenuItem{
				Name:            seed.name,
				Description:     seed.description,
				Category:        seed.category,
				Price:           price,
				DiscountPercent: seed.discount,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if logg != nil {
		logg.Info(logg.WithField(ctx, "items", len(seedMenu)), "seeded starter menu")
	}
	return nil
}
