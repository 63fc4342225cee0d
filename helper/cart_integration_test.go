package helper

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"venue_manager/model"
)

func TestAddToCart_Postgres(t *testing.T) {
	db := setupTestDB(t)
	f := seedCatalog(t, db)

	cartRows := func(t *testing.T, userID uint) []model.Cart {
		var carts []model.Cart
		require.NoError(t, db.Where("user_id = ?", userID).Find(&carts).Error)
		return carts
	}

	t.Run("same item twice bumps quantity", func(t *testing.T) {
		user := model.User{Name: "Lan Pham", Email: "lan@example.com"}
		require.NoError(t, db.Create(&user).Error)

		input := model.AddToCartInput{ProductID: &f.product.ID, Quantity: 2}
		_, err := AddToCart(db, user.ID, input)
		require.NoError(t, err)
		cart, err := AddToCart(db, user.ID, input)
		require.NoError(t, err)

		assert.Equal(t, 4, cart.Quantity)
		assert.Len(t, cartRows(t, user.ID), 1)
	})

	t.Run("duplicate rows are refused by the index", func(t *testing.T) {
		user := model.User{Name: "Huy Vo", Email: "huy@example.com"}
		require.NoError(t, db.Create(&user).Error)

		row := func() *model.Cart {
			return &model.Cart{UserID: user.ID, PackageID: &f.pkg.ID, ItemName: f.pkg.Name, Price: f.pkg.Price, Quantity: 1}
		}
		require.NoError(t, db.Create(row()).Error)
		assert.ErrorIs(t, db.Create(row()).Error, gorm.ErrDuplicatedKey)
	})

	t.Run("concurrent adds share one row", func(t *testing.T) {
		user := model.User{Name: "Thu Le", Email: "thu@example.com"}
		require.NoError(t, db.Create(&user).Error)

		const workers = 8
		var wg sync.WaitGroup
		errs := make(chan error, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := AddToCart(db, user.ID, model.AddToCartInput{PackageID: &f.pkg.ID, Quantity: 1})
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			assert.NoError(t, err)
		}
		carts := cartRows(t, user.ID)
		require.Len(t, carts, 1)
		assert.Equal(t, workers, carts[0].Quantity)
	})
}
