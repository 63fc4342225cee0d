package helper

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"venue_manager/model"
)

// AddToCart snapshots the live catalog entity into the caller's cart. Adding
// an entity already in the cart bumps its quantity and refreshes the snapshot.
func AddToCart(db *gorm.DB, userID uint, input model.AddToCartInput) (*model.Cart, error) {
	itemType, itemID := model.ItemTypeProduct, uint(0)
	switch {
	case input.ProductID != nil && input.PackageID == nil:
		itemID = *input.ProductID
	case input.PackageID != nil && input.ProductID == nil:
		itemType, itemID = model.ItemTypePackage, *input.PackageID
	default:
		return nil, model.ErrAmbiguousCartItem
	}

	cart, err := addToCart(db, userID, itemType, itemID, input)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// a concurrent add inserted the row first; the retry updates it
		cart, err = addToCart(db, userID, itemType, itemID, input)
	}
	if err != nil {
		return nil, err
	}
	return cart, nil
}

func addToCart(db *gorm.DB, userID uint, itemType model.ItemType, itemID uint, input model.AddToCartInput) (*model.Cart, error) {
	var cart model.Cart
	err := db.Transaction(func(tx *gorm.DB) error {
		live, err := ResolveCatalogItem(tx, itemType, itemID)
		if err != nil {
			return err
		}

		column := "product_id"
		if itemType == model.ItemTypePackage {
			column = "package_id"
		}
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND "+column+" = ?", userID, itemID).
			First(&cart).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			cart = model.Cart{UserID: userID, ProductID: input.ProductID, PackageID: input.PackageID}
		case err != nil:
			return err
		}

		cart.ItemName = live.Name()
		cart.ItemSlug = live.Slug()
		cart.Image = live.ImagePath()
		cart.Price = live.Price()
		cart.Quantity += input.Quantity
		cart.Features = mergeFeatures(live.Features(), input.Features)
		return tx.Save(&cart).Error
	})
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func UpdateCartQuantity(db *gorm.DB, userID, cartID uint, quantity int) (*model.Cart, error) {
	var cart model.Cart
	if err := db.Where("id = ? AND user_id = ?", cartID, userID).First(&cart).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&cart).Update("quantity", quantity).Error; err != nil {
		return nil, fmt.Errorf("update cart %d: %w", cartID, err)
	}
	return &cart, nil
}

func RemoveCartItem(db *gorm.DB, userID, cartID uint) error {
	result := db.Where("id = ? AND user_id = ?", cartID, userID).Delete(&model.Cart{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// mergeFeatures lays the caller's choices over the catalog's features.
func mergeFeatures(base, extra model.Features) model.Features {
	if len(base) == 0 && len(extra) == 0 {
		return nil
	}
	merged := make(model.Features, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}

// CheckOrderReferences reports gorm.ErrRecordNotFound when a referenced
// duration or table does not exist.
func CheckOrderReferences(db *gorm.DB, durationID, tableID *uint) error {
	if durationID != nil {
		if err := db.Select("id").First(&model.Duration{}, *durationID).Error; err != nil {
			return fmt.Errorf("duration %d: %w", *durationID, err)
		}
	}
	if tableID != nil {
		if err := db.Select("id").First(&model.TableNumber{}, *tableID).Error; err != nil {
			return fmt.Errorf("table %d: %w", *tableID, err)
		}
	}
	return nil
}
