package helper

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"venue_manager/model"
)

// ItemResolver loads the live catalog entity for an item id.
type ItemResolver func(db *gorm.DB, id uint) (*model.CatalogItem, error)

var itemResolvers = map[model.ItemType]ItemResolver{}

func registerItemType(t model.ItemType, resolve ItemResolver) {
	itemResolvers[t] = resolve
}

func init() {
	registerItemType(model.ItemTypeProduct, func(db *gorm.DB, id uint) (*model.CatalogItem, error) {
		var product model.Product
		if err := db.Preload("Images", OrderedImages).First(&product, id).Error; err != nil {
			return nil, err
		}
		return &model.CatalogItem{Type: model.ItemTypeProduct, Product: &product}, nil
	})
	registerItemType(model.ItemTypePackage, func(db *gorm.DB, id uint) (*model.CatalogItem, error) {
		var pkg model.Package
		if err := db.First(&pkg, id).Error; err != nil {
			return nil, err
		}
		return &model.CatalogItem{Type: model.ItemTypePackage, Package: &pkg}, nil
	})
}

func OrderedImages(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC, id ASC")
}

func IsKnownItemType(t model.ItemType) bool {
	_, ok := itemResolvers[t]
	return ok
}

// ResolveCatalogItem returns gorm.ErrRecordNotFound when the entity is gone.
func ResolveCatalogItem(db *gorm.DB, t model.ItemType, id uint) (*model.CatalogItem, error) {
	resolve, ok := itemResolvers[t]
	if !ok {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownItemType, t)
	}
	return resolve(db, id)
}

// LiveCatalogItem is ResolveCatalogItem with a missing entity reported as nil.
func LiveCatalogItem(db *gorm.DB, t model.ItemType, id uint) (*model.CatalogItem, error) {
	item, err := ResolveCatalogItem(db, t, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return item, err
}
