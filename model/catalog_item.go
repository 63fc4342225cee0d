package model

import "github.com/shopspring/decimal"

type ItemType string

const (
	ItemTypeProduct ItemType = "product"
	ItemTypePackage ItemType = "package"
)

func (t ItemType) Valid() bool {
	return t == ItemTypeProduct || t == ItemTypePackage
}

// CatalogItem is the live entity behind a cart or order line: exactly one of
// Product or Package is set, matching Type.
type CatalogItem struct {
	Type    ItemType
	Product *Product
	Package *Package
}

func (ci *CatalogItem) Name() string {
	switch {
	case ci == nil:
		return ""
	case ci.Product != nil:
		return ci.Product.Name
	case ci.Package != nil:
		return ci.Package.Name
	}
	return ""
}

func (ci *CatalogItem) Slug() string {
	switch {
	case ci == nil:
		return ""
	case ci.Product != nil:
		return ci.Product.Slug
	case ci.Package != nil:
		return ci.Package.Slug
	}
	return ""
}

func (ci *CatalogItem) Price() decimal.Decimal {
	switch {
	case ci == nil:
		return decimal.Zero
	case ci.Product != nil:
		return ci.Product.Price
	case ci.Package != nil:
		return ci.Package.Price
	}
	return decimal.Zero
}

func (ci *CatalogItem) Features() Features {
	if ci == nil || ci.Package == nil {
		return nil
	}
	return ci.Package.Features
}

// ImagePath is the stored path of the entity's first image, used for snapshots.
func (ci *CatalogItem) ImagePath() *string {
	switch {
	case ci == nil:
		return nil
	case ci.Product != nil:
		if first := ci.Product.FirstImage(); first != nil && first.Image != "" {
			path := first.Image
			return &path
		}
	case ci.Package != nil:
		if ci.Package.Image != nil && *ci.Package.Image != "" {
			path := *ci.Package.Image
			return &path
		}
	}
	return nil
}

func (ci *CatalogItem) ImageURL(base string) *string {
	switch {
	case ci == nil:
		return nil
	case ci.Type == ItemTypeProduct && ci.Product != nil:
		return ci.Product.FirstImageURL(base)
	case ci.Type == ItemTypePackage && ci.Package != nil:
		return ci.Package.FirstImageURL(base)
	}
	return nil
}
