package model

import "github.com/shopspring/decimal"

// Cart holds one row per user and catalog entity.
type Cart struct {
	DTO
	UserID    uint            `gorm:"not null;index;uniqueIndex:idx_cart_user_product,priority:1;uniqueIndex:idx_cart_user_package,priority:1" json:"userId"`
	User      *User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	ProductID *uint           `gorm:"uniqueIndex:idx_cart_user_product,priority:2" json:"productId"`
	Product   *Product        `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	PackageID *uint           `gorm:"uniqueIndex:idx_cart_user_package,priority:2" json:"packageId"`
	Package   *Package        `gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE" json:"-"`
	ItemName  string          `gorm:"size:255;not null" json:"itemName"`
	ItemSlug  string          `gorm:"size:191" json:"itemSlug"`
	Image     *string         `gorm:"size:500" json:"image"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Quantity  int             `gorm:"not null;default:1" json:"quantity"`
	Features  Features        `gorm:"type:jsonb;serializer:json" json:"features,omitempty"`
}

// ItemRef reports which catalog entity the row points at.
func (c Cart) ItemRef() (ItemType, uint, error) {
	switch {
	case c.ProductID != nil && c.PackageID == nil:
		return ItemTypeProduct, *c.ProductID, nil
	case c.PackageID != nil && c.ProductID == nil:
		return ItemTypePackage, *c.PackageID, nil
	default:
		return "", 0, ErrAmbiguousCartItem
	}
}

func (c Cart) TotalPrice() decimal.Decimal {
	return c.Price.Mul(decimal.NewFromInt(int64(c.Quantity)))
}

type AddToCartInput struct {
	ProductID *uint    `json:"productId" validate:"omitempty,gt=0"`
	PackageID *uint    `json:"packageId" validate:"omitempty,gt=0"`
	Quantity  int      `json:"quantity" validate:"required,gt=0,lte=100"`
	Features  Features `json:"features"`
}

type UpdateCartInput struct {
	Quantity int `json:"quantity" validate:"required,gt=0,lte=100"`
}
