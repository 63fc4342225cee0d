package model

import (
	"github.com/shopspring/decimal"

	"venue_manager/utils"
)

// OrderItem is written once at checkout and never updated.
type OrderItem struct {
	DTO
	OrderID   uint            `gorm:"not null;index" json:"orderId"`
	ItemType  ItemType        `gorm:"type:varchar(20);not null" json:"itemType"`
	ItemID    uint            `gorm:"not null" json:"itemId"`
	ItemName  string          `gorm:"size:255;not null" json:"itemName"`
	ItemPrice decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"itemPrice"`
	Quantity  int             `gorm:"not null;check:quantity > 0" json:"quantity"`
	Features  Features        `gorm:"type:jsonb;serializer:json" json:"features,omitempty"`
	Image     *string         `gorm:"size:500" json:"image,omitempty"`
}

func (i OrderItem) TotalPrice() decimal.Decimal {
	return i.ItemPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// DisplayImageURL prefers the live entity's current image, then the snapshot
// path, then the placeholder. live may be nil when the entity was deleted.
func (i OrderItem) DisplayImageURL(live *CatalogItem, opts ImageOptions) string {
	if url := live.ImageURL(opts.BaseURL); url != nil {
		return *url
	}
	if i.Image != nil {
		if url := utils.ResolvePublicURL(*i.Image, opts.BaseURL); url != nil {
			return *url
		}
	}
	return opts.Placeholder
}
