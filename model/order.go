package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

const (
	OrderTypeMixed   = "Mixed Order"
	OrderTypeProduct = "Product Order"
	OrderTypePackage = "Package Order"
	OrderTypeEmpty   = "Empty Order"
)

func (s OrderStatus) Valid() bool {
	return s == OrderPending || s == OrderCompleted || s == OrderCancelled
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

// CanTransitionTo allows pending -> completed and pending -> cancelled only.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return s == OrderPending && (next == OrderCompleted || next == OrderCancelled)
}

type Order struct {
	DTO
	Reference     string          `gorm:"uniqueIndex;size:20;not null" json:"reference"`
	UserID        uint            `gorm:"not null;index" json:"userId"`
	User          *User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	DurationID    *uint           `json:"durationId"`
	Duration      *Duration       `gorm:"foreignKey:DurationID;constraint:OnDelete:SET NULL" json:"duration,omitempty"`
	TableNumberID *uint           `json:"tableNumberId"`
	TableNumber   *TableNumber    `gorm:"foreignKey:TableNumberID;constraint:OnDelete:SET NULL" json:"tableNumber,omitempty"`
	Subtotal      decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"subtotal"`
	Total         decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"total"`
	Status        OrderStatus     `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Items         []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

// Tax is derived on read; a total below the subtotal yields a negative value.
func (o Order) Tax() decimal.Decimal {
	return o.Total.Sub(o.Subtotal)
}

func (o Order) OrderType() string {
	var hasProduct, hasPackage bool
	for _, item := range o.Items {
		switch item.ItemType {
		case ItemTypeProduct:
			hasProduct = true
		case ItemTypePackage:
			hasPackage = true
		}
	}

	switch {
	case hasProduct && hasPackage:
		return OrderTypeMixed
	case hasProduct:
		return OrderTypeProduct
	case hasPackage:
		return OrderTypePackage
	default:
		return OrderTypeEmpty
	}
}

// FirstItem returns the item with the lowest id.
func (o Order) FirstItem() (OrderItem, bool) {
	if len(o.Items) == 0 {
		return OrderItem{}, false
	}
	first := o.Items[0]
	for _, item := range o.Items[1:] {
		if item.ID < first.ID {
			first = item
		}
	}
	return first, true
}

func (o *Order) TransitionTo(next OrderStatus) error {
	if !o.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, next)
	}
	o.Status = next
	return nil
}

// SumItems recomputes Subtotal from the items and adds taxRate on top for Total.
// Item prices are rounded to the two places the price column stores.
func (o *Order) SumItems(taxRate decimal.Decimal) {
	subtotal := decimal.Zero
	for i := range o.Items {
		o.Items[i].ItemPrice = o.Items[i].ItemPrice.Round(2)
		subtotal = subtotal.Add(o.Items[i].TotalPrice())
	}
	o.Subtotal = subtotal.Round(2)
	o.Total = o.Subtotal.Add(o.Subtotal.Mul(taxRate).Round(2))
}

type CreateOrderInput struct {
	DurationID    *uint                  `json:"durationId" validate:"omitempty,gt=0"`
	TableNumberID *uint                  `json:"tableNumberId" validate:"omitempty,gt=0"`
	Items         []CreateOrderItemInput `json:"items" validate:"required,min=1,dive"`
}

type CreateOrderItemInput struct {
	ItemType  string           `json:"itemType" validate:"required,item_type"`
	ItemID    uint             `json:"itemId" validate:"required,gt=0"`
	Quantity  int              `json:"quantity" validate:"required,gt=0"`
	ItemName  *string          `json:"itemName" validate:"omitempty,min=1,max=255"`
	ItemPrice *decimal.Decimal `json:"itemPrice" validate:"omitempty,gte=0"`
	Features  Features         `json:"features"`
	Image     *string          `json:"image" validate:"omitempty,max=500"`
}

type CheckoutInput struct {
	DurationID    *uint `json:"durationId" validate:"omitempty,gt=0"`
	TableNumberID *uint `json:"tableNumberId" validate:"omitempty,gt=0"`
}

type OrderFilter struct {
	Pagination
	Search string `json:"search" query:"search"`
	Range  string `json:"range" query:"range"`
	Status string `json:"status" query:"status"`
}

// OrderEvent is published on the admin order feed.
type OrderEvent struct {
	Type      string          `json:"type"`
	OrderID   uint            `json:"orderId"`
	Reference string          `json:"reference"`
	Status    OrderStatus     `json:"status"`
	Total     decimal.Decimal `json:"total"`
	At        time.Time       `json:"at"`
}
