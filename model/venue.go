package model

import "github.com/shopspring/decimal"

// Duration is a bookable time slot, e.g. a two hour fishing session.
type Duration struct {
	DTO
	Label   string          `gorm:"size:100;not null" json:"label"`
	Minutes int             `gorm:"not null" json:"minutes"`
	Price   decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"price"`
}

type TableNumber struct {
	DTO
	Number   string `gorm:"uniqueIndex;size:20;not null" json:"number"`
	Seats    int    `gorm:"not null;default:4" json:"seats"`
	IsActive bool   `gorm:"not null" json:"isActive"`
}

type DurationInput struct {
	Label   string          `json:"label" validate:"required,max=100"`
	Minutes int             `json:"minutes" validate:"required,gt=0"`
	Price   decimal.Decimal `json:"price" validate:"gte=0"`
}

type TableNumberInput struct {
	Number   string `json:"number" validate:"required,max=20"`
	Seats    int    `json:"seats" validate:"required,gt=0"`
	IsActive *bool  `json:"isActive"`
}
