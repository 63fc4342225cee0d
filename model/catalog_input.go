package model

import "github.com/shopspring/decimal"

type CreateCategoryInput struct {
	Name        string `json:"name" validate:"required,min=2,max=150"`
	Description string `json:"description"`
}

type CreateProductInput struct {
	Name        string          `json:"name" validate:"required,min=2,max=255"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"gte=0"`
	CategoryID  *uint           `json:"categoryId" validate:"omitempty,gt=0"`
	IsActive    *bool           `json:"isActive"`
	Images      []string        `json:"images" validate:"omitempty,dive,required,max=500"`
}

type UpdateProductInput struct {
	Name        *string          `json:"name" validate:"omitempty,min=2,max=255"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price" validate:"omitempty,gte=0"`
	CategoryID  *uint            `json:"categoryId" validate:"omitempty,gt=0"`
	IsActive    *bool            `json:"isActive"`
}

type ProductImageInput struct {
	Image     string `json:"image" validate:"required,max=500"`
	SortOrder int    `json:"sortOrder"`
}

type CreatePackageInput struct {
	Name        string          `json:"name" validate:"required,min=2,max=255"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"gte=0"`
	Features    Features        `json:"features"`
	Image       *string         `json:"image" validate:"omitempty,max=500"`
	IsActive    *bool           `json:"isActive"`
}

type UpdatePackageInput struct {
	Name        *string          `json:"name" validate:"omitempty,min=2,max=255"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price" validate:"omitempty,gte=0"`
	Features    Features         `json:"features"`
	Image       *string          `json:"image" validate:"omitempty,max=500"`
	IsActive    *bool            `json:"isActive"`
}

type CatalogFilter struct {
	Pagination
	Search     string `json:"search" query:"search"`
	CategoryID *uint  `json:"categoryId" query:"categoryId"`
	Active     *bool  `json:"active" query:"active"`
}
