package model

import (
	"sort"

	"github.com/shopspring/decimal"

	"venue_manager/utils"
)

// Features is free-form key/value data stored as jsonb.
type Features map[string]any

type Category struct {
	DTO
	Name        string `gorm:"size:150;not null" json:"name"`
	Slug        string `gorm:"uniqueIndex;size:191;not null" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
}

type Product struct {
	DTO
	Name        string          `gorm:"size:255;not null" json:"name"`
	Slug        string          `gorm:"uniqueIndex;size:191;not null" json:"slug"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"price"`
	CategoryID  *uint           `json:"categoryId"`
	Category    *Category       `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"category,omitempty"`
	IsActive    bool            `gorm:"not null" json:"isActive"`
	Images      []ProductImage  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`
	ImageURL    *string         `gorm:"-" json:"imageUrl"`
}

type ProductImage struct {
	DTO
	ProductID uint    `gorm:"not null;index" json:"productId"`
	Image     string  `gorm:"size:500;not null" json:"image"`
	SortOrder int     `gorm:"not null;default:0" json:"sortOrder"`
	URL       *string `gorm:"-" json:"url"`
}

func (pi ProductImage) ImageURL(base string) *string {
	return utils.ResolvePublicURL(pi.Image, base)
}

// FirstImage is the lowest sort order, ties broken by id.
func (p Product) FirstImage() *ProductImage {
	if len(p.Images) == 0 {
		return nil
	}
	images := make([]ProductImage, len(p.Images))
	copy(images, p.Images)
	sort.SliceStable(images, func(i, j int) bool {
		if images[i].SortOrder != images[j].SortOrder {
			return images[i].SortOrder < images[j].SortOrder
		}
		return images[i].ID < images[j].ID
	})
	return &images[0]
}

func (p Product) FirstImageURL(base string) *string {
	first := p.FirstImage()
	if first == nil {
		return nil
	}
	return first.ImageURL(base)
}

func (p *Product) ResolveImages(base string) {
	for i := range p.Images {
		p.Images[i].URL = p.Images[i].ImageURL(base)
	}
	p.ImageURL = p.FirstImageURL(base)
}

type Package struct {
	DTO
	Name        string          `gorm:"size:255;not null" json:"name"`
	Slug        string          `gorm:"uniqueIndex;size:191;not null" json:"slug"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"price"`
	Features    Features        `gorm:"type:jsonb;serializer:json" json:"features"`
	Image       *string         `gorm:"size:500" json:"image"`
	IsActive    bool            `gorm:"not null" json:"isActive"`
	ImageURL    *string         `gorm:"-" json:"imageUrl"`
}

func (p Package) FirstImageURL(base string) *string {
	if p.Image == nil {
		return nil
	}
	return utils.ResolvePublicURL(*p.Image, base)
}

func (p *Package) ResolveImages(base string) {
	p.ImageURL = p.FirstImageURL(base)
}
