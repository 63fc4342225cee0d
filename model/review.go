package model

type ProductReview struct {
	DTO
	UserID    uint     `gorm:"not null;index" json:"userId"`
	User      *User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	ProductID uint     `gorm:"not null;index" json:"productId"`
	Product   *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	Rating    int      `gorm:"not null;check:rating BETWEEN 1 AND 5" json:"rating"`
	Comment   string   `gorm:"type:text" json:"comment"`
}

type PackageReview struct {
	DTO
	UserID    uint     `gorm:"not null;index" json:"userId"`
	User      *User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	PackageID uint     `gorm:"not null;index" json:"packageId"`
	Package   *Package `gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE" json:"-"`
	Rating    int      `gorm:"not null;check:rating BETWEEN 1 AND 5" json:"rating"`
	Comment   string   `gorm:"type:text" json:"comment"`
}

type CreateReviewInput struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

type ReviewSummary struct {
	Count   int64   `json:"count"`
	Average float64 `json:"average"`
}
