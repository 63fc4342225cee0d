package model

type User struct {
	DTO
	Name  string `gorm:"size:150;not null" json:"name"`
	Email string `gorm:"uniqueIndex;size:191;not null" json:"email"`
	Phone string `gorm:"size:30" json:"phone"`
	Role  string `gorm:"size:20;not null;default:'customer'" json:"role"`
}
