package model

type Comment struct {
	DTO
	UserID  uint    `gorm:"not null;index" json:"userId"`
	User    *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Body    string  `gorm:"type:text;not null" json:"body"`
	Replies []Reply `gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE" json:"replies"`
}

type Reply struct {
	DTO
	CommentID uint   `gorm:"not null;index" json:"commentId"`
	UserID    uint   `gorm:"not null;index" json:"userId"`
	User      *User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Body      string `gorm:"type:text;not null" json:"body"`
}

type CreateCommentInput struct {
	Body string `json:"body" validate:"required,min=1,max=5000"`
}
