package model

import "venue_manager/utils"

// FishingCms and AboutPageContent are single-row tables.
type FishingCms struct {
	DTO
	Title    string  `gorm:"size:255" json:"title"`
	Subtitle string  `gorm:"size:255" json:"subtitle"`
	Content  string  `gorm:"type:text" json:"content"`
	Rules    string  `gorm:"type:text" json:"rules"`
	Image    *string `gorm:"size:500" json:"image"`
	ImageURL *string `gorm:"-" json:"imageUrl"`
}

func (f *FishingCms) ResolveImages(base string) {
	f.ImageURL = nil
	if f.Image != nil {
		f.ImageURL = utils.ResolvePublicURL(*f.Image, base)
	}
}

type AboutPageContent struct {
	DTO
	Title    string  `gorm:"size:255" json:"title"`
	Story    string  `gorm:"type:text" json:"story"`
	Mission  string  `gorm:"type:text" json:"mission"`
	Vision   string  `gorm:"type:text" json:"vision"`
	Image    *string `gorm:"size:500" json:"image"`
	ImageURL *string `gorm:"-" json:"imageUrl"`
}

func (a *AboutPageContent) ResolveImages(base string) {
	a.ImageURL = nil
	if a.Image != nil {
		a.ImageURL = utils.ResolvePublicURL(*a.Image, base)
	}
}

type Milestone struct {
	DTO
	Year        int    `gorm:"not null" json:"year"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	SortOrder   int    `gorm:"not null;default:0" json:"sortOrder"`
}

type TeamMember struct {
	DTO
	Name      string  `gorm:"size:150;not null" json:"name"`
	Role      string  `gorm:"size:150" json:"role"`
	Bio       string  `gorm:"type:text" json:"bio"`
	Photo     *string `gorm:"size:500" json:"photo"`
	SortOrder int     `gorm:"not null;default:0" json:"sortOrder"`
	PhotoURL  *string `gorm:"-" json:"photoUrl"`
}

func (t *TeamMember) ResolveImages(base string) {
	t.PhotoURL = nil
	if t.Photo != nil {
		t.PhotoURL = utils.ResolvePublicURL(*t.Photo, base)
	}
}

type Gallery struct {
	DTO
	Title     string  `gorm:"size:255" json:"title"`
	Image     string  `gorm:"size:500;not null" json:"image"`
	SortOrder int     `gorm:"not null;default:0" json:"sortOrder"`
	ImageURL  *string `gorm:"-" json:"imageUrl"`
}

func (g *Gallery) ResolveImages(base string) {
	g.ImageURL = utils.ResolvePublicURL(g.Image, base)
}

type FishingCmsInput struct {
	Title    string  `json:"title" validate:"max=255"`
	Subtitle string  `json:"subtitle" validate:"max=255"`
	Content  string  `json:"content"`
	Rules    string  `json:"rules"`
	Image    *string `json:"image" validate:"omitempty,max=500"`
}

type AboutPageInput struct {
	Title   string  `json:"title" validate:"max=255"`
	Story   string  `json:"story"`
	Mission string  `json:"mission"`
	Vision  string  `json:"vision"`
	Image   *string `json:"image" validate:"omitempty,max=500"`
}

type MilestoneInput struct {
	Year        int    `json:"year" validate:"required,gte=1900,lte=2200"`
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
	SortOrder   int    `json:"sortOrder"`
}

type TeamMemberInput struct {
	Name      string  `json:"name" validate:"required,max=150"`
	Role      string  `json:"role" validate:"max=150"`
	Bio       string  `json:"bio"`
	Photo     *string `json:"photo" validate:"omitempty,max=500"`
	SortOrder int     `json:"sortOrder"`
}

type GalleryInput struct {
	Title     string `json:"title" validate:"max=255"`
	Image     string `json:"image" validate:"required,max=500"`
	SortOrder int    `json:"sortOrder"`
}
