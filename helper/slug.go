package helper

import (
	"fmt"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// GenerateUniqueSlug appends -1, -2, ... until the slug is free in the table of
// entity. exceptID skips the row being updated.
func GenerateUniqueSlug(tx *gorm.DB, entity any, name string, exceptID uint) (string, error) {
	base := slug.Make(name)
	if base == "" {
		base = "item"
	}
	result := base

	for i := 1; ; i++ {
		var count int64
		query := tx.Model(entity).Where("slug = ?", result)
		if exceptID != 0 {
			query = query.Where("id <> ?", exceptID)
		}
		if err := query.Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return result, nil
		}
		result = fmt.Sprintf("%s-%d", base, i)
	}
}
