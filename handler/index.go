package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"venue_manager/constants"
	"venue_manager/model"
	"venue_manager/utils"
)

func inputID(c *fiber.Ctx) uint {
	id, _ := c.Locals("inputId").(int)
	return uint(id)
}

// dbError answers 404 for missing rows and 500 for everything else.
func dbError(c *fiber.Ctx, message string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}
	utils.Log.Error(message, zap.String("path", c.Path()), zap.Error(err))
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, message, err)
}

// paginate counts the filtered rows, then loads the requested page into dest.
// scopes (preloads, ordering) apply to the page query only.
func paginate(query *gorm.DB, pagination model.Pagination, dest any, scopes ...func(*gorm.DB) *gorm.DB) (model.ResponseCustom, error) {
	var totalCount int64
	if err := query.Session(&gorm.Session{}).Count(&totalCount).Error; err != nil {
		return model.ResponseCustom{}, err
	}
	if err := utils.ApplyPagination(query.Scopes(scopes...), pagination.Limit, pagination.Page).Find(dest).Error; err != nil {
		return model.ResponseCustom{}, err
	}
	return model.ResponseCustom{
		Rows:       dest,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	}, nil
}

// exists reports gorm.ErrRecordNotFound when no row of entity has id.
func exists(tx *gorm.DB, entity any, id uint) error {
	var count int64
	if err := tx.Model(entity).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
