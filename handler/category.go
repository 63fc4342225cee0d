package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"venue_manager/constants"
	"venue_manager/database"
	"venue_manager/helper"
	"venue_manager/model"
	"venue_manager/utils"
)

func GetCategories(c *fiber.Ctx) error {
	var categories []model.Category
	if err := database.DB.Order("name ASC").Find(&categories).Error; err != nil {
		return dbError(c, "Failed to load categories", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, categories)
}

func CreateCategory(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateCategoryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("missing input"))
	}

	category := model.Category{Name: input.Name, Description: input.Description}
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		slug, err := helper.GenerateUniqueSlug(tx, &model.Category{}, category.Name, 0)
		if err != nil {
			return err
		}
		category.Slug = slug
		return tx.Create(&category).Error
	})
	if err != nil {
		return dbError(c, "Failed to create category", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, category)
}

func UpdateCategory(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateCategoryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("missing input"))
	}
	id := inputID(c)

	var category model.Category
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&category, id).Error; err != nil {
			return err
		}
		if input.Name != category.Name {
			slug, err := helper.GenerateUniqueSlug(tx, &model.Category{}, input.Name, id)
			if err != nil {
				return err
			}
			category.Name, category.Slug = input.Name, slug
		}
		category.Description = input.Description
		return tx.Save(&category).Error
	})
	if err != nil {
		return dbError(c, "Failed to update category", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, category)
}

// DeleteCategories leaves products in place with no category.
func DeleteCategories(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("missing ids"))
	}

	result := database.DB.Delete(&model.Category{}, input.IDs)
	if result.Error != nil {
		return dbError(c, "Failed to delete categories", result.Error)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": result.RowsAffected})
}
