package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"venue_manager/constants"
	"venue_manager/database"
	"venue_manager/helper"
	"venue_manager/middleware"
	"venue_manager/model"
	"venue_manager/utils"
)

func GetPackages(c *fiber.Ctx) error {
	filter := new(model.CatalogFilter)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	var packages []model.Package
	page, err := paginate(catalogQuery(c, &model.Package{}, *filter), filter.Pagination, &packages, func(tx *gorm.DB) *gorm.DB {
		return tx.Order("price ASC, id ASC")
	})
	if err != nil {
		return dbError(c, "Failed to load packages", err)
	}

	base := helper.CurrentImageOptions().BaseURL
	for i := range packages {
		packages[i].ResolveImages(base)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, page)
}

func findPackage(id uint) (model.Package, error) {
	var pkg model.Package
	err := database.DB.First(&pkg, id).Error
	if err == nil {
		pkg.ResolveImages(helper.CurrentImageOptions().BaseURL)
	}
	return pkg, err
}

func GetPackage(c *fiber.Ctx) error {
	pkg, err := findPackage(inputID(c))
	if err != nil {
		return dbError(c, "Failed to load package", err)
	}
	if !pkg.IsActive && !middleware.IsAdmin(c) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, gorm.ErrRecordNotFound)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, pkg)
}

func CreatePackage(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreatePackageInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("missing input"))
	}

	pkg := model.Package{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Features:    input.Features,
		Image:       input.Image,
		IsActive:    input.IsActive == nil || *input.IsActive,
	}
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		slug, err := helper.GenerateUniqueSlug(tx, &model.Package{}, pkg.Name, 0)
		if err != nil {
			return err
		}
		pkg.Slug = slug
		return tx.Create(&pkg).Error
	})
	if err != nil {
		return dbError(c, "Failed to create package", err)
	}

	utils.Log.Info("package created", zap.Uint("packageId", pkg.ID), zap.String("slug", pkg.Slug))
	pkg.ResolveImages(helper.CurrentImageOptions().BaseURL)
	return utils.SuccessResponse(c, fiber.StatusCreated, pkg)
}

func UpdatePackage(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.UpdatePackageInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("missing input"))
	}
	id := inputID(c)

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var pkg model.Package
		if err := tx.First(&pkg, id).Error; err != nil {
			return err
		}

		if input.Name != nil && *input.Name != pkg.Name {
			slug, err := helper.GenerateUniqueSlug(tx, &model.Package{}, *input.Name, id)
			if err != nil {
				return err
			}
			pkg.Name, pkg.Slug = *input.Name, slug
		}
		if input.Description != nil {
			pkg.Description = *input.Description
		}
		if input.Price != nil {
			pkg.Price = *input.Price
		}
		if input.Features != nil {
			pkg.Features = input.Features
		}
		if input.Image != nil {
			pkg.Image = utils.StringPtr(*input.Image)
		}
		if input.IsActive != nil {
			pkg.IsActive = *input.IsActive
		}
		return tx.Save(&pkg).Error
	})
	if err != nil {
		return dbError(c, "Failed to update package", err)
	}

	pkg, err := findPackage(id)
	if err != nil {
		return dbError(c, "Failed to load package", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, pkg)
}

func DeletePackages(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("missing ids"))
	}

	result := database.DB.Delete(&model.Package{}, input.IDs)
	if result.Error != nil {
		return dbError(c, "Failed to delete packages", result.Error)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": result.RowsAffected})
}
