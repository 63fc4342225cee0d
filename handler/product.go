package handler

import (
	"errors"
	"strings"

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

func catalogQuery(c *fiber.Ctx, entity any, filter model.CatalogFilter) *gorm.DB {
	query := database.DB.Model(entity)
	if search := strings.TrimSpace(filter.Search); search != "" {
		query = query.Where("name ILIKE ?", helper.ContainsPattern(search))
	}
	switch {
	case !middleware.IsAdmin(c):
		query = query.Where("is_active = ?", true)
	case filter.Active != nil:
		query = query.Where("is_active = ?", *filter.Active)
	}
	return query
}

func GetProducts(c *fiber.Ctx) error {
	filter := new(model.CatalogFilter)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	query := catalogQuery(c, &model.Product{}, *filter)
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}

	var products []model.Product
	page, err := paginate(query, filter.Pagination, &products, func(tx *gorm.DB) *gorm.DB {
		return tx.Preload("Images", helper.OrderedImages).Preload("Category").Order("created_at DESC")
	})
	if err != nil {
		return dbError(c, "Failed to load products", err)
	}

	base := helper.CurrentImageOptions().BaseURL
	for i := range products {
		products[i].ResolveImages(base)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, page)
}

func findProduct(id uint) (model.Product, error) {
	var product model.Product
	err := database.DB.Preload("Images", helper.OrderedImages).Preload("Category").First(&product, id).Error
	if err == nil {
		product.ResolveImages(helper.CurrentImageOptions().BaseURL)
	}
	return product, err
}

func GetProduct(c *fiber.Ctx) error {
	product, err := findProduct(inputID(c))
	if err != nil {
		return dbError(c, "Failed to load product", err)
	}
	if !product.IsActive && !middleware.IsAdmin(c) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, gorm.ErrRecordNotFound)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

func CreateProduct(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateProductInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("missing input"))
	}

	product := model.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		CategoryID:  input.CategoryID,
		IsActive:    input.IsActive == nil || *input.IsActive,
	}
	for i, image := range input.Images {
		product.Images = append(product.Images, model.ProductImage{Image: image, SortOrder: i})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		slug, err := helper.GenerateUniqueSlug(tx, &model.Product{}, product.Name, 0)
		if err != nil {
			return err
		}
		product.Slug = slug
		return tx.Create(&product).Error
	})
	if err != nil {
		return dbError(c, "Failed to create product", err)
	}

	utils.Log.Info("product created", zap.Uint("productId", product.ID), zap.String("slug", product.Slug))
	created, err := findProduct(product.ID)
	if err != nil {
		return dbError(c, "Failed to load product", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, created)
}

func UpdateProduct(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.UpdateProductInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("missing input"))
	}
	id := inputID(c)

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var product model.Product
		if err := tx.First(&product, id).Error; err != nil {
			return err
		}

		updates := map[string]any{}
		if input.Name != nil && *input.Name != product.Name {
			slug, err := helper.GenerateUniqueSlug(tx, &model.Product{}, *input.Name, id)
			if err != nil {
				return err
			}
			updates["name"] = *input.Name
			updates["slug"] = slug
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.Price != nil {
			updates["price"] = *input.Price
		}
		if input.CategoryID != nil {
			updates["category_id"] = *input.CategoryID
		}
		if input.IsActive != nil {
			updates["is_active"] = *input.IsActive
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&product).Updates(updates).Error
	})
	if err != nil {
		return dbError(c, "Failed to update product", err)
	}

	product, err := findProduct(id)
	if err != nil {
		return dbError(c, "Failed to load product", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

// DeleteProducts also drops the products' images, cart rows and reviews by
// cascade. Order lines keep their snapshot.
func DeleteProducts(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("missing ids"))
	}

	result := database.DB.Delete(&model.Product{}, input.IDs)
	if result.Error != nil {
		return dbError(c, "Failed to delete products", result.Error)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": result.RowsAffected})
}

func AddProductImage(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.ProductImageInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("missing input"))
	}
	productID := inputID(c)

	if err := exists(database.DB, &model.Product{}, productID); err != nil {
		return dbError(c, "Failed to load product", err)
	}

	image := model.ProductImage{ProductID: productID, Image: input.Image, SortOrder: input.SortOrder}
	if err := database.DB.Create(&image).Error; err != nil {
		return dbError(c, "Failed to add image", err)
	}
	image.URL = image.ImageURL(helper.CurrentImageOptions().BaseURL)
	return utils.SuccessResponse(c, fiber.StatusCreated, image)
}

func DeleteProductImage(c *fiber.Ctx) error {
	productID := inputID(c)
	imageID, err := c.ParamsInt("imageId")
	if err != nil || imageID <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
	}

	result := database.DB.Where("id = ? AND product_id = ?", imageID, productID).Delete(&model.ProductImage{})
	if result.Error != nil {
		return dbError(c, "Failed to delete image", result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, gorm.ErrRecordNotFound)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, nil)
}
