package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"venue_manager/constants"
	"venue_manager/database"
	"venue_manager/middleware"
	"venue_manager/model"
	"venue_manager/utils"
)

// reviewTarget binds a review table to the catalog entity it rates.
type reviewTarget struct {
	entity  any
	column  string
	newFunc func(userID, itemID uint, input model.CreateReviewInput) any
}

var (
	productReviews = reviewTarget{
		entity: &model.Product{},
		column: "product_id",
		newFunc: func(userID, itemID uint, input model.CreateReviewInput) any {
			return &model.ProductReview{UserID: userID, ProductID: itemID, Rating: input.Rating, Comment: input.Comment}
		},
	}
	packageReviews = reviewTarget{
		entity: &model.Package{},
		column: "package_id",
		newFunc: func(userID, itemID uint, input model.CreateReviewInput) any {
			return &model.PackageReview{UserID: userID, PackageID: itemID, Rating: input.Rating, Comment: input.Comment}
		},
	}
)

func listReviews[T any](c *fiber.Ctx, target reviewTarget) error {
	itemID := inputID(c)
	if err := exists(database.DB, target.entity, itemID); err != nil {
		return dbError(c, "Failed to load reviews", err)
	}

	var reviews []T
	if err := database.DB.Preload("User").Where(target.column+" = ?", itemID).Order("created_at DESC").Find(&reviews).Error; err != nil {
		return dbError(c, "Failed to load reviews", err)
	}

	var summary model.ReviewSummary
	if err := database.DB.Model(new(T)).
		Select("COUNT(*) AS count, COALESCE(AVG(rating), 0) AS average").
		Where(target.column+" = ?", itemID).
		Scan(&summary).Error; err != nil {
		return dbError(c, "Failed to load reviews", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"reviews": reviews,
		"summary": summary,
	})
}

func createReview(c *fiber.Ctx, target reviewTarget) error {
	input, ok := c.Locals("input").(model.CreateReviewInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("missing input"))
	}
	itemID := inputID(c)

	review := target.newFunc(middleware.CurrentUserID(c), itemID, input)
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := exists(tx, target.entity, itemID); err != nil {
			return err
		}
		return tx.Create(review).Error
	})
	if err != nil {
		return dbError(c, "Failed to create review", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, review)
}

func GetProductReviews(c *fiber.Ctx) error {
	return listReviews[model.ProductReview](c, productReviews)
}

func CreateProductReview(c *fiber.Ctx) error {
	return createReview(c, productReviews)
}

func GetPackageReviews(c *fiber.Ctx) error {
	return listReviews[model.PackageReview](c, packageReviews)
}

func CreatePackageReview(c *fiber.Ctx) error {
	return createReview(c, packageReviews)
}
