package handler

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"venue_manager/config"
	"venue_manager/constants"
	"venue_manager/database"
	"venue_manager/helper"
	"venue_manager/middleware"
	"venue_manager/model"
	"venue_manager/utils"
)

// orderError maps order construction failures to status codes.
func orderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, model.ErrUnknownItemType), errors.Is(err, model.ErrNegativePrice):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.VALIDATION_FAILED, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Referenced item does not exist", err)
	case errors.Is(err, model.ErrCartEmpty):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cart is empty", err)
	case errors.Is(err, model.ErrInvalidTransition):
		return utils.ErrorResponse(c, fiber.StatusConflict, "Order status cannot change", err)
	}
	utils.Log.Error("order operation failed", zap.String("path", c.Path()), zap.Error(err))
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
}

func publishOrderEvent(eventType string, order model.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := helper.PublishOrderEvent(ctx, database.Redis, helper.NewOrderEvent(eventType, order)); err != nil {
		utils.Log.Warn("order feed publish failed", zap.Uint("orderId", order.ID), zap.Error(err))
	}
}

func loadOrder(db *gorm.DB, id uint) (model.Order, error) {
	var order model.Order
	err := db.
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") }).
		Preload("User").
		Preload("Duration").
		Preload("TableNumber").
		First(&order, id).Error
	return order, err
}

func respondOrder(c *fiber.Ctx, status int, id uint) error {
	db := database.DB
	order, err := loadOrder(db, id)
	if err != nil {
		return dbError(c, "Failed to load order", err)
	}
	view, err := helper.BuildOrderView(db, order, helper.CurrentImageOptions())
	if err != nil {
		return dbError(c, "Failed to load order", err)
	}
	view.AttachQRCode()
	return utils.SuccessResponse(c, status, view)
}

func CreateOrder(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("missing input"))
	}
	db := database.DB

	if err := helper.CheckOrderReferences(db, input.DurationID, input.TableNumberID); err != nil {
		return orderError(c, err)
	}
	order, err := helper.CreateOrder(db, middleware.CurrentUserID(c), input, config.Current().Tax())
	if err != nil {
		return orderError(c, err)
	}

	utils.Log.Info("order created", zap.Uint("orderId", order.ID), zap.String("reference", order.Reference), zap.Int("items", len(order.Items)))
	publishOrderEvent(helper.EventOrderCreated, *order)
	return respondOrder(c, fiber.StatusCreated, order.ID)
}

func Checkout(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CheckoutInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("missing input"))
	}
	db := database.DB

	if err := helper.CheckOrderReferences(db, input.DurationID, input.TableNumberID); err != nil {
		return orderError(c, err)
	}
	order, err := helper.Checkout(db, middleware.CurrentUserID(c), input, config.Current().Tax())
	if err != nil {
		return orderError(c, err)
	}

	utils.Log.Info("cart checked out", zap.Uint("orderId", order.ID), zap.String("reference", order.Reference), zap.Int("items", len(order.Items)))
	publishOrderEvent(helper.EventOrderCreated, *order)
	return respondOrder(c, fiber.StatusCreated, order.ID)
}

func GetMyOrders(c *fiber.Ctx) error {
	var pagination model.Pagination
	if err := c.QueryParser(&pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	db := database.DB

	var orders []model.Order
	query := db.Model(&model.Order{}).Where("user_id = ?", middleware.CurrentUserID(c))
	page, err := paginate(query, pagination, &orders, func(tx *gorm.DB) *gorm.DB {
		return tx.Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") }).Order("created_at DESC")
	})
	if err != nil {
		return dbError(c, "Failed to load orders", err)
	}

	views, err := helper.BuildOrderViews(db, orders, helper.CurrentImageOptions())
	if err != nil {
		return dbError(c, "Failed to load orders", err)
	}
	page.Rows = views
	return utils.SuccessResponse(c, fiber.StatusOK, page)
}

// GetOrderDetail answers 404 for orders of other users unless the caller is an admin.
func GetOrderDetail(c *fiber.Ctx) error {
	id := inputID(c)
	if !middleware.IsAdmin(c) {
		var count int64
		if err := database.DB.Model(&model.Order{}).Where("id = ? AND user_id = ?", id, middleware.CurrentUserID(c)).Count(&count).Error; err != nil {
			return dbError(c, "Failed to load order", err)
		}
		if count == 0 {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, gorm.ErrRecordNotFound)
		}
	}
	return respondOrder(c, fiber.StatusOK, id)
}
