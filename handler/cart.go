package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"venue_manager/constants"
	"venue_manager/database"
	"venue_manager/helper"
	"venue_manager/middleware"
	"venue_manager/model"
	"venue_manager/utils"
)

type cartLine struct {
	model.Cart
	ImageURL   string          `json:"imageUrl"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

func GetCart(c *fiber.Ctx) error {
	var carts []model.Cart
	if err := database.DB.Where("user_id = ?", middleware.CurrentUserID(c)).Order("id ASC").Find(&carts).Error; err != nil {
		return dbError(c, "Failed to load cart", err)
	}

	opts := helper.CurrentImageOptions()
	lines := make([]cartLine, 0, len(carts))
	subtotal := decimal.Zero
	for _, cart := range carts {
		url := opts.Placeholder
		if cart.Image != nil {
			if resolved := utils.ResolvePublicURL(*cart.Image, opts.BaseURL); resolved != nil {
				url = *resolved
			}
		}
		lines = append(lines, cartLine{Cart: cart, ImageURL: url, TotalPrice: cart.TotalPrice()})
		subtotal = subtotal.Add(cart.TotalPrice())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"items":    lines,
		"subtotal": subtotal.Round(2),
	})
}

func AddToCart(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.AddToCartInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("missing input"))
	}

	cart, err := helper.AddToCart(database.DB, middleware.CurrentUserID(c), input)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Referenced item does not exist", err)
		}
		return dbError(c, "Failed to add to cart", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, cart)
}

func UpdateCart(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.UpdateCartInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("missing input"))
	}

	cart, err := helper.UpdateCartQuantity(database.DB, middleware.CurrentUserID(c), inputID(c), input.Quantity)
	if err != nil {
		return dbError(c, "Failed to update cart", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, cart)
}

func RemoveFromCart(c *fiber.Ctx) error {
	if err := helper.RemoveCartItem(database.DB, middleware.CurrentUserID(c), inputID(c)); err != nil {
		return dbError(c, "Failed to remove cart item", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, nil)
}
