package validate

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"venue_manager/constants"
	"venue_manager/model"
	"venue_manager/utils"
)

var errCartTarget = errors.New("exactly one of productId or packageId is required")

func AddToCart() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AddToCartInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.VALIDATION_FAILED, err)
		}
		if (input.ProductID == nil) == (input.PackageID == nil) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.VALIDATION_FAILED, errCartTarget)
		}

		c.Locals("input", input)
		return c.Next()
	}
}
