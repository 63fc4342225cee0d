package validate

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"venue_manager/constants"
	"venue_manager/model"
	"venue_manager/utils"
)

func OrderFilter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var filter model.OrderFilter
		if err := c.QueryParser(&filter); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if filter.Status != "" && !model.OrderStatus(strings.ToLower(filter.Status)).Valid() {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.VALIDATION_FAILED,
				fmt.Errorf("unknown status %q", filter.Status))
		}
		if _, ok := utils.ParseDateRange(filter.Range); !ok {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.VALIDATION_FAILED,
				fmt.Errorf("unknown range %q", filter.Range))
		}

		c.Locals("filter", filter)
		return c.Next()
	}
}
