package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"venue_manager/config"
	"venue_manager/constants"
	"venue_manager/helper"
	"venue_manager/model"
	"venue_manager/utils"
)

func tokenFromRequest(c *fiber.Ctx) string {
	token := c.Cookies("access_token")
	if token == "" {
		// check header Authorization: Bearer xxx
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}
	}
	return strings.TrimSpace(token)
}

func setClaim(c *fiber.Ctx, claim model.TokenClaim) {
	c.Locals("userId", claim.UserId)
	c.Locals("role", claim.Role)
}

// Protected requires a valid access token issued by the identity service.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, errors.New("no token"))
		}

		claim, err := helper.ParseToken(token, []byte(config.Current().JwtSecret))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, err)
		}

		setClaim(c, claim)
		return c.Next()
	}
}

// OptionalAuth records the caller when a valid token is present and lets
// guests through with userId 0.
func OptionalAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userId", uint(0))
		c.Locals("role", "")

		if token := tokenFromRequest(c); token != "" {
			if claim, err := helper.ParseToken(token, []byte(config.Current().JwtSecret)); err == nil {
				setClaim(c, claim)
			}
		}
		return c.Next()
	}
}

// AdminOnly must run after Protected.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !IsAdmin(c) {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN, errors.New("admin role required"))
		}
		return c.Next()
	}
}

func CurrentUserID(c *fiber.Ctx) uint {
	id, _ := c.Locals("userId").(uint)
	return id
}

func IsAdmin(c *fiber.Ctx) bool {
	role, _ := c.Locals("role").(string)
	return role == constants.ROLE_ADMIN
}
