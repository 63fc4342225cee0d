package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"venue_manager/config"
	"venue_manager/constants"
	"venue_manager/database"
	"venue_manager/helper"
	"venue_manager/model"
	"venue_manager/utils"
)

type imageResolver interface {
	ResolveImages(base string)
}

func resolveImages(row any) {
	if r, ok := row.(imageResolver); ok {
		r.ResolveImages(helper.CurrentImageOptions().BaseURL)
	}
}

func contentCache() *helper.ContentCache {
	return helper.NewContentCache(database.Redis, config.Current().ContentCacheTTL)
}

// getSingleton reads through the redis cache; a missing row answers an empty
// record rather than 404.
func getSingleton[T any](c *fiber.Ctx, key string) error {
	cache := contentCache()
	var row T

	err := cache.Get(c.Context(), key, &row)
	if err == nil {
		return utils.SuccessResponse(c, fiber.StatusOK, &row)
	}
	if !errors.Is(err, helper.ErrCacheMiss) {
		utils.Log.Warn("content cache read failed", zap.String("key", key), zap.Error(err))
	}

	if err := database.DB.Order("id ASC").First(&row).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return dbError(c, "Failed to load content", err)
	}
	resolveImages(&row)

	if err := cache.Set(c.Context(), key, &row); err != nil {
		utils.Log.Warn("content cache write failed", zap.String("key", key), zap.Error(err))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, &row)
}

// upsertSingleton writes the input over the single row, creating it when the
// table is empty, and drops the cached copy.
func upsertSingleton[T any, I any](c *fiber.Ctx, key string) error {
	input, ok := c.Locals("input").(I)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("missing input"))
	}

	var row T
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Order("id ASC").First(&row).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := copier.Copy(&row, &input); err != nil {
			return err
		}
		return tx.Save(&row).Error
	})
	if err != nil {
		return dbError(c, "Failed to save content", err)
	}

	if err := contentCache().Delete(c.Context(), key); err != nil {
		utils.Log.Warn("content cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
	resolveImages(&row)
	return utils.SuccessResponse(c, fiber.StatusOK, &row)
}

func GetFishingCms(c *fiber.Ctx) error {
	return getSingleton[model.FishingCms](c, constants.CACHE_KEY_FISHING_CMS)
}

func UpdateFishingCms(c *fiber.Ctx) error {
	return upsertSingleton[model.FishingCms, model.FishingCmsInput](c, constants.CACHE_KEY_FISHING_CMS)
}

func GetAboutPage(c *fiber.Ctx) error {
	return getSingleton[model.AboutPageContent](c, constants.CACHE_KEY_ABOUT_PAGE)
}

func UpdateAboutPage(c *fiber.Ctx) error {
	return upsertSingleton[model.AboutPageContent, model.AboutPageInput](c, constants.CACHE_KEY_ABOUT_PAGE)
}
