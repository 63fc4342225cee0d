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

func GetComments(c *fiber.Ctx) error {
	var pagination model.Pagination
	if err := c.QueryParser(&pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	var comments []model.Comment
	page, err := paginate(database.DB.Model(&model.Comment{}), pagination, &comments, func(tx *gorm.DB) *gorm.DB {
		return tx.Preload("User").
			Preload("Replies", func(tx *gorm.DB) *gorm.DB { return tx.Order("created_at ASC") }).
			Preload("Replies.User").
			Order("created_at DESC")
	})
	if err != nil {
		return dbError(c, "Failed to load comments", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, page)
}

func CreateComment(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateCommentInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("missing input"))
	}

	comment := model.Comment{UserID: middleware.CurrentUserID(c), Body: input.Body}
	if err := database.DB.Create(&comment).Error; err != nil {
		return dbError(c, "Failed to create comment", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, comment)
}

func CreateReply(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateCommentInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("missing input"))
	}
	commentID := inputID(c)

	reply := model.Reply{CommentID: commentID, UserID: middleware.CurrentUserID(c), Body: input.Body}
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := exists(tx, &model.Comment{}, commentID); err != nil {
			return err
		}
		return tx.Create(&reply).Error
	})
	if err != nil {
		return dbError(c, "Failed to create reply", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, reply)
}

// DeleteComments is admin moderation; replies go by cascade.
func DeleteComments(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("missing ids"))
	}

	result := database.DB.Delete(&model.Comment{}, input.IDs)
	if result.Error != nil {
		return dbError(c, "Failed to delete comments", result.Error)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": result.RowsAffected})
}
