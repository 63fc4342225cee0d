package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"

	"venue_manager/constants"
	"venue_manager/database"
	"venue_manager/model"
	"venue_manager/utils"
)

// Resource serves list/create/update/delete for a plain ordered table of T
// written from input I.
type Resource[T any, I any] struct {
	Name       string
	OrderBy    string
	BeforeSave func(row *T, input I)
}

func (r Resource[T, I]) List(c *fiber.Ctx) error {
	var rows []T
	if err := database.DB.Order(r.OrderBy).Find(&rows).Error; err != nil {
		return dbError(c, "Failed to load "+r.Name, err)
	}
	for i := range rows {
		resolveImages(&rows[i])
	}
	return utils.SuccessResponse(c, fiber.StatusOK, rows)
}

func (r Resource[T, I]) Get(c *fiber.Ctx) error {
	var row T
	if err := database.DB.First(&row, inputID(c)).Error; err != nil {
		return dbError(c, "Failed to load "+r.Name, err)
	}
	resolveImages(&row)
	return utils.SuccessResponse(c, fiber.StatusOK, &row)
}

func (r Resource[T, I]) Create(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(I)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("missing input"))
	}

	var row T
	if err := r.apply(&row, input); err != nil {
		return dbError(c, "Failed to create "+r.Name, err)
	}
	if err := database.DB.Create(&row).Error; err != nil {
		return dbError(c, "Failed to create "+r.Name, err)
	}
	resolveImages(&row)
	return utils.SuccessResponse(c, fiber.StatusCreated, &row)
}

func (r Resource[T, I]) Update(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(I)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("missing input"))
	}

	var row T
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&row, inputID(c)).Error; err != nil {
			return err
		}
		if err := r.apply(&row, input); err != nil {
			return err
		}
		return tx.Save(&row).Error
	})
	if err != nil {
		return dbError(c, "Failed to update "+r.Name, err)
	}
	resolveImages(&row)
	return utils.SuccessResponse(c, fiber.StatusOK, &row)
}

func (r Resource[T, I]) Delete(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("missing ids"))
	}

	result := database.DB.Delete(new(T), input.IDs)
	if result.Error != nil {
		return dbError(c, "Failed to delete "+r.Name, result.Error)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": result.RowsAffected})
}

func (r Resource[T, I]) apply(row *T, input I) error {
	if err := copier.Copy(row, &input); err != nil {
		return err
	}
	if r.BeforeSave != nil {
		r.BeforeSave(row, input)
	}
	return nil
}

var (
	Milestones = Resource[model.Milestone, model.MilestoneInput]{
		Name:    "milestones",
		OrderBy: "sort_order ASC, year ASC, id ASC",
	}
	TeamMembers = Resource[model.TeamMember, model.TeamMemberInput]{
		Name:    "team members",
		OrderBy: "sort_order ASC, id ASC",
	}
	Galleries = Resource[model.Gallery, model.GalleryInput]{
		Name:    "gallery",
		OrderBy: "sort_order ASC, id ASC",
	}
	Durations = Resource[model.Duration, model.DurationInput]{
		Name:    "durations",
		OrderBy: "minutes ASC",
	}
	Tables = Resource[model.TableNumber, model.TableNumberInput]{
		Name:    "tables",
		OrderBy: "number ASC",
		BeforeSave: func(row *model.TableNumber, input model.TableNumberInput) {
			if input.IsActive != nil {
				row.IsActive = *input.IsActive
			} else if row.ID == 0 {
				row.IsActive = true
			}
		},
	}
)
