package handler

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tealeg/xlsx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"venue_manager/config"
	"venue_manager/constants"
	"venue_manager/database"
	"venue_manager/helper"
	"venue_manager/model"
	"venue_manager/utils"
)

func filteredOrders(c *fiber.Ctx) (*gorm.DB, model.OrderFilter, error) {
	filter, ok := c.Locals("filter").(model.OrderFilter)
	if !ok {
		return nil, filter, errors.New("missing filter")
	}
	settings := config.Current()
	query, err := helper.FilterOrders(database.DB, filter, time.Now().In(settings.Location()), settings.WeekStartDay())
	return query, filter, err
}

func GetAdminOrders(c *fiber.Ctx) error {
	query, filter, err := filteredOrders(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	var orders []model.Order
	page, err := paginate(query, filter.Pagination, &orders, func(tx *gorm.DB) *gorm.DB {
		return tx.Select("orders.*").
			Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") }).
			Preload("User").
			Order("orders.created_at DESC")
	})
	if err != nil {
		return dbError(c, "Failed to load orders", err)
	}

	views, err := helper.BuildOrderViews(database.DB, orders, helper.CurrentImageOptions())
	if err != nil {
		return dbError(c, "Failed to load orders", err)
	}
	page.Rows = views
	return utils.SuccessResponse(c, fiber.StatusOK, page)
}

func transitionOrder(c *fiber.Ctx, next model.OrderStatus) error {
	order, err := helper.TransitionOrder(database.DB, inputID(c), next)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return orderError(c, err)
	}

	utils.Log.Info("order status changed", zap.Uint("orderId", order.ID), zap.String("status", string(order.Status)))
	publishOrderEvent(helper.EventOrderStatusChanged, *order)
	return respondOrder(c, fiber.StatusOK, order.ID)
}

func CompleteOrder(c *fiber.Ctx) error {
	return transitionOrder(c, model.OrderCompleted)
}

func CancelOrder(c *fiber.Ctx) error {
	return transitionOrder(c, model.OrderCancelled)
}

// DeleteOrders removes orders; their items go with them through the FK cascade.
func DeleteOrders(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("missing ids"))
	}

	result := database.DB.Delete(&model.Order{}, input.IDs)
	if result.Error != nil {
		return dbError(c, "Failed to delete orders", result.Error)
	}
	utils.Log.Info("orders deleted", zap.Uints("ids", input.IDs), zap.Int64("rows", result.RowsAffected))
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": result.RowsAffected})
}

var exportHeaders = []string{"Reference", "Customer", "Order Type", "Items", "Subtotal", "Tax", "Total", "Status", "Created At"}

// ExportOrders writes every order matching the browser filter to an xlsx sheet.
func ExportOrders(c *fiber.Ctx) error {
	query, _, err := filteredOrders(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	var orders []model.Order
	if err := query.Select("orders.*").Preload("Items").Preload("User").Order("orders.created_at DESC").Find(&orders).Error; err != nil {
		return dbError(c, "Failed to load orders", err)
	}

	data, err := buildOrderWorkbook(helper.SummarizeOrders(orders), config.Current().Location())
	if err != nil {
		return dbError(c, "Failed to build export", err)
	}

	filename := fmt.Sprintf("orders-%s.xlsx", time.Now().Format("20060102-150405"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
	return c.Status(fiber.StatusOK).Send(data)
}

func buildOrderWorkbook(rows []helper.OrderSummaryView, loc *time.Location) ([]byte, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		return nil, err
	}

	headerRow := sheet.AddRow()
	for _, h := range exportHeaders {
		headerRow.AddCell().SetValue(h)
	}

	for _, o := range rows {
		customer := ""
		if o.User != nil {
			customer = o.User.Name
		}
		row := sheet.AddRow()
		row.AddCell().SetValue(o.Reference)
		row.AddCell().SetValue(customer)
		row.AddCell().SetValue(o.OrderType)
		row.AddCell().SetValue(o.ItemCount)
		row.AddCell().SetValue(o.Subtotal.StringFixed(2))
		row.AddCell().SetValue(o.Tax.StringFixed(2))
		row.AddCell().SetValue(o.Total.StringFixed(2))
		row.AddCell().SetValue(string(o.Status))
		row.AddCell().SetValue(o.CreatedAt.In(loc).Format("2006-01-02 15:04:05"))
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
