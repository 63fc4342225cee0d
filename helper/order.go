package helper

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"venue_manager/model"
	"venue_manager/utils"
)

func NewOrderReference() string {
	return "ORD-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
}

// OrderItemFromCart snapshots a cart row into an order line. Name, price,
// quantity, features and image are copied verbatim.
func OrderItemFromCart(cart model.Cart) (model.OrderItem, error) {
	itemType, itemID, err := cart.ItemRef()
	if err != nil {
		return model.OrderItem{}, err
	}

	var item model.OrderItem
	if err := copier.CopyWithOption(&item, &cart, copier.Option{DeepCopy: true}); err != nil {
		return model.OrderItem{}, fmt.Errorf("copy cart %d: %w", cart.ID, err)
	}
	item.DTO = model.DTO{}
	item.ItemType = itemType
	item.ItemID = itemID
	item.ItemPrice = cart.Price
	item.Image = nil
	if cart.Image != nil {
		item.Image = utils.StringPtr(*cart.Image)
	}
	return item, nil
}

// BuildOrderItem snapshots a requested line from the live catalog. Values sent
// by the client for name, price, features or image take precedence.
func BuildOrderItem(db *gorm.DB, input model.CreateOrderItemInput) (model.OrderItem, error) {
	itemType := model.ItemType(input.ItemType)
	live, err := ResolveCatalogItem(db, itemType, input.ItemID)
	if err != nil {
		return model.OrderItem{}, err
	}

	item := model.OrderItem{
		ItemType:  itemType,
		ItemID:    input.ItemID,
		ItemName:  live.Name(),
		ItemPrice: live.Price(),
		Quantity:  input.Quantity,
		Features:  live.Features(),
		Image:     live.ImagePath(),
	}
	if input.ItemName != nil {
		item.ItemName = *input.ItemName
	}
	if input.ItemPrice != nil {
		if input.ItemPrice.IsNegative() {
			return model.OrderItem{}, model.ErrNegativePrice
		}
		item.ItemPrice = input.ItemPrice.Round(2)
	}
	if input.Features != nil {
		item.Features = input.Features
	}
	if input.Image != nil {
		item.Image = utils.StringPtr(*input.Image)
	}
	return item, nil
}

func newOrder(userID uint, durationID, tableID *uint, items []model.OrderItem, taxRate decimal.Decimal) model.Order {
	order := model.Order{
		Reference:     NewOrderReference(),
		UserID:        userID,
		DurationID:    durationID,
		TableNumberID: tableID,
		Status:        model.OrderPending,
		Items:         items,
	}
	order.SumItems(taxRate)
	return order
}

func CreateOrder(db *gorm.DB, userID uint, input model.CreateOrderInput, taxRate decimal.Decimal) (*model.Order, error) {
	var order model.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		items := make([]model.OrderItem, 0, len(input.Items))
		for _, line := range input.Items {
			item, err := BuildOrderItem(tx, line)
			if err != nil {
				return err
			}
			items = append(items, item)
		}

		order = newOrder(userID, input.DurationID, input.TableNumberID, items, taxRate)
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Checkout converts every cart row of the user into one order and clears them.
func Checkout(db *gorm.DB, userID uint, input model.CheckoutInput, taxRate decimal.Decimal) (*model.Order, error) {
	var order model.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var carts []model.Cart
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			Order("id ASC").
			Find(&carts).Error; err != nil {
			return err
		}
		if len(carts) == 0 {
			return model.ErrCartEmpty
		}

		items := make([]model.OrderItem, 0, len(carts))
		ids := make([]uint, 0, len(carts))
		for _, cart := range carts {
			item, err := OrderItemFromCart(cart)
			if err != nil {
				return err
			}
			items = append(items, item)
			ids = append(ids, cart.ID)
		}

		order = newOrder(userID, input.DurationID, input.TableNumberID, items, taxRate)
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Cart{}, ids).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// TransitionOrder applies a status change under a row lock.
func TransitionOrder(db *gorm.DB, orderID uint, next model.OrderStatus) (*model.Order, error) {
	var order model.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&order, orderID).Error; err != nil {
			return err
		}
		if err := order.TransitionTo(next); err != nil {
			return err
		}
		return tx.Model(&order).Update("status", order.Status).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// FilterOrders applies the admin browser filters. Free text matches the total
// or the owner's name; the date bucket is ANDed on top.
func FilterOrders(db *gorm.DB, filter model.OrderFilter, now time.Time, weekStart time.Weekday) (*gorm.DB, error) {
	query := db.Model(&model.Order{}).Joins("LEFT JOIN users ON users.id = orders.user_id")

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := ContainsPattern(search)
		query = query.Where("(CAST(orders.total AS TEXT) LIKE ? OR users.name ILIKE ?)", pattern, pattern)
	}

	if filter.Status != "" {
		status := model.OrderStatus(strings.ToLower(filter.Status))
		if !status.Valid() {
			return nil, fmt.Errorf("unknown status %q", filter.Status)
		}
		query = query.Where("orders.status = ?", status)
	}

	dateRange, ok := utils.ParseDateRange(filter.Range)
	if !ok {
		return nil, fmt.Errorf("unknown date range %q", filter.Range)
	}
	if from, to, bounded := dateRange.Bounds(now, weekStart); bounded {
		query = query.Where("orders.created_at >= ? AND orders.created_at < ?", from, to)
	}

	return query, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ContainsPattern builds a LIKE pattern matching s anywhere, with wildcards in
// s taken literally.
func ContainsPattern(s string) string {
	return "%" + escapeLike(s) + "%"
}
