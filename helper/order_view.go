package helper

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"venue_manager/config"
	"venue_manager/model"
	"venue_manager/utils"
)

type OrderItemView struct {
	model.OrderItem
	TotalPrice decimal.Decimal `json:"totalPrice"`
	ImageURL   string          `json:"imageUrl"`
}

type OrderView struct {
	model.Order
	Items             []OrderItemView `json:"items"`
	OrderType         string          `json:"orderType"`
	Tax               decimal.Decimal `json:"tax"`
	FirstItemImageURL string          `json:"firstItemImageUrl"`
	QRCode            string          `json:"qrCode,omitempty"`
}

type OrderSummaryView struct {
	model.Order
	OrderType string          `json:"orderType"`
	Tax       decimal.Decimal `json:"tax"`
	ItemCount int             `json:"itemCount"`
}

func CurrentImageOptions() model.ImageOptions {
	s := config.Current()
	return model.ImageOptions{BaseURL: s.PublicStorageURL, Placeholder: s.PlaceholderImage}
}

// BuildOrderView resolves each line's display image against the live catalog.
func BuildOrderView(db *gorm.DB, order model.Order, opts model.ImageOptions) (OrderView, error) {
	view := OrderView{
		Order:             order,
		Items:             make([]OrderItemView, 0, len(order.Items)),
		OrderType:         order.OrderType(),
		Tax:               order.Tax(),
		FirstItemImageURL: opts.Placeholder,
	}

	first, hasFirst := order.FirstItem()
	for _, item := range order.Items {
		live, err := LiveCatalogItem(db, item.ItemType, item.ItemID)
		if err != nil {
			return OrderView{}, err
		}
		url := item.DisplayImageURL(live, opts)
		view.Items = append(view.Items, OrderItemView{
			OrderItem:  item,
			TotalPrice: item.TotalPrice(),
			ImageURL:   url,
		})
		if hasFirst && item.ID == first.ID {
			view.FirstItemImageURL = url
		}
	}

	return view, nil
}

// AttachQRCode renders the order reference as a PNG data URL for the detail page.
func (v *OrderView) AttachQRCode() {
	if v.Reference == "" {
		return
	}
	qr, err := utils.QRCodeDataURL(v.Reference, 300)
	if err != nil {
		utils.Log.Warn("qr generation failed", zap.String("reference", v.Reference), zap.Error(err))
		return
	}
	v.QRCode = qr
}

// BuildOrderViews is BuildOrderView over a page of orders.
func BuildOrderViews(db *gorm.DB, orders []model.Order, opts model.ImageOptions) ([]OrderView, error) {
	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		view, err := BuildOrderView(db, order, opts)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func SummarizeOrders(orders []model.Order) []OrderSummaryView {
	rows := make([]OrderSummaryView, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, OrderSummaryView{
			Order:     order,
			OrderType: order.OrderType(),
			Tax:       order.Tax(),
			ItemCount: len(order.Items),
		})
	}
	return rows
}
