package helper

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"venue_manager/constants"
	"venue_manager/model"
)

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

func NewOrderEvent(eventType string, order model.Order) model.OrderEvent {
	return model.OrderEvent{
		Type:      eventType,
		OrderID:   order.ID,
		Reference: order.Reference,
		Status:    order.Status,
		Total:     order.Total,
		At:        time.Now(),
	}
}

// PublishOrderEvent is a no-op without redis.
func PublishOrderEvent(ctx context.Context, client *redis.Client, event model.OrderEvent) error {
	if client == nil {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}
	if err := client.Publish(ctx, constants.ORDER_FEED_CHANNEL, payload).Err(); err != nil {
		return fmt.Errorf("publish order event: %w", err)
	}
	return nil
}

func SubscribeOrderFeed(ctx context.Context, client *redis.Client) *redis.PubSub {
	return client.Subscribe(ctx, constants.ORDER_FEED_CHANNEL)
}
