package handler

import (
	"context"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"venue_manager/database"
	"venue_manager/helper"
	"venue_manager/utils"
)

func UpgradeOrderFeed(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	return c.Next()
}

// OrderFeed relays order events from redis to an admin websocket until either
// side closes.
func OrderFeed(conn *websocket.Conn) {
	defer conn.Close()

	if database.Redis == nil {
		_ = conn.WriteJSON(fiber.Map{"error": "order feed unavailable"})
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubsub := helper.SubscribeOrderFeed(ctx, database.Redis)
	defer pubsub.Close()

	// the client never sends; a read error means it went away
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	channel := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-channel:
			if !ok {
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				utils.Log.Debug("order feed client dropped", zap.Error(err))
				return
			}
		}
	}
}
