package transport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"kortyPricing/internal/modules/pricing/application/usecase"
	"kortyPricing/internal/modules/pricing/domain"
	"kortyPricing/internal/modules/pricing/infrastructure"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// NewPricingWebsocketHandler serves /ws/pricing. Clients get the current
// per-club price bands on connect, then live pricing.updated broadcasts.
func NewPricingWebsocketHandler(
	hub *infrastructure.Hub,
	query *usecase.QueryUseCase,
	loc *time.Location,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			slog.Warn("ws upgrade failed", slog.String("remote", c.RealIP()), slog.Any("error", err))
			return err
		}

		client := infrastructure.NewClient(hub, conn, 8)
		hub.Attach(client)
		go client.WritePump()
		go client.ReadPump()

		if clubs, err := query.ListClubs(time.Now().In(loc)); err == nil {
			client.Send(&domain.Message{
				Topic:     domain.TopicPricingUpdated,
				Action:    "snapshot",
				Data:      clubs,
				Timestamp: time.Now().UTC(),
			})
		}
		return nil
	}
}
