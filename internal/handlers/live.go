package handlers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/coder/websocket"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/cardshow/internal/live"
)

// WriteTimeout bounds a single websocket write.
const WriteTimeout = 10 * time.Second

// Subscriptions hands out live fragment subscriptions.
type Subscriptions interface {
	Subscribe() *live.Subscriber
	Unsubscribe(*live.Subscriber)
}

// LiveHandler streams pushed HTML fragments over websockets.
type LiveHandler struct {
	hub Subscriptions
}

// NewLiveHandler creates a new LiveHandler.
func NewLiveHandler(hub Subscriptions) *LiveHandler {
	return &LiveHandler{hub: hub}
}

// Stream upgrades the request to a websocket and forwards every fragment
// broadcast on the hub until either side goes away. Clients never send
// messages, so incoming data frames close the connection.
func (h *LiveHandler) Stream(c echo.Context) error {
	conn, err := websocket.Accept(c.Response(), c.Request(), nil)
	if err != nil {
		// Accept has already written the error response.
		slog.Warn("Failed to upgrade connection to WebSocket", "error", err)
		return nil
	}
	defer conn.CloseNow()

	sub := h.hub.Subscribe()
	if sub == nil {
		conn.Close(websocket.StatusGoingAway, "server shutting down")
		return nil
	}
	defer h.hub.Unsubscribe(sub)

	ctx := conn.CloseRead(c.Request().Context())
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-sub.Send:
			if !ok {
				conn.Close(websocket.StatusGoingAway, "stream closed")
				return nil
			}
			if err := write(ctx, conn, msg); err != nil {
				if !errors.Is(err, context.Canceled) {
					slog.Warn("WebSocket write error", "error", err)
				}
				return nil
			}
		}
	}
}

func write(ctx context.Context, conn *websocket.Conn, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, WriteTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, msg)
}
