package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/zoombxu/surplus/internal/pkg/auth"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = 54 * time.Second
)

// StreamHandler upgrades authenticated connections and streams live
// order and chat events until the client goes away.
type StreamHandler struct {
	facade   StreamFacade
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewStreamHandler constructs StreamHandler.
func NewStreamHandler(facade StreamFacade, logger *slog.Logger) *StreamHandler {
	return &StreamHandler{
		facade: facade,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browsers cannot set Authorization headers on websocket
			// dials; origin policy is enforced by the CORS layer.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Serve handles GET /api/ws and GET /api/admin/ws.
func (h *StreamHandler) Serve(c *gin.Context) {
	claims := CurrentClaims(c)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	sub := h.facade.Subscribe(claims.Subject, claims.Role == auth.RoleAdmin)
	defer h.facade.Unsubscribe(sub)
	defer conn.Close()

	done := make(chan struct{})
	go h.readLoop(conn, done)

	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case event, ok := <-sub.C:
			conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readLoop discards inbound frames; its only job is to notice the close.
func (h *StreamHandler) readLoop(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(wsPongWait))
		return nil
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
