package handler

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/pahana/bookshop-order-service/internal/events"
)

const (
	wsReadLimit  = 512
	wsPongWait   = 60 * time.Second
	wsPingPeriod = wsPongWait * 9 / 10
)

type EventHub interface {
	Add(conn events.Conn)
	Remove(conn events.Conn)
}

type WSHandler struct {
	logger   *slog.Logger
	hub      EventHub
	upgrader websocket.Upgrader
}

func NewWSHandler(logger *slog.Logger, hub EventHub, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		logger: logger.With(slog.String("handler", "ws")),
		hub:    hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || slices.Contains(allowedOrigins, origin)
			},
		},
	}
}

func (h *WSHandler) Init(r chi.Router) {
	r.Get("/ws", h.Subscribe)
}

// Subscribe открывает websocket с лентой событий заказов.
// @Summary      Лента событий заказов
// @Description  Websocket: сервер присылает JSON при создании, изменении и удалении заказа
// @Tags         orders
// @Success      101
// @Security     BearerAuth
// @Router       /orders/ws [get]
func (h *WSHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WarnContext(r.Context(), "websocket upgrade failed", slog.Any("error", err))
		return
	}

	h.hub.Add(conn)
	defer h.hub.Remove(conn)

	conn.SetReadLimit(wsReadLimit)
	conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	done := make(chan struct{})
	defer close(done)
	go h.ping(conn, done)

	// клиенту писать нечего, читаем только чтобы заметить закрытие
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("subscriber gone", slog.Any("error", err))
			}
			return
		}
	}
}

func (h *WSHandler) ping(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			// WriteControl можно вызывать параллельно с другими записями
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(time.Second)); err != nil {
				return
			}
		}
	}
}
