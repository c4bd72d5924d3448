package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/aliiaycicek/My-Portfolio/internal/http/handlers/common"
	"github.com/aliiaycicek/My-Portfolio/internal/http/middleware"
	"github.com/aliiaycicek/My-Portfolio/internal/logger"
	"github.com/aliiaycicek/My-Portfolio/internal/ws"
)

// WSHandler отвечает за установку WebSocket соединений.
type WSHandler struct {
	hub      *ws.Hub
	upgrader websocket.Upgrader
}

// NewWSHandler создаёт новый хэндлер. Пустой allowedOrigins разрешает любой origin.
func NewWSHandler(hub *ws.Hub, allowedOrigins []string) *WSHandler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}

	return &WSHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" || len(allowed) == 0 {
					return true
				}
				if _, ok := allowed["*"]; ok {
					return true
				}
				_, ok := allowed[origin]
				return ok
			},
		},
	}
}

// Handle обслуживает GET /api/ws.
func (h *WSHandler) Handle(c *gin.Context) {
	if !websocket.IsWebSocketUpgrade(c.Request) {
		common.RespondBadRequest(c, "ожидается websocket соединение")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade уже отправил ответ с ошибкой
		logger.L().WithError(err).Warn("ws: не удалось установить соединение")
		return
	}

	client := ws.NewClient(conn, h.hub)
	h.hub.Register(client)
	logger.L().WithFields(logrus.Fields{
		"client":     client.ID().String(),
		"request_id": c.GetString(middleware.ContextRequestIDKey),
	}).Info("ws: подписка на изменения")

	client.Run(c.Request.Context())
}
