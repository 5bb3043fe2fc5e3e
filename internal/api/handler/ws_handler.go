package handler

import (
	"Clipstream/internal/api/dto"
	"Clipstream/internal/pkg/response"
	"Clipstream/internal/pkg/security"
	"Clipstream/internal/service"
	log "log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WsHandler struct {
	hub *service.ChatHub
}

func NewWsHandler(hub *service.ChatHub) *WsHandler {
	return &WsHandler{hub: hub}
}

func (s *WsHandler) Connect(c *gin.Context) {
	// 鉴权
	token := c.Query("token")
	if token == "" {
		response.Error(c, service.UnauthorizedError)
		return
	}
	claims, err := security.ValidateToken(token)
	if err != nil {
		log.Warn("WS 鉴权失败", "err", err)
		response.Error(c, service.UnauthorizedError)
		return
	}
	userID := claims.UserID

	// 升级 Websocket
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("WS 协议升级失败", "err", err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	// 同一用户可开多条连接，注册以连接为粒度
	connID := uuid.NewString()
	recvCh := s.hub.Register(connID)
	defer s.hub.Unregister(connID)

	log.Info("用户 WS 连接已建立", "userID", userID, "connID", connID)

	stopChan := make(chan struct{})

	// 读循环：收客户端消息并广播，连接断开时退出
	go func() {
		defer close(stopChan)
		for {
			var req dto.SendMessageReq
			if err := conn.ReadJSON(&req); err != nil {
				return
			}
			if req.Content == "" {
				continue
			}
			s.hub.Broadcast(&dto.ChatMessage{
				Type:     "receiveMessage",
				SenderID: userID,
				Content:  req.Content,
				SentAt:   time.Now(),
			})
		}
	}()

	// 写循环：把广播消息推送至客户端
	for {
		select {
		case msg, ok := <-recvCh:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteJSON(msg); err != nil {
				log.Error("WS 推送失败", "userID", userID, "err", err)
				return
			}
		case <-stopChan:
			log.Info("用户 WS 连接已断开", "userID", userID, "connID", connID)
			return
		}
	}
}
