package service

import (
	"Clipstream/internal/api/dto"
	log "log/slog"
	"sync"
)

const chatSendBuffer = 16

// ChatHub 进程内聊天连接注册表，消息广播给所有在线连接
type ChatHub struct {
	mu      sync.RWMutex
	clients map[string]chan *dto.ChatMessage
}

func NewChatHub() *ChatHub {
	return &ChatHub{
		clients: make(map[string]chan *dto.ChatMessage),
	}
}

// Register 注册一条连接，返回其接收通道
func (h *ChatHub) Register(connID string) <-chan *dto.ChatMessage {
	ch := make(chan *dto.ChatMessage, chatSendBuffer)

	h.mu.Lock()
	h.clients[connID] = ch
	h.mu.Unlock()

	log.Info("chat client registered", "connID", connID)
	return ch
}

// Unregister 注销连接并关闭其通道
func (h *ChatHub) Unregister(connID string) {
	h.mu.Lock()
	ch, ok := h.clients[connID]
	if ok {
		delete(h.clients, connID)
		close(ch)
	}
	h.mu.Unlock()

	if ok {
		log.Info("chat client unregistered", "connID", connID)
	}
}

// Broadcast 向所有在线连接各投递一份
// 发送端永不阻塞，接收缓冲已满的慢连接直接丢弃该条消息
func (h *ChatHub) Broadcast(msg *dto.ChatMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for connID, ch := range h.clients {
		select {
		case ch <- msg:
		default:
			log.Warn("chat client send buffer full, message dropped", "connID", connID)
		}
	}
}

// Count 当前在线连接数
func (h *ChatHub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
