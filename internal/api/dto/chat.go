package dto

import "time"

// SendMessageReq 客户端经 WebSocket 发来的聊天消息
type SendMessageReq struct {
	Content string `json:"content"`
}

// ChatMessage 广播给所有在线连接的聊天事件
type ChatMessage struct {
	Type     string    `json:"type"` // receiveMessage
	SenderID string    `json:"sender_id"`
	Content  string    `json:"content"`
	SentAt   time.Time `json:"sent_at"`
}

// AgentChatDTO 平台助手请求
type AgentChatDTO struct {
	Message string `json:"message" binding:"required" validate:"min=1,max=1000"`
}

// AgentReplyDTO 平台助手回复
type AgentReplyDTO struct {
	Reply string `json:"reply"`
}
