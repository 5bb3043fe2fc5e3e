package api

import "Clipstream/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler    *handler.UserHandler
	FollowHandler  *handler.FollowHandler
	VideoHandler   *handler.VideoHandler
	CommentHandler *handler.CommentHandler
	MediaHandler   *handler.MediaHandler
	AgentHandler   *handler.AgentHandler
	WSHandler      *handler.WsHandler
}
