package handler

import (
	"Clipstream/internal/api/dto"
	"Clipstream/internal/pkg/llm"
	"Clipstream/internal/pkg/response"
	"Clipstream/internal/service"
	log "log/slog"

	"github.com/gin-gonic/gin"
)

type AgentHandler struct {
	textService llm.TextService
}

func NewAgentHandler(textService llm.TextService) *AgentHandler {
	return &AgentHandler{textService: textService}
}

// Chat 平台助手单轮问答
func (s *AgentHandler) Chat(c *gin.Context) {
	var chatDTO dto.AgentChatDTO
	err := c.ShouldBind(&chatDTO)
	if err != nil {
		response.Error(c, err)
		return
	}

	reply, err := s.textService.Chat(c.Request.Context(), chatDTO.Message)
	if err != nil {
		log.ErrorContext(c, "agent chat failed", "err", err)
		response.Error(c, service.ErrAssistantUnavailable)
		return
	}
	response.Success(c, &dto.AgentReplyDTO{Reply: reply})
}
