package llm

import (
	"Clipstream/internal/api/config"
	log "log/slog"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

var llmClient llms.Model

var captionPrompt string
var hashtagPrompt string
var commentSafePrompt string
var chatPrompt string

func InitLLM() error {
	cfg := config.Cfg.LLM

	llm, err := openai.New(
		openai.WithModel(cfg.TextModel),
		openai.WithToken(cfg.ApiKey),
		openai.WithBaseURL(cfg.URL),
	)

	if err != nil {
		log.Error("AI大模型初始化失败", "err", err)
		return err
	}

	llmClient = llm

	// 从prompt txt文件中读取prompt
	captionPrompt = readPrompt(cfg.PromptsPath.Caption)
	hashtagPrompt = readPrompt(cfg.PromptsPath.Hashtag)
	commentSafePrompt = readPrompt(cfg.PromptsPath.CommentSafe)
	chatPrompt = readPrompt(cfg.PromptsPath.Chat)

	return nil
}
