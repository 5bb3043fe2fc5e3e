package llm

import (
	"Clipstream/internal/pkg/consts"
	"context"
	log "log/slog"
	"strings"
	"time"
)

const fetchTimeout = 15 * time.Second

// TextService 文本生成与审核的统一出口
// 生成失败与审核不通过走各自独立的通道：transport 错误通过 error 返回，
// 审核结论通过 verdict 返回，两者不得混淆
type TextService interface {
	GenerateCaption(ctx context.Context, description string) (string, error)
	GenerateHashtags(ctx context.Context, description string) (string, error)
	ClassifyComment(ctx context.Context, text string) (string, error)
	Chat(ctx context.Context, message string) (string, error)
}

type textServiceImpl struct{}

func NewTextService() TextService {
	return &textServiceImpl{}
}

// GenerateCaption 生成短视频文案
func (s *textServiceImpl) GenerateCaption(ctx context.Context, description string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	resp, err := fetchModel(ctx, captionPrompt, description, 0.8)
	if err != nil {
		log.ErrorContext(ctx, "AI大模型请求失败", "err", err)
		return "", err
	}
	return firstChoice(resp)
}

// GenerateHashtags 生成话题标签
func (s *textServiceImpl) GenerateHashtags(ctx context.Context, description string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	resp, err := fetchModel(ctx, hashtagPrompt, description, 0.8)
	if err != nil {
		log.ErrorContext(ctx, "AI大模型请求失败", "err", err)
		return "", err
	}
	return firstChoice(resp)
}

// ClassifyComment 评论内容审核，返回 SAFE / ABUSIVE
func (s *textServiceImpl) ClassifyComment(ctx context.Context, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	resp, err := fetchModel(ctx, commentSafePrompt, text, 0.1)
	if err != nil {
		log.ErrorContext(ctx, "AI大模型请求失败", "err", err)
		return "", err
	}

	content, err := firstChoice(resp)
	if err != nil {
		return "", err
	}

	verdict := strings.ToUpper(strings.TrimSpace(content))
	if verdict == consts.VerdictSafe {
		return consts.VerdictSafe, nil
	}
	// 模型输出不是严格的 SAFE 时一律按 ABUSIVE 处理
	return consts.VerdictAbusive, nil
}

// Chat 平台助手单轮对话
func (s *textServiceImpl) Chat(ctx context.Context, message string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	resp, err := fetchModel(ctx, chatPrompt, message, 0.7)
	if err != nil {
		log.ErrorContext(ctx, "AI大模型请求失败", "err", err)
		return "", err
	}
	return firstChoice(resp)
}
