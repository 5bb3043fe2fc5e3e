package kafka

import (
	"Clipstream/internal/pkg/consts"
	"Clipstream/internal/pkg/redis"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// EngagementHandler 消费互动事件并回刷 Redis 计数
type EngagementHandler struct{}

func NewEngagementHandler() *EngagementHandler {
	return &EngagementHandler{}
}

func (s *EngagementHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("engagement consumer setup")
	return nil
}

func (s *EngagementHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("engagement consumer cleanup")
	return nil
}

func (s *EngagementHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-engagement consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-engagement process batch error", "err", err)
		return err
	}
	return nil
}

func (s *EngagementHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var event EngagementEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return errors.Wrap(err, "unmarshal engagement event")
	}

	switch event.Type {
	case EventTypeLike:
		return s.bumpCount(ctx, consts.VideoLikeCountKey+event.VideoID, 1)
	case EventTypeUnlike:
		return s.bumpCount(ctx, consts.VideoLikeCountKey+event.VideoID, -1)
	case EventTypeComment:
		return s.bumpCount(ctx, consts.VideoCommentCountKey+event.VideoID, 1)
	default:
		log.WarnContext(ctx, "unknown engagement event type", "type", event.Type)
		return nil
	}
}

func (s *EngagementHandler) bumpCount(ctx context.Context, key string, delta int64) error {
	if err := redis.IncrBy(ctx, key, delta); err != nil {
		return errors.Wrapf(err, "bump count %s", key)
	}
	return nil
}
