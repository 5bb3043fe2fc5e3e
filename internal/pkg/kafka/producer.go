package kafka

import (
	"Clipstream/internal/api/config"
	"context"
	log "log/slog"
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

const (
	EventTypeLike    = "like"
	EventTypeUnlike  = "unlike"
	EventTypeComment = "comment"
)

// EngagementEvent 互动事件，服务侧写入 Kafka，由消费组回刷计数
type EngagementEvent struct {
	Type      string    `json:"type"`
	VideoID   string    `json:"video_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// EventProducer 互动事件生产者，失败不反噬业务主流程
type EventProducer interface {
	PublishEngagement(ctx context.Context, event *EngagementEvent)
}

type eventProducerImpl struct {
	producer sarama.SyncProducer
	topic    string
}

func NewEventProducer(cfg *config.Config) (EventProducer, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, saramaCfg)
	if err != nil {
		return nil, err
	}

	return &eventProducerImpl{
		producer: producer,
		topic:    cfg.KafkaConsumer.Topic,
	}, nil
}

func (s *eventProducerImpl) PublishEngagement(ctx context.Context, event *EngagementEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.ErrorContext(ctx, "marshal engagement event error", "err", err)
		return
	}

	msg := &sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(event.VideoID),
		Value: sarama.ByteEncoder(data),
	}

	if _, _, err = s.producer.SendMessage(msg); err != nil {
		log.ErrorContext(ctx, "publish engagement event error", "type", event.Type, "videoID", event.VideoID, "err", err)
	}
}
