package job

import (
	"Clipstream/internal/pkg/consts"
	"Clipstream/internal/pkg/logger"
	"Clipstream/internal/pkg/redis"
	"Clipstream/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// PlatformMetricJob 定时回刷平台级的用户数和视频数快照
type PlatformMetricJob struct {
	userRepo  repository.UserRepo
	videoRepo repository.VideoRepo
}

func NewPlatformMetricJob(userRepo repository.UserRepo, videoRepo repository.VideoRepo) *PlatformMetricJob {
	return &PlatformMetricJob{
		userRepo:  userRepo,
		videoRepo: videoRepo,
	}
}

func (s *PlatformMetricJob) Run() {
	traceID := "job-platform-metric-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	userCount, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		log.ErrorContext(ctx, "count users error", "err", err)
		return
	}

	videoCount, err := s.videoRepo.CountVideos(ctx)
	if err != nil {
		log.ErrorContext(ctx, "count videos error", "err", err)
		return
	}

	if err = redis.SetWithExpiration(ctx, consts.PlatformUserCountKey, userCount, 2*time.Hour); err != nil {
		log.ErrorContext(ctx, "save platform user count error", "err", err)
	}
	if err = redis.SetWithExpiration(ctx, consts.PlatformVideoCountKey, videoCount, 2*time.Hour); err != nil {
		log.ErrorContext(ctx, "save platform video count error", "err", err)
	}

	log.InfoContext(ctx, "PlatformMetricJob finished", "user_count", userCount, "video_count", videoCount)
}
