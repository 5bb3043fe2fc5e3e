package service

import (
	"Clipstream/internal/api/dto"
	"Clipstream/internal/model"
	"Clipstream/internal/pkg/consts"
	"Clipstream/internal/pkg/kafka"
	"Clipstream/internal/pkg/llm"
	"Clipstream/internal/repository"
	"context"
	log "log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jinzhu/copier"
	"golang.org/x/sync/errgroup"
)

type VideoService interface {
	Upload(ctx context.Context, userID string, req *dto.UploadVideoDTO) (*dto.VideoDTO, error)
	GetFeed(ctx context.Context, page int) ([]*dto.VideoDTO, error)
	ToggleLike(ctx context.Context, videoID, userID string) (*dto.VideoDTO, error)
}

type VideoServiceImpl struct {
	videoRepo   repository.VideoRepo
	userRepo    repository.UserRepo
	textService llm.TextService
	producer    kafka.EventProducer
	httpClient  *resty.Client
}

func NewVideoService(
	videoRepo repository.VideoRepo,
	userRepo repository.UserRepo,
	textService llm.TextService,
	producer kafka.EventProducer,
) VideoService {
	return &VideoServiceImpl{
		videoRepo:   videoRepo,
		userRepo:    userRepo,
		textService: textService,
		producer:    producer,
		httpClient:  resty.New().SetTimeout(3 * time.Second),
	}
}

// Upload 上传视频
// 文案和标签两路生成并发执行，任一失败则整个上传失败，不落半成品视频
func (s *VideoServiceImpl) Upload(ctx context.Context, userID string, req *dto.UploadVideoDTO) (*dto.VideoDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	go s.probeMediaURL(req.URL)

	var caption, hashtags string
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var genErr error
		caption, genErr = s.textService.GenerateCaption(gCtx, req.Description)
		return genErr
	})
	g.Go(func() error {
		var genErr error
		hashtags, genErr = s.textService.GenerateHashtags(gCtx, req.Description)
		return genErr
	})
	if err = g.Wait(); err != nil {
		log.ErrorContext(ctx, "video enrichment failed", "userID", userID, "err", err)
		return nil, ErrEnrichmentFailed
	}

	video := &model.Video{
		UserID:    userID,
		URL:       req.URL,
		Caption:   caption,
		Hashtags:  hashtags,
		CreatedAt: time.Now(),
	}
	if err = s.videoRepo.CreateVideo(ctx, video); err != nil {
		return nil, err
	}

	log.InfoContext(ctx, "video uploaded", "videoID", video.ID, "userID", userID)
	return s.toVideoDTO(video), nil
}

// GetFeed 按创建时间降序的固定 5 条翻页
// 偏移翻页在头部有新插入时后页会整体后移，属于当前接受的语义
func (s *VideoServiceImpl) GetFeed(ctx context.Context, page int) ([]*dto.VideoDTO, error) {
	if page < 1 {
		return nil, ErrParamInvalid
	}

	skip := int64(page-1) * consts.FeedPageSize
	videos, err := s.videoRepo.ListFeed(ctx, skip, consts.FeedPageSize)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.VideoDTO, 0, len(videos))
	for _, v := range videos {
		res = append(res, s.toVideoDTO(v))
	}
	return res, nil
}

// ToggleLike 点赞翻转，读改写在存储层的单文档原子更新内完成
func (s *VideoServiceImpl) ToggleLike(ctx context.Context, videoID, userID string) (*dto.VideoDTO, error) {
	video, err := s.videoRepo.ToggleLike(ctx, videoID, userID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, ErrVideoNotFound
	}

	eventType := kafka.EventTypeUnlike
	if containsUser(video.Likes, userID) {
		eventType = kafka.EventTypeLike
	}
	s.producer.PublishEngagement(ctx, &kafka.EngagementEvent{
		Type:      eventType,
		VideoID:   videoID,
		UserID:    userID,
		CreatedAt: time.Now(),
	})

	return s.toVideoDTO(video), nil
}

// probeMediaURL 媒体地址可达性探测，只告警不阻断上传
func (s *VideoServiceImpl) probeMediaURL(url string) {
	resp, err := s.httpClient.R().Head(url)
	if err != nil {
		log.Warn("media url probe failed", "url", url, "err", err)
		return
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		log.Warn("media url probe returned error status", "url", url, "status", resp.StatusCode())
	}
}

func (s *VideoServiceImpl) toVideoDTO(video *model.Video) *dto.VideoDTO {
	out := &dto.VideoDTO{}
	_ = copier.Copy(out, video)
	out.UserID = video.UserID
	out.LikeCount = len(video.Likes)
	if out.Likes == nil {
		out.Likes = []string{}
	}
	return out
}

func containsUser(ids []string, userID string) bool {
	for _, id := range ids {
		if id == userID {
			return true
		}
	}
	return false
}
