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
	"time"

	"github.com/jinzhu/copier"
)

type CommentService interface {
	PostComment(ctx context.Context, userID string, req *dto.CreateCommentDTO) (*dto.CommentDTO, error)
	ListComments(ctx context.Context, videoID string, page int) ([]*dto.CommentDTO, error)
}

type CommentServiceImpl struct {
	commentRepo repository.CommentRepo
	videoRepo   repository.VideoRepo
	textService llm.TextService
	producer    kafka.EventProducer
}

func NewCommentService(
	commentRepo repository.CommentRepo,
	videoRepo repository.VideoRepo,
	textService llm.TextService,
	producer kafka.EventProducer,
) CommentService {
	return &CommentServiceImpl{
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
		textService: textService,
		producer:    producer,
	}
}

// PostComment 发表评论
// 审核失败关闭放行：审核服务本身不可用时拒绝写入，与判定违规区分开
func (s *CommentServiceImpl) PostComment(ctx context.Context, userID string, req *dto.CreateCommentDTO) (*dto.CommentDTO, error) {
	video, err := s.videoRepo.GetVideoByID(ctx, req.VideoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, ErrVideoNotFound
	}

	verdict, err := s.textService.ClassifyComment(ctx, req.Text)
	if err != nil {
		log.ErrorContext(ctx, "comment moderation unavailable", "videoID", req.VideoID, "err", err)
		return nil, ErrModerationUnavailable
	}
	if verdict != consts.VerdictSafe {
		log.InfoContext(ctx, "comment rejected by moderation", "videoID", req.VideoID, "userID", userID)
		return nil, ErrCommentRejected
	}

	comment := &model.Comment{
		VideoID:   req.VideoID,
		UserID:    userID,
		Text:      req.Text,
		CreatedAt: time.Now(),
	}
	if err = s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	s.producer.PublishEngagement(ctx, &kafka.EngagementEvent{
		Type:      kafka.EventTypeComment,
		VideoID:   req.VideoID,
		UserID:    userID,
		CreatedAt: comment.CreatedAt,
	})

	return s.toCommentDTO(comment), nil
}

// ListComments 按时间倒序翻页返回某视频下的评论
func (s *CommentServiceImpl) ListComments(ctx context.Context, videoID string, page int) ([]*dto.CommentDTO, error) {
	if page < 1 {
		return nil, ErrParamInvalid
	}

	video, err := s.videoRepo.GetVideoByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, ErrVideoNotFound
	}

	skip := int64(page-1) * consts.FeedPageSize
	comments, err := s.commentRepo.ListByVideo(ctx, videoID, skip, consts.FeedPageSize)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		res = append(res, s.toCommentDTO(c))
	}
	return res, nil
}

func (s *CommentServiceImpl) toCommentDTO(comment *model.Comment) *dto.CommentDTO {
	out := &dto.CommentDTO{}
	_ = copier.Copy(out, comment)
	return out
}
