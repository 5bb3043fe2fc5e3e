package handler

import (
	"Clipstream/internal/api/dto"
	"Clipstream/internal/pkg/response"
	"Clipstream/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoSvc service.VideoService
}

func NewVideoHandler(videoSvc service.VideoService) *VideoHandler {
	return &VideoHandler{videoSvc: videoSvc}
}

func (s *VideoHandler) Upload(c *gin.Context) {
	userID := c.GetString("user_id")

	var uploadDTO dto.UploadVideoDTO
	err := c.ShouldBind(&uploadDTO)
	if err != nil {
		response.Error(c, err)
		return
	}

	video, err := s.videoSvc.Upload(c.Request.Context(), userID, &uploadDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, video)
}

func (s *VideoHandler) GetFeed(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	videos, err := s.videoSvc.GetFeed(c.Request.Context(), page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, videos)
}

func (s *VideoHandler) ToggleLike(c *gin.Context) {
	userID := c.GetString("user_id")
	videoID := c.Param("video_id")
	if videoID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	video, err := s.videoSvc.ToggleLike(c.Request.Context(), videoID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, video)
}
