package handler

import (
	"Clipstream/internal/api/dto"
	"Clipstream/internal/pkg/response"
	"Clipstream/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{commentSvc: commentSvc}
}

func (s *CommentHandler) Create(c *gin.Context) {
	userID := c.GetString("user_id")

	var createDTO dto.CreateCommentDTO
	err := c.ShouldBind(&createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}

	comment, err := s.commentSvc.PostComment(c.Request.Context(), userID, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

func (s *CommentHandler) List(c *gin.Context) {
	videoID := c.Param("video_id")
	if videoID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	comments, err := s.commentSvc.ListComments(c.Request.Context(), videoID, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}
