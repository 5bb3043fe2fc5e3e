package handler

import (
	"Clipstream/internal/pkg/response"
	"Clipstream/internal/service"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	followSvc service.FollowService
}

func NewFollowHandler(followSvc service.FollowService) *FollowHandler {
	return &FollowHandler{followSvc: followSvc}
}

func (s *FollowHandler) Follow(c *gin.Context) {
	actorID := c.GetString("user_id")
	targetID := c.Param("user_id")
	if targetID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	err := s.followSvc.Follow(c.Request.Context(), actorID, targetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *FollowHandler) Unfollow(c *gin.Context) {
	actorID := c.GetString("user_id")
	targetID := c.Param("user_id")
	if targetID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	err := s.followSvc.Unfollow(c.Request.Context(), actorID, targetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *FollowHandler) GetFollowerCount(c *gin.Context) {
	userID := c.GetString("user_id")
	count, err := s.followSvc.GetFollowerCount(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]int64{"count": count})
}

func (s *FollowHandler) GetFollowingCount(c *gin.Context) {
	userID := c.GetString("user_id")
	count, err := s.followSvc.GetFollowingCount(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]int64{"count": count})
}
