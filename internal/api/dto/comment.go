package dto

import "time"

// CreateCommentDTO 发表评论请求
type CreateCommentDTO struct {
	VideoID string `json:"video_id" binding:"required"`
	Text    string `json:"text" binding:"required" validate:"min=1,max=300"`
}

// CommentDTO 评论
type CommentDTO struct {
	ID        string    `json:"id"`
	VideoID   string    `json:"video_id"`
	UserID    string    `json:"user_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
