package dto

import "time"

// UploadVideoDTO 上传视频请求
type UploadVideoDTO struct {
	URL         string `json:"url" binding:"required" validate:"url"`
	Description string `json:"description" binding:"required" validate:"min=1,max=500"`
}

// VideoDTO 视频
type VideoDTO struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	URL       string    `json:"url"`
	Likes     []string  `json:"likes"`
	LikeCount int       `json:"like_count"`
	Caption   string    `json:"caption"`
	Hashtags  string    `json:"hashtags"`
	CreatedAt time.Time `json:"created_at"`
}

// PresignUploadDTO 预签名直传请求
type PresignUploadDTO struct {
	FileName string `json:"file_name" binding:"required"`
}

// PresignUploadResultDTO 预签名直传结果
type PresignUploadResultDTO struct {
	UploadURL  string `json:"upload_url"`
	ObjectName string `json:"object_name"`
	PublicURL  string `json:"public_url"`
}
