package model

import (
	"time"
)

// Comment 评论文档，仅在审核通过后创建，之后不再变更
type Comment struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	VideoID   string    `bson:"video_id" json:"videoId"`
	UserID    string    `bson:"user_id" json:"userId"`
	Text      string    `bson:"text" json:"text"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
