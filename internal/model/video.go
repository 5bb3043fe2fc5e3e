package model

import (
	"time"
)

// Video 视频文档
type Video struct {
	ID       string   `bson:"_id,omitempty" json:"id"`
	UserID   string   `bson:"user_id" json:"userId"`
	URL      string   `bson:"url" json:"url"`
	Likes    []string `bson:"likes" json:"likes"` // 点赞 UserID 集合
	Caption  string   `bson:"caption" json:"caption"`
	Hashtags string   `bson:"hashtags" json:"hashtags"`
	// CreatedAt 创建时写入一次，之后不可变，是视频流的排序键
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
