package model

import (
	"time"
)

// User 用户文档
type User struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"` // bcrypt 哈希
	Followers []string  `bson:"followers" json:"followers"` // 粉丝 UserID 集合
	Following []string  `bson:"following" json:"following"` // 关注 UserID 集合
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
