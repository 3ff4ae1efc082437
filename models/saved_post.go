package models

import "time"

// SavedPost 收藏记录，对应 saved_posts
// 唯一键: user_id + content_id
type SavedPost struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_user_content,priority:1" json:"user_id"`
	ContentID uint64    `gorm:"column:content_id;not null;uniqueIndex:uk_user_content,priority:2;index:idx_saved_posts_content" json:"content_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (SavedPost) TableName() string {
	return "saved_posts"
}
