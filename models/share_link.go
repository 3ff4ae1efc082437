package models

import "time"

// ShareLink 公开分享令牌，每个用户至多一条（user_id 唯一）
type ShareLink struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Hash      string    `gorm:"column:hash;type:varchar(64);not null;uniqueIndex" json:"hash"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (ShareLink) TableName() string {
	return "share_links"
}
