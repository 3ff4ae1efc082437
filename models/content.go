package models

import (
	"time"

	"gorm.io/datatypes"
)

// ContentType 内容类型
const (
	ContentTypeTwitter = "twitter"
	ContentTypeYoutube = "youtube"
	ContentTypeArticle = "article"
	ContentTypeNote    = "note"
)

// Content 用户保存的链接或笔记
type Content struct {
	ID        uint64                      `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	UserID    uint64                      `gorm:"column:user_id;not null;index:idx_contents_user" json:"user_id"`
	Title     string                      `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Type      string                      `gorm:"column:type;type:varchar(16);not null" json:"type"`
	Link      string                      `gorm:"column:link;type:text" json:"link"`
	Tags      datatypes.JSONSlice[string] `gorm:"column:tags" json:"tags"`
	CreatedAt time.Time                   `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time                   `gorm:"column:updated_at" json:"updated_at"`
}

func (Content) TableName() string {
	return "contents"
}

func IsContentType(t string) bool {
	switch t {
	case ContentTypeTwitter, ContentTypeYoutube, ContentTypeArticle, ContentTypeNote:
		return true
	}
	return false
}
