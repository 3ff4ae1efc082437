package models

import "time"

// Brain 每个用户唯一的内容集合
type Brain struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex" json:"user_id"`
	IsPublic  bool      `gorm:"column:is_public;not null;default:false" json:"is_public"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Brain) TableName() string {
	return "brains"
}

// BrainEntry Brain 中的内容引用，自增 ID 即追加顺序
// 删除内容时不清理引用，读取时过滤
type BrainEntry struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	BrainID   uint64    `gorm:"column:brain_id;not null;index:idx_brain_entries_brain" json:"brain_id"`
	ContentID uint64    `gorm:"column:content_id;not null;index:idx_brain_entries_content" json:"content_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (BrainEntry) TableName() string {
	return "brain_entries"
}
