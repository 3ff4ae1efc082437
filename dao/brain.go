package dao

import (
	"brainvault/models"
	"context"

	"gorm.io/gorm"
)

type BrainDAO struct {
	Repo[models.Brain]
}

func NewBrainDAO(db *gorm.DB) *BrainDAO {
	return &BrainDAO{Repo: NewRepo[models.Brain](db)}
}

func (d *BrainDAO) WithTx(tx *gorm.DB) *BrainDAO {
	return NewBrainDAO(tx)
}

func (d *BrainDAO) FindByUserID(ctx context.Context, userID uint64) (*models.Brain, error) {
	return d.FindByWhere(ctx, "user_id = ?", userID)
}

// FirstOrCreate 按 user_id 获取，不存在则以 id 创建
func (d *BrainDAO) FirstOrCreate(ctx context.Context, userID, id uint64) (*models.Brain, error) {
	var brain models.Brain
	err := d.Db.WithContext(ctx).
		Where(models.Brain{UserID: userID}).
		Attrs(models.Brain{ID: id}).
		FirstOrCreate(&brain).Error
	if err != nil {
		return nil, err
	}
	return &brain, nil
}

// SetPublic 更新公开状态
func (d *BrainDAO) SetPublic(ctx context.Context, userID uint64, public bool) error {
	return d.Db.WithContext(ctx).
		Model(&models.Brain{}).
		Where("user_id = ?", userID).
		Update("is_public", public).Error
}

// AppendEntry 追加内容引用
func (d *BrainDAO) AppendEntry(ctx context.Context, brainID, contentID uint64) error {
	return d.Db.WithContext(ctx).Create(&models.BrainEntry{
		BrainID:   brainID,
		ContentID: contentID,
	}).Error
}

// ContentIDs 按追加顺序返回引用的内容 ID
func (d *BrainDAO) ContentIDs(ctx context.Context, brainID uint64) ([]uint64, error) {
	var ids []uint64
	err := d.Db.WithContext(ctx).
		Model(&models.BrainEntry{}).
		Where("brain_id = ?", brainID).
		Order("id ASC").
		Pluck("content_id", &ids).Error
	return ids, err
}

// PublicOwners 返回给定用户中 Brain 已公开的用户集合
func (d *BrainDAO) PublicOwners(ctx context.Context, userIDs []uint64) (map[uint64]bool, error) {
	out := make(map[uint64]bool)
	if len(userIDs) == 0 {
		return out, nil
	}
	var ids []uint64
	err := d.Db.WithContext(ctx).
		Model(&models.Brain{}).
		Where("user_id IN ? AND is_public = ?", userIDs, true).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}
