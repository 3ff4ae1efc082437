package dao

import (
	"brainvault/models"
	"context"

	"gorm.io/gorm"
)

type ContentDAO struct {
	Repo[models.Content]
}

func NewContentDAO(db *gorm.DB) *ContentDAO {
	return &ContentDAO{Repo: NewRepo[models.Content](db)}
}

func (d *ContentDAO) WithTx(tx *gorm.DB) *ContentDAO {
	return NewContentDAO(tx)
}

// FindByUserID 用户的全部内容，按创建顺序
func (d *ContentDAO) FindByUserID(ctx context.Context, userID uint64) ([]*models.Content, error) {
	return d.FindAll(ctx, "id ASC", "user_id = ?", userID)
}

// FindOwned 按 id + 归属查询；非本人的内容与不存在无法区分
func (d *ContentDAO) FindOwned(ctx context.Context, id, userID uint64) (*models.Content, error) {
	return d.FindByWhere(ctx, "id = ? AND user_id = ?", id, userID)
}

// Save 覆盖更新
func (d *ContentDAO) Save(ctx context.Context, item *models.Content) error {
	return d.Db.WithContext(ctx).Save(item).Error
}

// DeleteOwned 按归属删除，返回影响行数
func (d *ContentDAO) DeleteOwned(ctx context.Context, id, userID uint64) (int64, error) {
	return d.Delete(ctx, "id = ? AND user_id = ?", id, userID)
}

// FindByIDs 根据 ID 列表查询内容
func (d *ContentDAO) FindByIDs(ctx context.Context, ids []uint64) ([]*models.Content, error) {
	if len(ids) == 0 {
		return []*models.Content{}, nil
	}
	var items []*models.Content
	err := d.Db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&items).Error
	return items, err
}
