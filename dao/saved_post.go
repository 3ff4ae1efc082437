package dao

import (
	"brainvault/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SavedPostDAO struct {
	Repo[models.SavedPost]
}

func NewSavedPostDAO(db *gorm.DB) *SavedPostDAO {
	return &SavedPostDAO{Repo: NewRepo[models.SavedPost](db)}
}

// Insert 依赖 uk_user_content 唯一键忽略重复插入，返回是否新建
func (d *SavedPostDAO) Insert(ctx context.Context, userID, contentID uint64) (bool, error) {
	res := d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "content_id"}},
			DoNothing: true,
		}).
		Create(&models.SavedPost{UserID: userID, ContentID: contentID})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// Remove 取消收藏
func (d *SavedPostDAO) Remove(ctx context.Context, userID, contentID uint64) error {
	_, err := d.Delete(ctx, "user_id = ? AND content_id = ?", userID, contentID)
	return err
}

// ListByUser 用户收藏列表，最新在前
func (d *SavedPostDAO) ListByUser(ctx context.Context, userID uint64) ([]*models.SavedPost, error) {
	return d.FindAll(ctx, "id DESC", "user_id = ?", userID)
}
