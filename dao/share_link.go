package dao

import (
	"brainvault/models"
	"context"

	"gorm.io/gorm"
)

type ShareLinkDAO struct {
	Repo[models.ShareLink]
}

func NewShareLinkDAO(db *gorm.DB) *ShareLinkDAO {
	return &ShareLinkDAO{Repo: NewRepo[models.ShareLink](db)}
}

func (d *ShareLinkDAO) FindByUserID(ctx context.Context, userID uint64) (*models.ShareLink, error) {
	return d.FindByWhere(ctx, "user_id = ?", userID)
}

func (d *ShareLinkDAO) FindByHash(ctx context.Context, hash string) (*models.ShareLink, error) {
	return d.FindByWhere(ctx, "hash = ?", hash)
}

// DeleteByUserID 删除用户的分享链接，不存在时不报错
func (d *ShareLinkDAO) DeleteByUserID(ctx context.Context, userID uint64) (int64, error) {
	return d.Delete(ctx, "user_id = ?", userID)
}
