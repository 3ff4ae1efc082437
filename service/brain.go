package service

import (
	"brainvault/dao"
	"brainvault/models"
	"brainvault/pkg/errs"
	"brainvault/pkg/snowflake"
	"context"
	"errors"

	"gorm.io/gorm"
)

var _ IBrainService = (*BrainService)(nil)

type IBrainService interface {
	CreateForUser(ctx context.Context, tx *gorm.DB, ownerID uint64) (*models.Brain, error)
	AppendReference(ctx context.Context, tx *gorm.DB, ownerID, contentID uint64) error
	SetPublic(ctx context.Context, ownerID uint64, public bool) error
	FetchForOwner(ctx context.Context, ownerID uint64) (*BrainView, error)
}

// BrainView Brain 及其按追加顺序解引用后的内容
type BrainView struct {
	Brain     *models.Brain
	Items     []*models.Content
	ShareHash string
}

type BrainService struct {
	BrainDAO     *dao.BrainDAO
	ContentDAO   *dao.ContentDAO
	ShareLinkDAO *dao.ShareLinkDAO
}

func (s *BrainService) brains(tx *gorm.DB) *dao.BrainDAO {
	if tx == nil {
		return s.BrainDAO
	}
	return s.BrainDAO.WithTx(tx)
}

// CreateForUser 注册时创建私有 Brain，已存在则直接返回
func (s *BrainService) CreateForUser(ctx context.Context, tx *gorm.DB, ownerID uint64) (*models.Brain, error) {
	return s.brains(tx).FirstOrCreate(ctx, ownerID, snowflake.GenID())
}

// AppendReference 将内容追加到用户的 Brain 末尾
func (s *BrainService) AppendReference(ctx context.Context, tx *gorm.DB, ownerID, contentID uint64) error {
	brain, err := s.CreateForUser(ctx, tx, ownerID)
	if err != nil {
		return err
	}
	return s.brains(tx).AppendEntry(ctx, brain.ID, contentID)
}

// SetPublic 仅更新公开标记，分享令牌由 ShareService 维护
func (s *BrainService) SetPublic(ctx context.Context, ownerID uint64, public bool) error {
	return s.BrainDAO.SetPublic(ctx, ownerID, public)
}

// FetchForOwner 读取 Brain，已删除的内容引用会被跳过
func (s *BrainService) FetchForOwner(ctx context.Context, ownerID uint64) (*BrainView, error) {
	brain, err := s.BrainDAO.FindByUserID(ctx, ownerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NotFound("brain", nil)
	}
	if err != nil {
		return nil, err
	}

	ids, err := s.BrainDAO.ContentIDs(ctx, brain.ID)
	if err != nil {
		return nil, err
	}
	items, err := s.ContentDAO.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint64]*models.Content, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	view := &BrainView{Brain: brain, Items: make([]*models.Content, 0, len(ids))}
	for _, id := range ids {
		if item, ok := byID[id]; ok {
			view.Items = append(view.Items, item)
		}
	}

	link, err := s.ShareLinkDAO.FindByUserID(ctx, ownerID)
	switch {
	case err == nil:
		view.ShareHash = link.Hash
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}
	return view, nil
}
