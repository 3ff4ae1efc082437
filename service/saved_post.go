package service

import (
	"brainvault/dao"
	"brainvault/models"
	"brainvault/pkg/errs"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var _ ISavedPostService = (*SavedPostService)(nil)

type ISavedPostService interface {
	Save(ctx context.Context, userID, contentID uint64) (bool, error)
	Unsave(ctx context.Context, userID, contentID uint64) error
	List(ctx context.Context, userID uint64) ([]*SavedPostView, error)
}

// SavedPostView 收藏记录及其引用的内容
type SavedPostView struct {
	ID        uint64
	ContentID uint64
	CreatedAt time.Time
	Content   *models.Content
}

type SavedPostService struct {
	SavedPostDAO *dao.SavedPostDAO
	ContentDAO   *dao.ContentDAO
	BrainDAO     *dao.BrainDAO
}

// Save 收藏自己的内容或已公开 Brain 中的内容，重复收藏返回 false 且不报错
// 他人未公开的内容与不存在无法区分
func (s *SavedPostService) Save(ctx context.Context, userID, contentID uint64) (bool, error) {
	item, err := s.ContentDAO.FindById(ctx, contentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, errs.NotFound("content", contentID)
	}
	if err != nil {
		return false, err
	}

	visible, err := s.visible(ctx, userID, []*models.Content{item})
	if err != nil {
		return false, err
	}
	if !visible[item.ID] {
		return false, errs.NotFound("content", contentID)
	}
	return s.SavedPostDAO.Insert(ctx, userID, contentID)
}

// Unsave 取消收藏，未收藏时不报错
func (s *SavedPostService) Unsave(ctx context.Context, userID, contentID uint64) error {
	return s.SavedPostDAO.Remove(ctx, userID, contentID)
}

// List 最新收藏在前，内容已被删除或作者已关闭分享的记录不返回
func (s *SavedPostService) List(ctx context.Context, userID uint64) ([]*SavedPostView, error) {
	posts, err := s.SavedPostDAO.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ContentID)
	}
	items, err := s.ContentDAO.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	visible, err := s.visible(ctx, userID, items)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint64]*models.Content, len(items))
	for _, item := range items {
		if visible[item.ID] {
			byID[item.ID] = item
		}
	}

	out := make([]*SavedPostView, 0, len(posts))
	for _, p := range posts {
		item, ok := byID[p.ContentID]
		if !ok {
			continue
		}
		out = append(out, &SavedPostView{
			ID:        p.ID,
			ContentID: p.ContentID,
			CreatedAt: p.CreatedAt,
			Content:   item,
		})
	}
	return out, nil
}

// visible 筛出 userID 可见的内容：本人的，或作者 Brain 已公开的
func (s *SavedPostService) visible(ctx context.Context, userID uint64, items []*models.Content) (map[uint64]bool, error) {
	out := make(map[uint64]bool, len(items))
	var owners []uint64
	for _, item := range items {
		if item.UserID == userID {
			out[item.ID] = true
			continue
		}
		owners = append(owners, item.UserID)
	}
	if len(owners) == 0 {
		return out, nil
	}

	public, err := s.BrainDAO.PublicOwners(ctx, owners)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if public[item.UserID] {
			out[item.ID] = true
		}
	}
	return out, nil
}
