package service

import (
	"brainvault/dao"
	"brainvault/models"
	"brainvault/pkg/errs"
	"brainvault/pkg/snowflake"
	"context"
	"errors"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MaxTags 单条内容的标签上限
const MaxTags = 20

var _ IContentService = (*ContentService)(nil)

type IContentService interface {
	Add(ctx context.Context, ownerID uint64, in *AddContentInput) (*models.Content, error)
	ListForOwner(ctx context.Context, ownerID uint64) ([]*models.Content, error)
	Update(ctx context.Context, ownerID, itemID uint64, patch *ContentPatch) (*models.Content, error)
	Delete(ctx context.Context, ownerID, itemID uint64) error
}

type AddContentInput struct {
	Title string
	Type  string
	Link  string
	Tags  []string
}

// ContentPatch nil 字段不更新
type ContentPatch struct {
	Title *string
	Link  *string
	Tags  *[]string
}

type ContentService struct {
	DB           *gorm.DB
	ContentDAO   *dao.ContentDAO
	BrainService IBrainService
}

// Add 新增内容并追加到用户的 Brain，二者在同一事务中完成
func (s *ContentService) Add(ctx context.Context, ownerID uint64, in *AddContentInput) (*models.Content, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, errs.Validation("title", "Title parameter is required")
	}

	contentType := strings.ToLower(strings.TrimSpace(in.Type))
	if !models.IsContentType(contentType) {
		return nil, errs.Validation("type", "Unknown content type")
	}

	link := strings.TrimSpace(in.Link)
	if link == "" && contentType != models.ContentTypeNote {
		return nil, errs.Validation("link", "Link parameter is required for this content type")
	}

	item := &models.Content{
		ID:     snowflake.GenID(),
		UserID: ownerID,
		Title:  title,
		Type:   contentType,
		Link:   NormalizeLink(link, contentType),
		Tags:   cleanTags(in.Tags),
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.ContentDAO.WithTx(tx).Create(ctx, item); err != nil {
			return err
		}
		return s.BrainService.AppendReference(ctx, tx, ownerID, item.ID)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// ListForOwner 用户的全部内容，按创建顺序
func (s *ContentService) ListForOwner(ctx context.Context, ownerID uint64) ([]*models.Content, error) {
	return s.ContentDAO.FindByUserID(ctx, ownerID)
}

// Update 只更新 patch 中出现的字段，链接按原类型重新规范化
func (s *ContentService) Update(ctx context.Context, ownerID, itemID uint64, patch *ContentPatch) (*models.Content, error) {
	item, err := s.ContentDAO.FindOwned(ctx, itemID, ownerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NotFound("content", itemID)
	}
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, errs.Validation("title", "Title cannot be empty")
		}
		item.Title = title
	}

	if patch.Link != nil {
		link := strings.TrimSpace(*patch.Link)
		if link == "" && item.Type != models.ContentTypeNote {
			return nil, errs.Validation("link", "Link parameter is required for this content type")
		}
		item.Link = NormalizeLink(link, item.Type)
	}

	if patch.Tags != nil {
		item.Tags = cleanTags(*patch.Tags)
	}

	if err := s.ContentDAO.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete 只删除内容本身，Brain 与收藏中的引用在读取时过滤
func (s *ContentService) Delete(ctx context.Context, ownerID, itemID uint64) error {
	affected, err := s.ContentDAO.DeleteOwned(ctx, itemID, ownerID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errs.NotFound("content", itemID)
	}
	return nil
}

func cleanTags(tags []string) datatypes.JSONSlice[string] {
	out := make(datatypes.JSONSlice[string], 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
		if len(out) == MaxTags {
			break
		}
	}
	return out
}
