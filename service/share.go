package service

import (
	"brainvault/dao"
	"brainvault/dao/cache"
	"brainvault/models"
	"brainvault/pkg/errs"
	"brainvault/pkg/log"
	"brainvault/pkg/utils"
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MinShareTokenLen 短于该长度的令牌直接拒绝
const MinShareTokenLen = 3

var _ IShareService = (*ShareService)(nil)

type IShareService interface {
	Enable(ctx context.Context, ownerID uint64) (string, error)
	Disable(ctx context.Context, ownerID uint64) error
	Resolve(ctx context.Context, token string) (*SharedBrain, error)
}

// SharedBrain 通过分享令牌访问到的 Brain
type SharedBrain struct {
	*BrainView
	Username string
}

type ShareService struct {
	Users        *dao.Users
	BrainDAO     *dao.BrainDAO
	ShareLinkDAO *dao.ShareLinkDAO
	ShareCache   *cache.ShareStorage
	BrainService IBrainService
}

// Enable 开启分享，已有令牌时原样返回
// 并发开启时由 share_links.user_id 唯一键决出唯一令牌，失败方重新读取
func (s *ShareService) Enable(ctx context.Context, ownerID uint64) (string, error) {
	if _, err := s.BrainDAO.FindByUserID(ctx, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errs.NotFound("brain", nil)
		}
		return "", err
	}

	// 先置公开，同时修复已有令牌但 is_public 为 false 的不一致
	if err := s.BrainService.SetPublic(ctx, ownerID, true); err != nil {
		return "", err
	}

	link, err := s.ShareLinkDAO.FindByUserID(ctx, ownerID)
	if err == nil {
		return link.Hash, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	hash, err := utils.GenerateShareToken()
	if err != nil {
		return "", err
	}

	err = s.ShareLinkDAO.Create(ctx, &models.ShareLink{Hash: hash, UserID: ownerID})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		link, err = s.ShareLinkDAO.FindByUserID(ctx, ownerID)
		if err != nil {
			return "", err
		}
		shareEnableTotal.WithLabelValues("reread").Inc()
		return link.Hash, nil
	}
	if err != nil {
		return "", err
	}

	shareEnableTotal.WithLabelValues("created").Inc()
	return hash, nil
}

// Disable 关闭分享，没有令牌时同样成功
func (s *ShareService) Disable(ctx context.Context, ownerID uint64) error {
	link, err := s.ShareLinkDAO.FindByUserID(ctx, ownerID)
	switch {
	case err == nil:
		if _, err := s.ShareLinkDAO.DeleteByUserID(ctx, ownerID); err != nil {
			return err
		}
		if err := s.ShareCache.Del(ctx, link.Hash); err != nil {
			log.L.Warn("evict share cache", zap.String("hash", link.Hash), zap.Error(err))
		}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return err
	}

	return s.BrainService.SetPublic(ctx, ownerID, false)
}

// Resolve 令牌 -> Brain，先查 redis 缓存再查库
func (s *ShareService) Resolve(ctx context.Context, token string) (*SharedBrain, error) {
	if len(token) < MinShareTokenLen {
		return nil, errs.Validation("shareLink", "Invalid share link")
	}

	ownerID, err := s.lookupOwner(ctx, token)
	if err != nil {
		return nil, err
	}

	view, err := s.BrainService.FetchForOwner(ctx, ownerID)
	if errs.IsNotFound(err) {
		return nil, errs.NotFound("share link", nil)
	}
	if err != nil {
		return nil, err
	}
	// 缓存可能晚于关闭或重新开启分享，以库中的令牌为准
	if !view.Brain.IsPublic || view.ShareHash != token {
		return nil, errs.NotFound("share link", nil)
	}

	user, err := s.Users.FindById(ctx, ownerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NotFound("share link", nil)
	}
	if err != nil {
		return nil, err
	}

	return &SharedBrain{BrainView: view, Username: user.Username}, nil
}

func (s *ShareService) lookupOwner(ctx context.Context, token string) (uint64, error) {
	ownerID, ok, err := s.ShareCache.Get(ctx, token)
	if err != nil {
		log.L.Warn("read share cache", zap.Error(err))
	}
	if ok {
		shareResolveTotal.WithLabelValues("cache").Inc()
		return ownerID, nil
	}

	link, err := s.ShareLinkDAO.FindByHash(ctx, token)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		shareResolveTotal.WithLabelValues("not_found").Inc()
		return 0, errs.NotFound("share link", nil)
	}
	if err != nil {
		return 0, err
	}

	if err := s.ShareCache.Set(ctx, token, link.UserID); err != nil {
		log.L.Warn("write share cache", zap.Error(err))
	}
	shareResolveTotal.WithLabelValues("db").Inc()
	return link.UserID, nil
}
