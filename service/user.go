package service

import (
	"brainvault/config"
	"brainvault/dao"
	"brainvault/dao/cache"
	"brainvault/models"
	"brainvault/pkg/encrypt"
	"brainvault/pkg/errs"
	"brainvault/pkg/jwt"
	"brainvault/pkg/snowflake"
	"brainvault/pkg/utils"
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// MinUsernameLen 用户名最短长度
const MinUsernameLen = 3

// googleRegisterAttempts Google 注册遇到唯一键冲突时的最大尝试次数
const googleRegisterAttempts = 3

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Register(ctx context.Context, in *RegisterInput) (*Session, error)
	Login(ctx context.Context, username, password string) (*Session, error)
	GoogleRegister(ctx context.Context, idToken string) (*Session, error)
	GoogleLogin(ctx context.Context, idToken string) (*Session, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	Profile(ctx context.Context, userID uint64) (*models.User, []*models.Content, error)
	UpdateProfile(ctx context.Context, userID uint64, patch *ProfilePatch) (*models.User, error)
	Get(ctx context.Context, userID uint64) (*models.User, error)
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// ProfilePatch nil 字段不更新
type ProfilePatch struct {
	Username *string
	Password *string
}

// Session 登录态，Token 写入 cookie
type Session struct {
	User      *models.User
	Token     string
	ExpiresAt time.Time
}

type UserService struct {
	DB           *gorm.DB
	Config       *config.Config
	Users        *dao.Users
	ContentDAO   *dao.ContentDAO
	BrainService IBrainService
	Google       GoogleVerifier
	Sessions     *cache.SessionStorage
}

// Register 注册账号，用户与 Brain 在同一事务中创建
func (s *UserService) Register(ctx context.Context, in *RegisterInput) (*Session, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)
	if len(username) < MinUsernameLen {
		return nil, errs.Validation("username", "Username should be at least 3 characters")
	}

	if exist, err := s.Users.IsUsernameExist(ctx, username); err != nil {
		return nil, err
	} else if exist {
		return nil, errs.Conflict("username", "Username already exists")
	}
	if exist, err := s.Users.IsEmailExist(ctx, email); err != nil {
		return nil, err
	} else if exist {
		return nil, errs.Conflict("email", "Email already exists")
	}

	hash, err := encrypt.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:       snowflake.GenID(),
		Username: username,
		Email:    &email,
		Password: &hash,
	}
	if err := s.createWithBrain(ctx, user); err != nil {
		return nil, err
	}
	return s.issue(user)
}

// Login 用户名 + 密码登录，Google 账号没有密码无法通过此方式登录
func (s *UserService) Login(ctx context.Context, username, password string) (*Session, error) {
	user, err := s.Users.FindByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.Unauthenticated("User not found")
	}
	if err != nil {
		return nil, err
	}

	if user.Password == nil || !encrypt.VerifyPassword(*user.Password, password) {
		return nil, errs.Unauthenticated("Password incorrect")
	}
	return s.issue(user)
}

// GoogleRegister 按 google_id 查找账号，不存在则创建
// 与并发注册冲突时（用户名、邮箱或 google_id 被抢占）重新查找并重试
func (s *UserService) GoogleRegister(ctx context.Context, idToken string) (*Session, error) {
	identity, err := s.Google.Verify(ctx, idToken)
	if err != nil {
		return nil, err
	}

	for attempt := 0; ; attempt++ {
		user, err := s.googleRegister(ctx, identity)
		if errs.IsConflict(err) && attempt+1 < googleRegisterAttempts {
			continue
		}
		if err != nil {
			return nil, err
		}
		return s.issue(user)
	}
}

func (s *UserService) googleRegister(ctx context.Context, identity *GoogleIdentity) (*models.User, error) {
	user, err := s.Users.FindByGoogleID(ctx, identity.Subject)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	username, err := s.freeUsername(ctx, utils.UsernameBase(identity.Email, identity.Name))
	if err != nil {
		return nil, err
	}

	googleID := identity.Subject
	user = &models.User{
		ID:       snowflake.GenID(),
		Username: username,
		GoogleID: &googleID,
	}
	if identity.Email != "" {
		if exist, err := s.Users.IsEmailExist(ctx, identity.Email); err != nil {
			return nil, err
		} else if exist {
			return nil, errs.Conflict("email", "Email already exists")
		}
		email := identity.Email
		user.Email = &email
	}

	if err := s.createWithBrain(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GoogleLogin 仅登录已通过 Google 注册的账号
func (s *UserService) GoogleLogin(ctx context.Context, idToken string) (*Session, error) {
	identity, err := s.Google.Verify(ctx, idToken)
	if err != nil {
		return nil, err
	}

	user, err := s.Users.FindByGoogleID(ctx, identity.Subject)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &errs.Error{Kind: errs.KindNotFound, Resource: "user", Msg: "User not registered with Google"}
	}
	if err != nil {
		return nil, err
	}
	return s.issue(user)
}

// Logout 吊销令牌直到其过期
func (s *UserService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	return s.Sessions.Revoke(ctx, tokenID, time.Until(expiresAt))
}

func (s *UserService) Get(ctx context.Context, userID uint64) (*models.User, error) {
	user, err := s.Users.FindById(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NotFound("user", userID)
	}
	return user, err
}

// Profile 用户信息及其全部内容
func (s *UserService) Profile(ctx context.Context, userID uint64) (*models.User, []*models.Content, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.ContentDAO.FindByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return user, items, nil
}

// UpdateProfile 修改用户名或密码
func (s *UserService) UpdateProfile(ctx context.Context, userID uint64, patch *ProfilePatch) (*models.User, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]any)
	if patch.Username != nil {
		username := strings.TrimSpace(*patch.Username)
		if len(username) < MinUsernameLen {
			return nil, errs.Validation("username", "Username should be at least 3 characters")
		}
		if username != user.Username {
			exist, err := s.Users.IsUsernameExist(ctx, username)
			if err != nil {
				return nil, err
			}
			if exist {
				return nil, errs.Conflict("username", "Username already exists")
			}
			updates["username"] = username
			user.Username = username
		}
	}

	if patch.Password != nil {
		hash, err := encrypt.HashPassword(*patch.Password)
		if err != nil {
			return nil, err
		}
		updates["password"] = hash
		user.Password = &hash
	}

	if err := s.Users.Update(ctx, userID, updates); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.Conflict("username", "Username already exists")
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) createWithBrain(ctx context.Context, user *models.User) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.Users.WithTx(tx).Create(ctx, user); err != nil {
			return err
		}
		_, err := s.BrainService.CreateForUser(ctx, tx, user.ID)
		return err
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.Conflict("username", "Username or email already exists")
	}
	return err
}

// freeUsername 依次尝试 base, base1, base2 ...
func (s *UserService) freeUsername(ctx context.Context, base string) (string, error) {
	if len(base) < MinUsernameLen {
		base = "user" + base
	}
	for n := 0; ; n++ {
		candidate := utils.UsernameCandidate(base, n)
		exist, err := s.Users.IsUsernameExist(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exist {
			return candidate, nil
		}
	}
}

func (s *UserService) issue(user *models.User) (*Session, error) {
	expire := time.Duration(s.Config.Jwt.ExpireHours) * time.Hour
	token, claims, err := jwt.GenerateToken([]byte(s.Config.Jwt.Secret), user.ID, jwt.TypeAccess, expire)
	if err != nil {
		return nil, err
	}
	return &Session{
		User:      user,
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
