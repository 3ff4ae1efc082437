package service

import (
	"brainvault/config"
	"brainvault/dao"
	"brainvault/dao/cache"
	"brainvault/pkg/database"
	"brainvault/pkg/encrypt"
	"brainvault/pkg/errs"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	encrypt.Cost = bcrypt.MinCost
}

type fakeGoogle map[string]*GoogleIdentity

func (f fakeGoogle) Verify(_ context.Context, token string) (*GoogleIdentity, error) {
	if id, ok := f[token]; ok {
		return id, nil
	}
	return nil, errs.Unauthenticated("Invalid Google token")
}

type testEnv struct {
	db     *gorm.DB
	redis  *miniredis.Miniredis
	conf   *config.Config
	users  *UserService
	brains *BrainService
	items  *ContentService
	shares *ShareService
	saved  *SavedPostService
	google fakeGoogle
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)

	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rds.Close() })

	conf := &config.Config{
		Jwt:   &config.Jwt{Secret: "test-secret", ExpireHours: 24},
		Share: &config.Share{CacheTTLSeconds: 300},
	}

	users := dao.NewUsers(db)
	contents := dao.NewContentDAO(db)
	brainDAO := dao.NewBrainDAO(db)
	links := dao.NewShareLinkDAO(db)

	brains := &BrainService{BrainDAO: brainDAO, ContentDAO: contents, ShareLinkDAO: links}
	google := fakeGoogle{}

	return &testEnv{
		db:     db,
		redis:  mr,
		conf:   conf,
		brains: brains,
		google: google,
		users: &UserService{
			DB:           db,
			Config:       conf,
			Users:        users,
			ContentDAO:   contents,
			BrainService: brains,
			Google:       google,
			Sessions:     cache.NewSessionStorage(rds),
		},
		items: &ContentService{DB: db, ContentDAO: contents, BrainService: brains},
		shares: &ShareService{
			Users:        users,
			BrainDAO:     brainDAO,
			ShareLinkDAO: links,
			ShareCache:   cache.NewShareStorage(rds, conf),
			BrainService: brains,
		},
		saved: &SavedPostService{SavedPostDAO: dao.NewSavedPostDAO(db), ContentDAO: contents, BrainDAO: brainDAO},
	}
}

// register 创建用户并返回用户 ID
func (e *testEnv) register(t *testing.T, username string) uint64 {
	t.Helper()
	sess, err := e.users.Register(context.Background(), &RegisterInput{
		Username: username,
		Email:    username + "@example.com",
		Password: "Secret123",
	})
	require.NoError(t, err)
	return sess.User.ID
}

func strPtr(s string) *string { return &s }
