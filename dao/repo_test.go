package dao

import (
	"brainvault/models"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:dao_%s?mode=memory&cache=shared", name)), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Brain{}, &models.Content{}))
	return db
}

func TestRepo_IsExist(t *testing.T) {
	ctx := context.Background()
	users := NewUsers(newTestDB(t))

	exist, err := users.IsUsernameExist(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, exist)

	email := "alice@example.com"
	require.NoError(t, users.Create(ctx, &models.User{ID: 1, Username: "alice", Email: &email}))

	exist, err = users.IsUsernameExist(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exist)

	exist, err = users.IsEmailExist(ctx, email)
	require.NoError(t, err)
	assert.True(t, exist)

	exist, err = users.IsEmailExist(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.False(t, exist)
}

func TestBrainDAO_PublicOwners(t *testing.T) {
	ctx := context.Background()
	brains := NewBrainDAO(newTestDB(t))

	_, err := brains.FirstOrCreate(ctx, 1, 101)
	require.NoError(t, err)
	_, err = brains.FirstOrCreate(ctx, 2, 102)
	require.NoError(t, err)
	require.NoError(t, brains.SetPublic(ctx, 2, true))

	public, err := brains.PublicOwners(ctx, []uint64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, map[uint64]bool{2: true}, public)

	public, err = brains.PublicOwners(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, public)
}
