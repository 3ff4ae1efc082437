package service

import (
	"brainvault/models"
	"brainvault/pkg/encrypt"
	"brainvault/pkg/errs"
	"brainvault/pkg/jwt"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserService_Register(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sess, err := env.users.Register(ctx, &RegisterInput{Username: "alice", Email: "alice@example.com", Password: "Secret123"})
	require.NoError(t, err)
	require.NotNil(t, sess.User.Password)
	assert.NotEqual(t, "Secret123", *sess.User.Password)
	assert.True(t, encrypt.VerifyPassword(*sess.User.Password, "Secret123"))

	claims, err := jwt.ParseToken([]byte(env.conf.Jwt.Secret), jwt.TypeAccess, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.User.ID, claims.UserID)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), sess.ExpiresAt, time.Minute)

	view, err := env.brains.FetchForOwner(ctx, sess.User.ID)
	require.NoError(t, err)
	assert.False(t, view.Brain.IsPublic)
	assert.Empty(t, view.Items)

	_, err = env.users.Register(ctx, &RegisterInput{Username: "alice", Email: "other@example.com", Password: "Secret123"})
	require.True(t, errs.IsConflict(err))
	assert.Contains(t, err.Error(), "Username already exists")

	_, err = env.users.Register(ctx, &RegisterInput{Username: "alice2", Email: "alice@example.com", Password: "Secret123"})
	require.True(t, errs.IsConflict(err))
	assert.Contains(t, err.Error(), "Email already exists")
}

func TestUserService_Login(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	uid := env.register(t, "alice")

	sess, err := env.users.Login(ctx, "alice", "Secret123")
	require.NoError(t, err)
	assert.Equal(t, uid, sess.User.ID)

	_, err = env.users.Login(ctx, "alice", "secret123")
	assert.True(t, errs.IsUnauthenticated(err))

	_, err = env.users.Login(ctx, "nobody", "Secret123")
	assert.True(t, errs.IsUnauthenticated(err))
}

func TestUserService_Google(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t, "john")
	env.google["tok-1"] = &GoogleIdentity{Subject: "g-1", Email: "John.Doe@gmail.com", Name: "John Doe"}
	env.google["tok-2"] = &GoogleIdentity{Subject: "g-2", Email: "john@corp.io", Name: "John"}
	env.google["tok-3"] = &GoogleIdentity{Subject: "g-3", Email: "", Name: "John"}

	_, err := env.users.GoogleLogin(ctx, "tok-1")
	assert.True(t, errs.IsNotFound(err))

	sess, err := env.users.GoogleRegister(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "johndoe", sess.User.Username)

	again, err := env.users.GoogleRegister(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, sess.User.ID, again.User.ID)

	second, err := env.users.GoogleRegister(ctx, "tok-2")
	require.NoError(t, err)
	assert.Equal(t, "john1", second.User.Username)

	third, err := env.users.GoogleRegister(ctx, "tok-3")
	require.NoError(t, err)
	assert.Equal(t, "john2", third.User.Username)

	login, err := env.users.GoogleLogin(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, sess.User.ID, login.User.ID)

	_, err = env.brains.FetchForOwner(ctx, sess.User.ID)
	require.NoError(t, err)

	// Google 账号没有密码
	_, err = env.users.Login(ctx, "johndoe", "")
	assert.True(t, errs.IsUnauthenticated(err))

	_, err = env.users.GoogleRegister(ctx, "bogus")
	assert.True(t, errs.IsUnauthenticated(err))
}

// 首次写入时用户名被并发注册抢占，重试后仍能完成注册
func TestUserService_GoogleRegisterRetriesConflict(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.google["tok-1"] = &GoogleIdentity{Subject: "g-1", Email: "jane@gmail.com", Name: "Jane"}

	var (
		creates   int
		insertErr error
	)
	err := env.db.Callback().Create().Before("gorm:create").Register("test:google_winner", func(tx *gorm.DB) {
		u, ok := tx.Statement.Dest.(*models.User)
		if !ok {
			return
		}
		creates++
		if creates > 1 {
			return
		}
		now := time.Now()
		insertErr = tx.Session(&gorm.Session{NewDB: true}).
			Exec("INSERT INTO users (id, username, created_at, updated_at) VALUES (?, ?, ?, ?)", u.ID+1, u.Username, now, now).Error
	})
	require.NoError(t, err)

	sess, err := env.users.GoogleRegister(ctx, "tok-1")
	require.NoError(t, err)
	require.NoError(t, insertErr)
	assert.Equal(t, 2, creates)
	assert.Equal(t, "jane", sess.User.Username)

	login, err := env.users.GoogleLogin(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, sess.User.ID, login.User.ID)
}

func TestUserService_GoogleRegisterEmailTaken(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t, "jane")
	env.google["tok-1"] = &GoogleIdentity{Subject: "g-1", Email: "jane@example.com", Name: "Jane"}

	_, err := env.users.GoogleRegister(ctx, "tok-1")
	assert.True(t, errs.IsConflict(err))
	assert.Contains(t, err.Error(), "Email already exists")
}

func TestUserService_UpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice")
	env.register(t, "bob")

	_, err := env.users.UpdateProfile(ctx, alice, &ProfilePatch{Username: strPtr("bob")})
	assert.True(t, errs.IsConflict(err))

	user, err := env.users.UpdateProfile(ctx, alice, &ProfilePatch{Username: strPtr("alicia"), Password: strPtr("NewSecret1")})
	require.NoError(t, err)
	assert.Equal(t, "alicia", user.Username)

	_, err = env.users.Login(ctx, "alicia", "NewSecret1")
	require.NoError(t, err)
	_, err = env.users.Login(ctx, "alice", "Secret123")
	assert.True(t, errs.IsUnauthenticated(err))
}

func TestUserService_Profile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	uid := env.register(t, "alice")
	_, err := env.items.Add(ctx, uid, &AddContentInput{Title: "t", Type: "note"})
	require.NoError(t, err)

	user, items, err := env.users.Profile(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Len(t, items, 1)

	_, _, err = env.users.Profile(ctx, 404)
	assert.True(t, errs.IsNotFound(err))
}

func TestUserService_Logout(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.users.Logout(ctx, "jti-1", time.Now().Add(time.Hour)))
	revoked, err := env.users.Sessions.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
}
