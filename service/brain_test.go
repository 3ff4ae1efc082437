package service

import (
	"brainvault/pkg/errs"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrainService_CreateForUserIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.brains.CreateForUser(ctx, nil, 7)
	require.NoError(t, err)
	assert.False(t, first.IsPublic)

	second, err := env.brains.CreateForUser(ctx, nil, 7)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestBrainService_FetchForOwner(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.brains.FetchForOwner(ctx, 404)
	assert.True(t, errs.IsNotFound(err))

	uid := env.register(t, "alice")
	var ids []uint64
	for _, title := range []string{"a", "b", "c"} {
		item, err := env.items.Add(ctx, uid, &AddContentInput{Title: title, Type: "note"})
		require.NoError(t, err)
		ids = append(ids, item.ID)
	}
	require.NoError(t, env.items.Delete(ctx, uid, ids[1]))

	view, err := env.brains.FetchForOwner(ctx, uid)
	require.NoError(t, err)
	require.Len(t, view.Items, 2)
	assert.Equal(t, ids[0], view.Items[0].ID)
	assert.Equal(t, ids[2], view.Items[1].ID)
	assert.Empty(t, view.ShareHash)
	assert.False(t, view.Brain.IsPublic)
}
