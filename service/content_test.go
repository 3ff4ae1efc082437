package service

import (
	"brainvault/pkg/errs"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentService_Add(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	uid := env.register(t, "alice")

	item, err := env.items.Add(ctx, uid, &AddContentInput{
		Title: "  Rick  ",
		Type:  "YouTube",
		Link:  "https://youtu.be/dQw4w9WgXcQ",
		Tags:  []string{"music", " music ", "", "80s"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Rick", item.Title)
	assert.Equal(t, "youtube", item.Type)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", item.Link)
	assert.Equal(t, []string{"music", "80s"}, []string(item.Tags))

	view, err := env.brains.FetchForOwner(ctx, uid)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, item.ID, view.Items[0].ID)
}

func TestContentService_AddValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	uid := env.register(t, "alice")

	tests := []struct {
		name  string
		in    AddContentInput
		field string
	}{
		{"empty title", AddContentInput{Title: " ", Type: "article", Link: "https://a.io"}, "title"},
		{"unknown type", AddContentInput{Title: "t", Type: "video", Link: "https://a.io"}, "type"},
		{"missing link", AddContentInput{Title: "t", Type: "article"}, "link"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.items.Add(ctx, uid, &tt.in)
			require.True(t, errs.IsValidation(err))
			var e *errs.Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, tt.field, e.Field)
		})
	}

	note, err := env.items.Add(ctx, uid, &AddContentInput{Title: "idea", Type: "note"})
	require.NoError(t, err)
	assert.Empty(t, note.Link)
}

func TestContentService_AddCapsTags(t *testing.T) {
	env := newTestEnv(t)
	uid := env.register(t, "alice")

	tags := make([]string, 0, MaxTags+5)
	for i := 0; i < MaxTags+5; i++ {
		tags = append(tags, string(rune('a'+i)))
	}
	item, err := env.items.Add(context.Background(), uid, &AddContentInput{Title: "t", Type: "note", Tags: tags})
	require.NoError(t, err)
	assert.Len(t, item.Tags, MaxTags)
}

func TestContentService_ListForOwner(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice")
	bob := env.register(t, "bob")

	first, err := env.items.Add(ctx, alice, &AddContentInput{Title: "one", Type: "note"})
	require.NoError(t, err)
	second, err := env.items.Add(ctx, alice, &AddContentInput{Title: "two", Type: "note"})
	require.NoError(t, err)
	_, err = env.items.Add(ctx, bob, &AddContentInput{Title: "bob's", Type: "note"})
	require.NoError(t, err)

	items, err := env.items.ListForOwner(ctx, alice)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first.ID, items[0].ID)
	assert.Equal(t, second.ID, items[1].ID)
}

func TestContentService_Update(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice")
	bob := env.register(t, "bob")

	item, err := env.items.Add(ctx, alice, &AddContentInput{Title: "tweet", Type: "twitter", Link: "https://twitter.com/a/status/1", Tags: []string{"a"}})
	require.NoError(t, err)

	t.Run("link renormalized with stored type", func(t *testing.T) {
		got, err := env.items.Update(ctx, alice, item.ID, &ContentPatch{Link: strPtr("https://x.com/a/status/2")})
		require.NoError(t, err)
		assert.Equal(t, "https://twitter.com/a/status/2", got.Link)
		assert.Equal(t, "tweet", got.Title)
		assert.Equal(t, []string{"a"}, []string(got.Tags))
	})

	t.Run("title and tags", func(t *testing.T) {
		tags := []string{"b", "c"}
		got, err := env.items.Update(ctx, alice, item.ID, &ContentPatch{Title: strPtr("renamed"), Tags: &tags})
		require.NoError(t, err)
		assert.Equal(t, "renamed", got.Title)
		assert.Equal(t, []string{"b", "c"}, []string(got.Tags))
	})

	t.Run("empty title rejected", func(t *testing.T) {
		_, err := env.items.Update(ctx, alice, item.ID, &ContentPatch{Title: strPtr("")})
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("empty link rejected", func(t *testing.T) {
		_, err := env.items.Update(ctx, alice, item.ID, &ContentPatch{Link: strPtr("")})
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("non owner", func(t *testing.T) {
		_, err := env.items.Update(ctx, bob, item.ID, &ContentPatch{Title: strPtr("hijack")})
		assert.True(t, errs.IsNotFound(err))
	})

	t.Run("missing", func(t *testing.T) {
		_, err := env.items.Update(ctx, alice, 42, &ContentPatch{})
		assert.True(t, errs.IsNotFound(err))
	})

	items, err := env.items.ListForOwner(ctx, alice)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "renamed", items[0].Title)
}

func TestContentService_Delete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice")
	bob := env.register(t, "bob")

	item, err := env.items.Add(ctx, alice, &AddContentInput{Title: "t", Type: "note"})
	require.NoError(t, err)

	assert.True(t, errs.IsNotFound(env.items.Delete(ctx, bob, item.ID)))
	require.NoError(t, env.items.Delete(ctx, alice, item.ID))
	assert.True(t, errs.IsNotFound(env.items.Delete(ctx, alice, item.ID)))

	view, err := env.brains.FetchForOwner(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}
