package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/widgetbot/internal/db"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func TestStoreGetMissing(t *testing.T) {
	s := setupStore(t)
	v, ok, err := s.Get(t.Context(), "widgetbot", "server_id")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestStoreSetGetOverwrite(t *testing.T) {
	s := setupStore(t)
	ctx := t.Context()

	require.NoError(t, s.Set(ctx, "widgetbot", "server_id", "1"))
	require.NoError(t, s.Set(ctx, "widgetbot", "server_id", "2"))

	v, ok, err := s.Get(ctx, "widgetbot", "server_id")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2", v)

	// Namespaces are isolated.
	_, ok, err = s.Get(ctx, "other", "server_id")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreEmptyValueIsPresent(t *testing.T) {
	s := setupStore(t)
	ctx := t.Context()

	require.NoError(t, s.Set(ctx, "widgetbot", "crate_color", ""))
	v, ok, err := s.Get(ctx, "widgetbot", "crate_color")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

func TestStoreUnsetAndList(t *testing.T) {
	s := setupStore(t)
	ctx := t.Context()

	require.NoError(t, s.Set(ctx, "widgetbot", "server_id", "1"))
	require.NoError(t, s.Set(ctx, "widgetbot", "channel_id", "2"))
	require.NoError(t, s.Set(ctx, "other", "x", "y"))

	list, err := s.List(ctx, "widgetbot")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "channel_id", list[0].Key)
	assert.Equal(t, "server_id", list[1].Key)

	removed, err := s.Unset(ctx, "widgetbot", "server_id")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.Unset(ctx, "widgetbot", "server_id")
	require.NoError(t, err)
	assert.False(t, removed)

	n, err := s.DeleteNamespace(ctx, "widgetbot")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, ok, err := s.Get(ctx, "other", "x")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMapStore(t *testing.T) {
	m := MapStore{"widgetbot": {"server_id": "1"}}
	v, ok, err := m.Get(context.Background(), "widgetbot", "server_id")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	_, ok, _ = m.Get(context.Background(), "widgetbot", "channel_id")
	assert.False(t, ok)
	_, ok, _ = m.Get(context.Background(), "nope", "server_id")
	assert.False(t, ok)
}

type failingGetter struct{}

func (failingGetter) Get(context.Context, string, string) (string, bool, error) {
	return "", false, errors.New("boom")
}

func TestChain(t *testing.T) {
	primary := MapStore{"widgetbot": {"server_id": "db"}}
	fallback := MapStore{"widgetbot": {"server_id": "file", "channel_id": "file"}}
	c := Chain{nil, primary, fallback}

	v, ok, err := c.Get(context.Background(), "widgetbot", "server_id")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "db", v)

	v, ok, err = c.Get(context.Background(), "widgetbot", "channel_id")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "file", v)

	_, ok, err = c.Get(context.Background(), "widgetbot", "crate_color")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = Chain{failingGetter{}, fallback}.Get(context.Background(), "widgetbot", "server_id")
	assert.Error(t, err)
}
