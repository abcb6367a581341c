package session

import (
	"errors"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/bytecrawl/internal/player"
	"github.com/vvka-141/bytecrawl/internal/vfs"
	"github.com/vvka-141/bytecrawl/pkg/bytecrawl"
)

func TestNew_Defaults(t *testing.T) {
	s := New(vfs.New(), player.New(), nil, Config{})

	assert.Equal(t, io.Discard, s.Out)
	assert.NotNil(t, s.Logger)
	assert.NotNil(t, s.Shops)
	assert.False(t, s.Debug)
	assert.Len(t, s.ShortID(), 8)
}

func TestNew_UniqueIDs(t *testing.T) {
	a := New(vfs.New(), player.New(), nil, Config{})
	b := New(vfs.New(), player.New(), nil, Config{})
	assert.NotEqual(t, a.ID, b.ID)
}

func TestNew_GivenID(t *testing.T) {
	id := uuid.MustParse("0badcafe-1234-4abc-8def-000000000001")
	s := New(vfs.New(), player.New(), nil, Config{ID: id})

	assert.Equal(t, id, s.ID)
	assert.Equal(t, "0badcafe", s.ShortID())
	assert.Equal(t, "0badcafe", ShortID(id))
}

func TestSyncStats(t *testing.T) {
	fsys := vfs.New()
	require.NoError(t, fsys.Touch("/", vfs.File{Name: "stats", Content: vfs.Text{Body: "stale"}}))
	p := player.New()
	s := New(fsys, p, nil, Config{})

	p.Earn(42)
	require.NoError(t, s.SyncStats())

	_, text, err := fsys.Cat("/stats")
	require.NoError(t, err)
	assert.Equal(t, "Health: 100\nScore: 0\nBytes: 42", text)
}

func TestSyncStats_MissingFile(t *testing.T) {
	s := New(vfs.New(), player.New(), nil, Config{})

	err := s.SyncStats()
	require.Error(t, err)
	assert.True(t, errors.Is(err, bytecrawl.ErrNotFound))
	assert.Contains(t, err.Error(), "couldn't write stats")
}
