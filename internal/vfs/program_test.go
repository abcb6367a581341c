package vfs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/bytecrawl/internal/player"
	"github.com/vvka-141/bytecrawl/pkg/bytecrawl"
)

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	noop := ProgramFunc(func(*FileSystem, *player.Player, []string) error { return nil })

	require.NoError(t, reg.Register("loot", noop))
	require.NoError(t, reg.Register("gamble", noop))

	err := reg.Register("loot", noop)
	assert.True(t, errors.Is(err, bytecrawl.ErrDuplicateProgram))

	assert.True(t, errors.Is(reg.Register("", noop), bytecrawl.ErrInvalidArguments))
	assert.True(t, errors.Is(reg.Register("nil", nil), bytecrawl.ErrInvalidArguments))

	_, ok := reg.Lookup("loot")
	assert.True(t, ok)
	_, ok = reg.Lookup("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"gamble", "loot"}, reg.Names())
}
