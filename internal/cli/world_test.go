package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/bytecrawl/pkg/bytecrawl"
)

func TestWorldShow_Default(t *testing.T) {
	out, err := executeCLI(t, "", "world", "show", "--config", t.TempDir())
	require.NoError(t, err)

	assert.Contains(t, out, "├─📁 dungeon")
	assert.Contains(t, out, "loot_example (EXEC)")
	assert.Contains(t, out, "test_shop (EXEC)")
	assert.NotContains(t, out, "tutorial")
}

func TestWorldShow_WithTutorial(t *testing.T) {
	out, err := executeCLI(t, "", "world", "show", "--tutorial", "--config", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "tutorial (EXEC)")
}

func TestWorldShow_CustomWorld(t *testing.T) {
	dir := t.TempDir()
	worldPath := writeFile(t, dir, "cave.yaml", caveWorld)

	out, err := executeCLI(t, "", "world", "show", "--world", worldPath, "--config", dir)
	require.NoError(t, err)
	assert.Equal(t, "/\n├─📁 cave\n│ ├─🗎 note (TXT)\n│ └─🗎 chest (EXEC)\n└─🗎 stats (TXT)\n", out)
}

func TestWorldCheck(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid layout", func(t *testing.T) {
		path := writeFile(t, dir, "cave.yaml", caveWorld)
		out, err := executeCLI(t, "", "world", "check", path)
		require.NoError(t, err)
		assert.Contains(t, out, "1 directories, 2 files, 0 shops")
	})

	t.Run("invalid layout reports every problem", func(t *testing.T) {
		path := writeFile(t, dir, "bad.yaml", "directories:\n  - relative\nfiles:\n  - path: /x\n    program: warp\n")
		_, err := executeCLI(t, "", "world", "check", path)
		require.Error(t, err)
		assert.Equal(t, bytecrawl.ExitWorldError, bytecrawl.ExitCodeForError(err))
		assert.Contains(t, err.Error(), "relative")
		assert.Contains(t, err.Error(), "warp")
	})

	t.Run("missing argument", func(t *testing.T) {
		err := worldCheckCmd.Args(worldCheckCmd, []string{})
		require.Error(t, err)
		assert.Equal(t, bytecrawl.ExitUsageError, bytecrawl.ExitCodeForError(err))
	})

	t.Run("too many arguments", func(t *testing.T) {
		err := worldCheckCmd.Args(worldCheckCmd, []string{"a.yaml", "b.yaml"})
		require.Error(t, err)
		assert.Equal(t, bytecrawl.ExitUsageError, bytecrawl.ExitCodeForError(err))
	})
}
