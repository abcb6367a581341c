package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestCompleteWorldFiles(t *testing.T) {
	exts, directive := completeWorldFiles(&cobra.Command{}, nil, "")
	assert.Equal(t, []string{"yaml", "yml"}, exts)
	assert.Equal(t, cobra.ShellCompDirectiveFilterFileExt, directive)
}

func TestCompleteWorldFileArg(t *testing.T) {
	cmd := &cobra.Command{}

	t.Run("first arg", func(t *testing.T) {
		_, directive := completeWorldFileArg(cmd, nil, "")
		assert.Equal(t, cobra.ShellCompDirectiveFilterFileExt, directive)
	})

	t.Run("args already provided", func(t *testing.T) {
		_, directive := completeWorldFileArg(cmd, []string{"cave.yaml"}, "")
		assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	})
}

func TestCompleteStatNames(t *testing.T) {
	cmd := &cobra.Command{}

	tests := []struct {
		name       string
		toComplete string
		want       []string
	}{
		{"all", "", []string{"health=", "score=", "bytes="}},
		{"prefix", "b", []string{"bytes="}},
		{"no match", "mana", nil},
		{"value half", "bytes=1", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, directive := completeStatNames(cmd, nil, tt.toComplete)
			assert.Equal(t, tt.want, got)
			assert.NotZero(t, directive&cobra.ShellCompDirectiveNoFileComp)
		})
	}
}

func TestCompleteDirectories(t *testing.T) {
	cmd := &cobra.Command{}

	t.Run("returns FilterDirs directive for first arg", func(t *testing.T) {
		_, directive := completeDirectories(cmd, nil, "")
		if directive != cobra.ShellCompDirectiveFilterDirs {
			t.Errorf("expected ShellCompDirectiveFilterDirs, got %v", directive)
		}
	})

	t.Run("returns NoFileComp when args already provided", func(t *testing.T) {
		_, directive := completeDirectories(cmd, []string{"./existing"}, "")
		if directive != cobra.ShellCompDirectiveNoFileComp {
			t.Errorf("expected ShellCompDirectiveNoFileComp, got %v", directive)
		}
	})
}
