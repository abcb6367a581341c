package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/bytecrawl/pkg/bytecrawl"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		debug bool
		want  Command
	}{
		{"empty", "   ", false, Command{Verb: VerbNone}},
		{"cd", "cd dungeon", false, Command{Verb: VerbCd, Arg: "dungeon"}},
		{"cd keeps quoted spacing", "cd 'my  dir'", false, Command{Verb: VerbCd, Arg: "'my  dir'"}},
		{"ls", "ls", false, Command{Verb: VerbLs}},
		{"pwd with padding", "  pwd  ", false, Command{Verb: VerbPwd}},
		{"clear", "clear", false, Command{Verb: VerbClear}},
		{"exit", "exit", false, Command{Verb: VerbExit}},
		{"cat", "cat /stats", false, Command{Verb: VerbCat, Arg: "/stats"}},
		{"help", "help", false, Command{Verb: VerbHelp}},
		{"help ignores args", "help me", false, Command{Verb: VerbHelp, Arg: "me"}},
		{"run", "./loot_example", false, Command{Verb: VerbRun, Arg: "loot_example"}},
		{"run with args", "./shop buy patch", false, Command{Verb: VerbRun, Arg: "shop buy patch"}},
		{"run quoted", "./'my prog' a", false, Command{Verb: VerbRun, Arg: "'my prog' a"}},
		{"run relative", "./../door2/gamble", false, Command{Verb: VerbRun, Arg: "../door2/gamble"}},
		{"debug enabled", "debug ps bytes 5", true, Command{Verb: VerbDebug, Arg: "ps bytes 5"}},
		{"debug disabled", "debug ps bytes 5", false, Command{Verb: VerbInvalid}},
		{"unknown", "dance", false, Command{Verb: VerbInvalid}},
		{"tab separated", "cd\tdungeon", false, Command{Verb: VerbCd, Arg: "dungeon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.input, tt.debug))
		})
	}
}

func TestParse_Arity(t *testing.T) {
	for _, input := range []string{"cd", "cat", "ls -la", "pwd now", "exit 1", "clear all", "./"} {
		t.Run(input, func(t *testing.T) {
			cmd := Parse(input, false)
			assert.Equal(t, VerbInvalid, cmd.Verb)
			assert.True(t, errors.Is(cmd.Err, bytecrawl.ErrInvalidCommandArguments), "got %v", cmd.Err)
		})
	}
}

func TestVerbString(t *testing.T) {
	assert.Equal(t, "cd", VerbCd.String())
	assert.Equal(t, "debug", VerbDebug.String())
	assert.Equal(t, "Verb(99)", Verb(99).String())
}
