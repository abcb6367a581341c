package world

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/vvka-141/bytecrawl/internal/command"
	"github.com/vvka-141/bytecrawl/internal/player"
	"github.com/vvka-141/bytecrawl/internal/vfs"
	"github.com/vvka-141/bytecrawl/pkg/bytecrawl"
)

// Names of the built-in programs that layouts can reference.
const (
	ProgramLoot     = "loot"
	ProgramGamble   = "gamble"
	ProgramTrap     = "trap"
	ProgramTutorial = "tutorial"
)

// LootAmount is what the loot box holds, and what a gamble wins or loses.
const LootAmount = 10

// TrapDamage is the health a trap takes per run.
const TrapDamage = 40

// tutorialStream selects the tutorial's own random sequence so running it
// leaves the caller's generator untouched.
const tutorialStream = 0x7475746f7269616c

// Programs registers the built-in programs. They print to opts.Out and the
// gamble draws from opts.Rand, so opts must already have its defaults.
func Programs(opts Options) (*vfs.Registry, error) {
	reg := vfs.NewRegistry()
	builtins := []struct {
		name string
		prog vfs.Program
	}{
		{ProgramLoot, loot(opts)},
		{ProgramGamble, gamble(opts)},
		{ProgramTrap, trap(opts)},
		{ProgramTutorial, tutorial(opts)},
	}
	for _, b := range builtins {
		if err := reg.Register(b.name, b.prog); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func loot(opts Options) vfs.ProgramFunc {
	return func(_ *vfs.FileSystem, p *player.Player, _ []string) error {
		opts.Logger.Verbose("program %s: +%d bytes", ProgramLoot, LootAmount)
		fmt.Fprintf(opts.Out, "You found a loot box! You got %d bytes!\n", LootAmount)
		p.Earn(LootAmount)
		return nil
	}
}

func gamble(opts Options) vfs.ProgramFunc {
	return func(_ *vfs.FileSystem, p *player.Player, _ []string) error {
		fmt.Fprintln(opts.Out, "You open the crate...")
		if opts.Rand.IntN(2) == 0 {
			opts.Logger.Verbose("program %s: won", ProgramGamble)
			fmt.Fprintf(opts.Out, "You found %d bytes!\n", LootAmount)
			p.Earn(LootAmount)
			return nil
		}

		opts.Logger.Verbose("program %s: lost", ProgramGamble)
		fmt.Fprintln(opts.Out, "You found a file gremlin that takes some bytes! :(")
		switch taken := p.Take(LootAmount); {
		case taken == 0:
			fmt.Fprintln(opts.Out, "You didn't have any bytes for the gremlin to take, so it just left.")
		case taken < LootAmount:
			fmt.Fprintln(opts.Out, "The gremlin took all your remaining bytes. :(")
		}
		return nil
	}
}

// trap damages the player. A fatal hit drops every byte and wakes the
// player at the root with full health.
func trap(opts Options) vfs.ProgramFunc {
	return func(fsys *vfs.FileSystem, p *player.Player, _ []string) error {
		fmt.Fprintf(opts.Out, "A rusty blade swings out of the wall! You take %d damage.\n", TrapDamage)
		if !p.Damage(TrapDamage) {
			opts.Logger.Verbose("program %s: health now %d", ProgramTrap, p.Health)
			return nil
		}

		dropped := p.Take(p.Bytes)
		p.Heal(bytecrawl.DefaultHealth)
		if err := fsys.Cd("/"); err != nil {
			return err
		}
		opts.Logger.Verbose("program %s: player died, dropped %d bytes", ProgramTrap, dropped)
		fmt.Fprintf(opts.Out, "You collapse and drop %d bytes. You wake up at / with full health.\n", dropped)
		return nil
	}
}

type tutorialStep struct {
	say   string
	input string
}

var tutorialSteps = []tutorialStep{
	{"`ls` lists what is in the current directory. EXEC files are programs.", "ls"},
	{"`cat <path>` prints a text file. Your stats always live in /stats.", "cat stats"},
	{"`cd <path>` moves you around. Paths can be relative or absolute.", "cd dungeon/door1"},
	{"`pwd` shows where you are.", "pwd"},
	{"Run a program by putting ./ in front of its path.", "./loot_example"},
	{"`..` is the parent directory and can appear anywhere in a path.", "cd ../door2"},
	{"Not every program is friendly.", "./gamble_example"},
	{"Shops are visited like programs.", "./../../shops/test_shop"},
	{"Anything after the path is passed along as arguments.", "./../../shops/test_shop buy patch"},
	{"Names with spaces go in single quotes, like cd 'my dir'. A leading / starts at the root.", "cd /"},
	{"Your stats were updated after every command.", "cat /stats"},
}

// tutorial walks a throwaway world through the basic commands. It builds
// its own filesystem and player, so nothing carries over to the caller.
func tutorial(opts Options) vfs.ProgramFunc {
	return func(_ *vfs.FileSystem, _ *player.Player, _ []string) error {
		fmt.Fprintln(opts.Out, "Welcome to the tutorial! This will run you through the basics of the game!")
		fmt.Fprintln(opts.Out, "All changes made here will not be reflected in the actual game.")

		layout, err := DefaultLayout()
		if err != nil {
			return fmt.Errorf("failed to run tutorial: %w", err)
		}
		inner := opts
		inner.Debug = false
		inner.Tutorial = false
		inner.SessionID = uuid.Nil
		inner.Rand = rand.New(rand.NewPCG(opts.Seed, tutorialStream))
		s, err := New(layout, player.New(), inner)
		if err != nil {
			return fmt.Errorf("failed to run tutorial: %w", err)
		}

		for _, step := range tutorialSteps {
			fmt.Fprintf(opts.Out, "\n%s\n%s> %s\n", step.say, s.FS.Pwd(), step.input)
			if _, err := command.Dispatch(s, step.input); err != nil {
				fmt.Fprintln(opts.Out, err)
			}
		}

		fmt.Fprintln(opts.Out, "\nThat's the basics. Type help at any time to see every command.")
		return nil
	}
}
