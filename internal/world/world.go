package world

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/vvka-141/bytecrawl/internal/logging"
	"github.com/vvka-141/bytecrawl/internal/player"
	"github.com/vvka-141/bytecrawl/internal/session"
	"github.com/vvka-141/bytecrawl/internal/shop"
	"github.com/vvka-141/bytecrawl/internal/vfs"
	"github.com/vvka-141/bytecrawl/pkg/bytecrawl"
)

// Options controls how a world is populated and the session built around it.
type Options struct {
	// Debug enables the debug commands in the resulting session.
	Debug bool

	// Tutorial places the /tutorial program at the root.
	Tutorial bool

	// Out receives everything commands and programs print.
	Out io.Writer

	// Logger receives diagnostics.
	Logger bytecrawl.Logger

	// Seed seeds Rand when Rand is nil, and the tutorial's own generator.
	Seed uint64

	// SessionID is passed on to the session. Zero generates one.
	SessionID uuid.UUID

	// Rand drives the gamble. Nil means NewRand(Seed).
	Rand *rand.Rand
}

// NewRand returns a generator for seed. Zero seeds from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func (o Options) withDefaults() Options {
	if o.Out == nil {
		o.Out = io.Discard
	}
	if o.Logger == nil {
		o.Logger = logging.NewNullLogger()
	}
	if o.Rand == nil {
		o.Rand = NewRand(o.Seed)
	}
	return o
}

// New validates layout, populates a filesystem from it and returns a
// session for p. The stats file is written from p's current stats.
func New(layout *Layout, p *player.Player, opts Options) (*session.Session, error) {
	opts = opts.withDefaults()

	programs, err := Programs(opts)
	if err != nil {
		return nil, err
	}
	if err := layout.Validate(programs); err != nil {
		return nil, err
	}

	fsys := vfs.New(vfs.WithPrograms(programs))
	for _, dir := range layout.Directories {
		if _, err := fsys.Mkdir(dir); err != nil {
			return nil, fmt.Errorf("%w: directory %s: %v", bytecrawl.ErrInvalidWorld, dir, err)
		}
	}
	for _, entry := range layout.Files {
		if err := place(fsys, entry.Path, entry.Content()); err != nil {
			return nil, err
		}
	}

	shops := shop.NewRegistry()
	for i := range layout.Shops {
		s := layout.Shops[i]
		shops.Add(&s)
	}

	if err := place(fsys, bytecrawl.StatsFilePath, vfs.Text{Body: p.String()}); err != nil {
		return nil, err
	}
	if opts.Tutorial {
		if err := place(fsys, bytecrawl.TutorialFilePath, vfs.Executable{Program: ProgramTutorial}); err != nil {
			return nil, err
		}
	}

	dirs, files := fsys.Count()
	opts.Logger.Verbose("world populated: %d directories, %d files, shops %v", dirs, files, shops.Names())

	return session.New(fsys, p, shops, session.Config{
		Debug:  opts.Debug,
		Out:    opts.Out,
		Logger: opts.Logger,
		ID:     opts.SessionID,
	}), nil
}

// place creates any missing parents of path and adds the file.
func place(fsys *vfs.FileSystem, path string, content vfs.Content) error {
	parent, name, err := vfs.SplitFileAndParent(path)
	if err != nil {
		return fmt.Errorf("%w: %v", bytecrawl.ErrInvalidWorld, err)
	}
	if parent != "/" {
		if _, err := fsys.Mkdir(parent); err != nil {
			return fmt.Errorf("%w: file %s: %v", bytecrawl.ErrInvalidWorld, path, err)
		}
	}
	if err := fsys.Touch(parent, vfs.File{Name: name, Content: content}); err != nil {
		return fmt.Errorf("%w: file %s: %v", bytecrawl.ErrInvalidWorld, path, err)
	}
	return nil
}
