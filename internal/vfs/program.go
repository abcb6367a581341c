package vfs

import (
	"fmt"
	"sort"

	"github.com/vvka-141/bytecrawl/internal/player"
	"github.com/vvka-141/bytecrawl/pkg/bytecrawl"
)

// Program is the behavior behind Executable content.
// It receives the whole filesystem, the player and the arguments that
// followed the invoked path.
type Program interface {
	Invoke(fsys *FileSystem, p *player.Player, args []string) error
}

// ProgramFunc adapts an ordinary function to the Program interface.
type ProgramFunc func(fsys *FileSystem, p *player.Player, args []string) error

// Invoke calls f.
func (f ProgramFunc) Invoke(fsys *FileSystem, p *player.Player, args []string) error {
	return f(fsys, p, args)
}

// Registry maps program names to implementations.
type Registry struct {
	programs map[string]Program
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{programs: make(map[string]Program)}
}

// Register binds name to prog. Names can only be registered once.
func (r *Registry) Register(name string, prog Program) error {
	if name == "" || prog == nil {
		return fmt.Errorf("%w: program needs a name and an implementation", bytecrawl.ErrInvalidArguments)
	}
	if _, exists := r.programs[name]; exists {
		return fmt.Errorf("%w: %s", bytecrawl.ErrDuplicateProgram, name)
	}
	r.programs[name] = prog
	return nil
}

// Lookup returns the program registered under name.
func (r *Registry) Lookup(name string) (Program, bool) {
	prog, ok := r.programs[name]
	return prog, ok
}

// Names returns the registered program names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.programs))
	for name := range r.programs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
