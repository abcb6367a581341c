package vfs

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vvka-141/bytecrawl/pkg/bytecrawl"
)

// DirID addresses a directory slot in the arena.
type DirID int

const (
	// RootID is the arena slot of the root directory.
	RootID DirID = 0

	// NoDir marks the absent parent of the root and is returned alongside errors.
	NoDir DirID = -1
)

type dirNode struct {
	name     string
	parent   DirID
	children []DirID
	files    []File
	live     bool
}

// FileSystem is an arena of directories rooted at "/" plus the session's
// current directory.
type FileSystem struct {
	nodes    []dirNode
	free     []DirID
	cwd      string
	programs *Registry
}

// Option configures a FileSystem.
type Option func(*FileSystem)

// WithPrograms binds executable content to the programs in r.
func WithPrograms(r *Registry) Option {
	return func(fsys *FileSystem) {
		fsys.programs = r
	}
}

// New creates a filesystem holding only the root directory, with the current
// directory set to "/".
func New(opts ...Option) *FileSystem {
	fsys := &FileSystem{
		nodes: []dirNode{{name: "/", parent: NoDir, live: true}},
		cwd:   "/",
	}
	for _, opt := range opts {
		opt(fsys)
	}
	if fsys.programs == nil {
		fsys.programs = NewRegistry()
	}
	return fsys
}

// Programs returns the registry executable content is resolved against.
func (fsys *FileSystem) Programs() *Registry {
	return fsys.programs
}

// Pwd returns the full path of the current directory.
func (fsys *FileSystem) Pwd() string {
	return fsys.cwd
}

// Cd resolves p and makes it the current directory. The current directory
// is left untouched when resolution fails.
func (fsys *FileSystem) Cd(p string) error {
	id, err := fsys.ResolvePath(p)
	if err != nil {
		return err
	}
	fsys.cwd = fsys.path(id)
	return nil
}

// Cwd resolves the current directory.
func (fsys *FileSystem) Cwd() (DirID, error) {
	id, err := fsys.Resolve(RootID, fsys.cwd)
	if err != nil {
		return NoDir, fmt.Errorf("current directory %s: %w", fsys.cwd, err)
	}
	return id, nil
}

// ResolvePath resolves p against the current directory, or against the root
// when p is absolute.
func (fsys *FileSystem) ResolvePath(p string) (DirID, error) {
	start := RootID
	if !strings.HasPrefix(p, "/") {
		cwd, err := fsys.Cwd()
		if err != nil {
			return NoDir, err
		}
		start = cwd
	}
	return fsys.Resolve(start, p)
}

// Resolve walks p from start and returns the directory it names.
//
// An absolute p starts at the root instead. Empty segments are dropped,
// "." stays put, ".." moves to the parent (and stays put at the root), and
// any other segment must name a child directory. Resolve never creates nodes.
func (fsys *FileSystem) Resolve(start DirID, p string) (DirID, error) {
	if !fsys.valid(start) {
		return NoDir, fmt.Errorf("%w: directory #%d", bytecrawl.ErrNotFound, start)
	}

	cur := Directory{fsys: fsys, id: start}
	if strings.HasPrefix(p, "/") {
		cur = fsys.Root()
	}

	for _, seg := range segments(p) {
		switch seg {
		case ".":
			continue
		case "..":
			if parent, ok := cur.Parent(); ok {
				cur = parent
			}
		default:
			child, ok := cur.FindDirectory(seg)
			if !ok {
				return NoDir, fmt.Errorf("%w: no directory %q in %s", bytecrawl.ErrNotFound, seg, cur.Path())
			}
			cur = child
		}
	}
	return cur.ID(), nil
}

// Root returns a view of the root directory.
func (fsys *FileSystem) Root() Directory {
	return Directory{fsys: fsys, id: RootID}
}

// Dir returns a view of the directory at id.
func (fsys *FileSystem) Dir(id DirID) (Directory, error) {
	if !fsys.valid(id) {
		return Directory{}, fmt.Errorf("%w: directory #%d", bytecrawl.ErrNotFound, id)
	}
	return Directory{fsys: fsys, id: id}, nil
}

// Count reports how many directories (including the root) and files the tree holds.
func (fsys *FileSystem) Count() (dirs, files int) {
	for _, n := range fsys.nodes {
		if n.live {
			dirs++
			files += len(n.files)
		}
	}
	return dirs, files
}

func (fsys *FileSystem) valid(id DirID) bool {
	return id >= 0 && int(id) < len(fsys.nodes) && fsys.nodes[id].live
}

func (fsys *FileSystem) path(id DirID) string {
	if id == RootID {
		return "/"
	}
	var parts []string
	for cur := id; cur != RootID && cur != NoDir; cur = fsys.nodes[cur].parent {
		parts = append(parts, fsys.nodes[cur].name)
	}
	slices.Reverse(parts)
	return "/" + strings.Join(parts, "/")
}

// findDirectory returns the first child of parent named name.
func (fsys *FileSystem) findDirectory(parent DirID, name string) (DirID, bool) {
	for _, child := range fsys.nodes[parent].children {
		if fsys.nodes[child].name == name {
			return child, true
		}
	}
	return NoDir, false
}

// findFile returns the index of the first file in dir named name.
func (fsys *FileSystem) findFile(dir DirID, name string) (int, bool) {
	for i, f := range fsys.nodes[dir].files {
		if f.Name == name {
			return i, true
		}
	}
	return -1, false
}

func (fsys *FileSystem) alloc(name string, parent DirID) DirID {
	node := dirNode{name: name, parent: parent, live: true}
	if n := len(fsys.free); n > 0 {
		id := fsys.free[n-1]
		fsys.free = fsys.free[:n-1]
		fsys.nodes[id] = node
		return id
	}
	fsys.nodes = append(fsys.nodes, node)
	return DirID(len(fsys.nodes) - 1)
}

func (fsys *FileSystem) release(id DirID) {
	for _, child := range fsys.nodes[id].children {
		fsys.release(child)
	}
	fsys.nodes[id] = dirNode{parent: NoDir}
	fsys.free = append(fsys.free, id)
}

// Directory is a read-only view of one directory. It stays valid until the
// directory is removed.
type Directory struct {
	fsys *FileSystem
	id   DirID
}

// ID returns the arena address of the directory.
func (d Directory) ID() DirID { return d.id }

// Name returns the directory's own segment name ("/" for the root).
func (d Directory) Name() string { return d.fsys.nodes[d.id].name }

// Path returns the full path of the directory.
func (d Directory) Path() string { return d.fsys.path(d.id) }

// Parent returns the parent directory. The root has none.
func (d Directory) Parent() (Directory, bool) {
	parent := d.fsys.nodes[d.id].parent
	if parent == NoDir {
		return Directory{}, false
	}
	return Directory{fsys: d.fsys, id: parent}, true
}

// Subdirectories returns the child directories in insertion order.
func (d Directory) Subdirectories() []Directory {
	children := d.fsys.nodes[d.id].children
	out := make([]Directory, len(children))
	for i, child := range children {
		out[i] = Directory{fsys: d.fsys, id: child}
	}
	return out
}

// Files returns a copy of the directory's files in insertion order.
func (d Directory) Files() []File {
	return slices.Clone(d.fsys.nodes[d.id].files)
}

// FindDirectory returns the first child directory named name.
func (d Directory) FindDirectory(name string) (Directory, bool) {
	child, ok := d.fsys.findDirectory(d.id, name)
	if !ok {
		return Directory{}, false
	}
	return Directory{fsys: d.fsys, id: child}, true
}

// FindFile returns the first file named name.
func (d Directory) FindFile(name string) (File, bool) {
	i, ok := d.fsys.findFile(d.id, name)
	if !ok {
		return File{}, false
	}
	return d.fsys.nodes[d.id].files[i], true
}

func (d Directory) String() string {
	return "📁 " + d.Name()
}
