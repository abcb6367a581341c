package vfs

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vvka-141/bytecrawl/internal/player"
	"github.com/vvka-141/bytecrawl/pkg/bytecrawl"
)

// Mkdir creates every missing directory along p and returns the last one.
// Existing directories are reused, so calling Mkdir twice is harmless.
// "." and ".." are honored the same way Resolve honors them.
func (fsys *FileSystem) Mkdir(p string) (DirID, error) {
	segs := segments(p)
	if len(segs) == 0 {
		return NoDir, fmt.Errorf("%w: path can not be empty", bytecrawl.ErrInvalidArguments)
	}

	cur := RootID
	if !strings.HasPrefix(p, "/") {
		cwd, err := fsys.Cwd()
		if err != nil {
			return NoDir, err
		}
		cur = cwd
	}

	for _, seg := range segs {
		switch seg {
		case ".":
			continue
		case "..":
			if parent := fsys.nodes[cur].parent; parent != NoDir {
				cur = parent
			}
			continue
		}

		if child, ok := fsys.findDirectory(cur, seg); ok {
			cur = child
			continue
		}

		child, err := fsys.MakeSubdir(cur, seg)
		if err != nil {
			return NoDir, err
		}
		cur = child
	}
	return cur, nil
}

// MakeSubdir creates a single directory named name under parent.
// It fails with ErrDirAlreadyExists when parent already has a child directory
// of that name.
func (fsys *FileSystem) MakeSubdir(parent DirID, name string) (DirID, error) {
	if !fsys.valid(parent) {
		return NoDir, fmt.Errorf("%w: directory #%d", bytecrawl.ErrNotFound, parent)
	}
	if err := validName(name); err != nil {
		return NoDir, err
	}
	if _, exists := fsys.findDirectory(parent, name); exists {
		return NoDir, fmt.Errorf("%w: %s", bytecrawl.ErrDirAlreadyExists, name)
	}

	id := fsys.alloc(name, parent)
	fsys.nodes[parent].children = append(fsys.nodes[parent].children, id)
	return id, nil
}

// Touch adds file to the directory at p. A file with the same name may
// already exist; both are kept and lookups find the older one first.
func (fsys *FileSystem) Touch(p string, file File) error {
	if err := validName(file.Name); err != nil {
		return err
	}
	if file.Content == nil {
		return fmt.Errorf("%w: file %q has no content", bytecrawl.ErrInvalidArguments, file.Name)
	}

	dir, err := fsys.ResolvePath(p)
	if err != nil {
		return err
	}
	fsys.nodes[dir].files = append(fsys.nodes[dir].files, file)
	return nil
}

// Stat returns a copy of the file at p.
func (fsys *FileSystem) Stat(p string) (File, error) {
	dir, idx, err := fsys.locateFile(p)
	if err != nil {
		return File{}, err
	}
	return fsys.nodes[dir].files[idx], nil
}

// Cat returns the name and text of the file at p.
func (fsys *FileSystem) Cat(p string) (name, text string, err error) {
	file, err := fsys.Stat(p)
	if err != nil {
		return "", "", err
	}

	switch c := file.Content.(type) {
	case Text:
		return file.Name, c.Body, nil
	case Executable, Shop:
		return "", "", fmt.Errorf("%w: %s", bytecrawl.ErrNotReadable, file.Name)
	default:
		return "", "", fmt.Errorf("%w: %s has unknown content", bytecrawl.ErrNotReadable, file.Name)
	}
}

// EditFile replaces the content of the file at p.
func (fsys *FileSystem) EditFile(p string, content Content) error {
	if content == nil {
		return fmt.Errorf("%w: no content", bytecrawl.ErrInvalidArguments)
	}
	dir, idx, err := fsys.locateFile(p)
	if err != nil {
		return err
	}
	fsys.nodes[dir].files[idx].Content = content
	return nil
}

// Run invokes the program bound to the executable file at p. The program gets
// the filesystem, the player and args, and may change any of them.
func (fsys *FileSystem) Run(p string, pl *player.Player, args []string) error {
	file, err := fsys.Stat(p)
	if err != nil {
		return err
	}

	switch c := file.Content.(type) {
	case Executable:
		prog, ok := fsys.programs.Lookup(c.Program)
		if !ok {
			return fmt.Errorf("%w: %s: program %q is not installed", bytecrawl.ErrNotExecutable, file.Name, c.Program)
		}
		return prog.Invoke(fsys, pl, args)
	case Text, Shop:
		return fmt.Errorf("%w: %s", bytecrawl.ErrNotExecutable, file.Name)
	default:
		return fmt.Errorf("%w: %s has unknown content", bytecrawl.ErrNotExecutable, file.Name)
	}
}

// RmFile removes the first file matching p.
func (fsys *FileSystem) RmFile(p string) error {
	dir, idx, err := fsys.locateFile(p)
	if err != nil {
		return err
	}
	fsys.nodes[dir].files = slices.Delete(fsys.nodes[dir].files, idx, idx+1)
	return nil
}

// RmDir removes the directory at p together with everything below it.
// If the current directory was inside the removed subtree it moves to the
// removed directory's parent.
func (fsys *FileSystem) RmDir(p string) error {
	parentPath, name, err := SplitFileAndParent(p)
	if err != nil {
		return err
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%w: can not remove %q", bytecrawl.ErrInvalidArguments, name)
	}

	parent, err := fsys.ResolvePath(parentPath)
	if err != nil {
		return err
	}
	target, ok := fsys.findDirectory(parent, name)
	if !ok {
		return fmt.Errorf("%w: no directory %q in %s", bytecrawl.ErrNotFound, name, fsys.path(parent))
	}

	removed := fsys.path(target)
	children := fsys.nodes[parent].children
	fsys.nodes[parent].children = slices.DeleteFunc(children, func(id DirID) bool { return id == target })
	fsys.release(target)

	if fsys.cwd == removed || strings.HasPrefix(fsys.cwd, removed+"/") {
		fsys.cwd = fsys.path(parent)
	}
	return nil
}

func (fsys *FileSystem) locateFile(p string) (DirID, int, error) {
	parentPath, name, err := SplitFileAndParent(p)
	if err != nil {
		return NoDir, -1, err
	}
	dir, err := fsys.ResolvePath(parentPath)
	if err != nil {
		return NoDir, -1, err
	}
	idx, ok := fsys.findFile(dir, name)
	if !ok {
		return NoDir, -1, fmt.Errorf("%w: no file %q in %s", bytecrawl.ErrNotFound, name, fsys.path(dir))
	}
	return dir, idx, nil
}
