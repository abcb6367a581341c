package vfs

import (
	"strings"
)

// Entry is one line of a directory listing.
type Entry struct {
	Name string
	Dir  bool
	Kind Kind
}

func (e Entry) String() string {
	if e.Dir {
		return "📁 " + e.Name
	}
	return "🗎 " + e.Name + " (" + e.Kind.Tag() + ")"
}

// Listing is the content of one directory: subdirectories first, then
// files, each group in insertion order.
type Listing struct {
	Path    string
	Entries []Entry
}

// String renders the listing with box-drawing prefixes, └─ marking the last
// entry.
func (l Listing) String() string {
	var b strings.Builder
	b.WriteString(l.Path)
	b.WriteString(":")
	for i, e := range l.Entries {
		b.WriteString("\n ")
		b.WriteString(branch(i == len(l.Entries)-1))
		b.WriteString(e.String())
	}
	return b.String()
}

// List returns the listing of the directory at p.
func (fsys *FileSystem) List(p string) (Listing, error) {
	id, err := fsys.ResolvePath(p)
	if err != nil {
		return Listing{}, err
	}
	return fsys.listing(id), nil
}

// Ls renders the listing of the current directory.
func (fsys *FileSystem) Ls() (string, error) {
	id, err := fsys.Cwd()
	if err != nil {
		return "", err
	}
	return fsys.listing(id).String(), nil
}

// Tree renders the directory at p and everything below it.
func (fsys *FileSystem) Tree(p string) (string, error) {
	id, err := fsys.ResolvePath(p)
	if err != nil {
		return "", err
	}

	dir := Directory{fsys: fsys, id: id}
	var b strings.Builder
	b.WriteString(dir.Path())
	fsys.writeTree(&b, dir, "")
	return b.String(), nil
}

func (fsys *FileSystem) writeTree(b *strings.Builder, dir Directory, indent string) {
	subdirs, files := dir.Subdirectories(), dir.Files()
	total := len(subdirs) + len(files)
	n := 0

	for _, child := range subdirs {
		n++
		last := n == total
		b.WriteString("\n")
		b.WriteString(indent)
		b.WriteString(branch(last))
		b.WriteString(child.String())

		next := indent + "│ "
		if last {
			next = indent + "  "
		}
		fsys.writeTree(b, child, next)
	}

	for _, f := range files {
		n++
		b.WriteString("\n")
		b.WriteString(indent)
		b.WriteString(branch(n == total))
		b.WriteString(f.String())
	}
}

func (fsys *FileSystem) listing(id DirID) Listing {
	dir := Directory{fsys: fsys, id: id}
	subdirs, files := dir.Subdirectories(), dir.Files()
	entries := make([]Entry, 0, len(subdirs)+len(files))
	for _, child := range subdirs {
		entries = append(entries, Entry{Name: child.Name(), Dir: true})
	}
	for _, f := range files {
		e := Entry{Name: f.Name}
		if f.Content != nil {
			e.Kind = f.Content.Kind()
		}
		entries = append(entries, e)
	}
	return Listing{Path: dir.Path(), Entries: entries}
}

func branch(last bool) string {
	if last {
		return "└─"
	}
	return "├─"
}
