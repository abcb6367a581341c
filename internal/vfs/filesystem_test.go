package vfs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/bytecrawl/pkg/bytecrawl"
)

// newTestTree builds /a/b/c, /a/d and /e.
func newTestTree(t *testing.T) *FileSystem {
	t.Helper()
	fsys := New()
	_, err := fsys.Mkdir("/a/b/c")
	require.NoError(t, err)
	_, err = fsys.Mkdir("/a/d")
	require.NoError(t, err)
	_, err = fsys.Mkdir("/e")
	require.NoError(t, err)
	return fsys
}

// walk follows segments by hand using only the Directory view.
func walk(t *testing.T, fsys *FileSystem, segs ...string) Directory {
	t.Helper()
	cur := fsys.Root()
	for _, seg := range segs {
		switch seg {
		case ".":
		case "..":
			if parent, ok := cur.Parent(); ok {
				cur = parent
			}
		default:
			next, ok := cur.FindDirectory(seg)
			require.True(t, ok, "missing %q under %s", seg, cur.Path())
			cur = next
		}
	}
	return cur
}

func TestNew_Root(t *testing.T) {
	fsys := New()
	root := fsys.Root()

	assert.Equal(t, "/", root.Name())
	assert.Equal(t, "/", root.Path())
	_, hasParent := root.Parent()
	assert.False(t, hasParent)
	assert.Equal(t, "/", fsys.Pwd())
	assert.NotNil(t, fsys.Programs())
}

func TestResolve_MatchesHandWalk(t *testing.T) {
	fsys := newTestTree(t)

	tests := []struct {
		path string
		segs []string
	}{
		{"/", nil},
		{"/a", []string{"a"}},
		{"/a/b/c", []string{"a", "b", "c"}},
		{"/a/./b", []string{"a", ".", "b"}},
		{"/a/b/../d", []string{"a", "b", "..", "d"}},
		{"/a/b/c/../../../e", []string{"a", "b", "c", "..", "..", "..", "e"}},
		{"/../../a", []string{"..", "..", "a"}},
		{"//a///b/", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := fsys.Resolve(RootID, tt.path)
			require.NoError(t, err)
			assert.Equal(t, walk(t, fsys, tt.segs...).ID(), got)
		})
	}
}

func TestResolve_PathRoundTrip(t *testing.T) {
	fsys := newTestTree(t)

	for _, p := range []string{"/a", "/a/b", "/a/b/c", "/a/d", "/e"} {
		id, err := fsys.Resolve(RootID, p)
		require.NoError(t, err)
		dir, err := fsys.Dir(id)
		require.NoError(t, err)
		assert.Equal(t, p, dir.Path())
	}

	require.NoError(t, fsys.Cd("/a"))
	id, err := fsys.ResolvePath("b/c")
	require.NoError(t, err)
	dir, err := fsys.Dir(id)
	require.NoError(t, err)
	assert.Equal(t, "/a/b/c", dir.Path())
}

func TestResolve_RelativeStart(t *testing.T) {
	fsys := newTestTree(t)
	a, err := fsys.Resolve(RootID, "/a")
	require.NoError(t, err)

	got, err := fsys.Resolve(a, "b/c")
	require.NoError(t, err)
	want, _ := fsys.Resolve(RootID, "/a/b/c")
	assert.Equal(t, want, got)

	got, err = fsys.Resolve(a, "/e")
	require.NoError(t, err, "absolute paths ignore the start directory")
	want, _ = fsys.Resolve(RootID, "/e")
	assert.Equal(t, want, got)
}

func TestResolve_NotFound(t *testing.T) {
	fsys := newTestTree(t)

	_, err := fsys.Resolve(RootID, "/a/missing/c")
	require.Error(t, err)
	assert.True(t, errors.Is(err, bytecrawl.ErrNotFound))
	assert.Contains(t, err.Error(), `"missing"`)

	_, err = fsys.Resolve(DirID(999), "a")
	assert.True(t, errors.Is(err, bytecrawl.ErrNotFound))
}

func TestResolve_DoesNotCreate(t *testing.T) {
	fsys := newTestTree(t)
	dirsBefore, filesBefore := fsys.Count()

	_, _ = fsys.Resolve(RootID, "/x/y/z")

	dirsAfter, filesAfter := fsys.Count()
	assert.Equal(t, dirsBefore, dirsAfter)
	assert.Equal(t, filesBefore, filesAfter)
}

func TestResolve_FileIsNotADirectory(t *testing.T) {
	fsys := newTestTree(t)
	require.NoError(t, fsys.Touch("/a", File{Name: "notes", Content: Text{Body: "x"}}))

	_, err := fsys.Resolve(RootID, "/a/notes")
	assert.True(t, errors.Is(err, bytecrawl.ErrNotFound))
}

func TestCd(t *testing.T) {
	fsys := newTestTree(t)

	require.NoError(t, fsys.Cd("/a/b"))
	assert.Equal(t, "/a/b", fsys.Pwd())

	require.NoError(t, fsys.Cd("c"))
	assert.Equal(t, "/a/b/c", fsys.Pwd())

	require.NoError(t, fsys.Cd("../../d"))
	assert.Equal(t, "/a/d", fsys.Pwd())

	require.NoError(t, fsys.Cd(".."))
	require.NoError(t, fsys.Cd(".."))
	require.NoError(t, fsys.Cd(".."))
	assert.Equal(t, "/", fsys.Pwd(), ".. at the root is absorbed")

	err := fsys.Cd("/nowhere")
	assert.True(t, errors.Is(err, bytecrawl.ErrNotFound))
	assert.Equal(t, "/", fsys.Pwd(), "failed cd keeps the current directory")
}

func TestDirectoryView(t *testing.T) {
	fsys := newTestTree(t)
	a := walk(t, fsys, "a")

	subdirs := a.Subdirectories()
	require.Len(t, subdirs, 2)
	assert.Equal(t, "b", subdirs[0].Name())
	assert.Equal(t, "d", subdirs[1].Name())
	assert.Equal(t, "📁 a", a.String())

	parent, ok := a.Parent()
	require.True(t, ok)
	assert.Equal(t, RootID, parent.ID())

	_, ok = a.FindFile("nothing")
	assert.False(t, ok)
}

func TestDirectoryView_FilesIsACopy(t *testing.T) {
	fsys := newTestTree(t)
	require.NoError(t, fsys.Touch("/e", File{Name: "f", Content: Text{Body: "orig"}}))

	files := walk(t, fsys, "e").Files()
	files[0].Content = Text{Body: "changed"}

	_, text, err := fsys.Cat("/e/f")
	require.NoError(t, err)
	assert.Equal(t, "orig", text)
}
