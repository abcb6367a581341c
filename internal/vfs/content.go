package vfs

import "fmt"

// Kind identifies which variant a Content value is.
type Kind int

const (
	// KindText is readable, replaceable text.
	KindText Kind = iota + 1
	// KindExecutable refers to a registered Program.
	KindExecutable
	// KindShop refers to a shop in the shop registry.
	KindShop
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindExecutable:
		return "executable"
	case KindShop:
		return "shop"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Tag is the short label shown next to files in listings.
// Shops are entered like programs, so they share the EXEC tag.
func (k Kind) Tag() string {
	switch k {
	case KindText:
		return "TXT"
	case KindExecutable, KindShop:
		return "EXEC"
	}
	return "?"
}

// Content is what a file holds. The set of implementations is closed:
// Text, Executable and Shop.
type Content interface {
	Kind() Kind
	sealed()
}

// Text is plain text content.
type Text struct {
	Body string
}

// Executable names the Program run when the file is executed.
// It holds no state of its own and can not be edited as text.
type Executable struct {
	Program string
}

// Shop names an entry in the shop registry.
type Shop struct {
	Name string
}

func (Text) Kind() Kind       { return KindText }
func (Executable) Kind() Kind { return KindExecutable }
func (Shop) Kind() Kind       { return KindShop }

func (Text) sealed()       {}
func (Executable) sealed() {}
func (Shop) sealed()       {}

// File is a named piece of content inside a directory.
type File struct {
	Name    string
	Content Content
}

// String renders the file the way listings show it.
func (f File) String() string {
	tag := "?"
	if f.Content != nil {
		tag = f.Content.Kind().Tag()
	}
	return fmt.Sprintf("🗎 %s (%s)", f.Name, tag)
}
