// Package world populates a fresh filesystem from a YAML layout and wires
// the built-in programs into it.
package world

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/bytecrawl/internal/shop"
	"github.com/vvka-141/bytecrawl/internal/vfs"
	"github.com/vvka-141/bytecrawl/pkg/bytecrawl"
)

//go:embed default_world.yaml
var defaultWorld []byte

// Layout describes the directories, files and shops of a world.
type Layout struct {
	Directories []string    `yaml:"directories"`
	Files       []FileEntry `yaml:"files"`
	Shops       []shop.Shop `yaml:"shops"`
}

// FileEntry places one file. Exactly one of Text, Program and Shop is set.
type FileEntry struct {
	Path    string  `yaml:"path"`
	Text    *string `yaml:"text,omitempty"`
	Program string  `yaml:"program,omitempty"`
	Shop    string  `yaml:"shop,omitempty"`
}

// Content converts the entry into filesystem content.
func (e FileEntry) Content() vfs.Content {
	switch {
	case e.Text != nil:
		return vfs.Text{Body: *e.Text}
	case e.Program != "":
		return vfs.Executable{Program: e.Program}
	default:
		return vfs.Shop{Name: e.Shop}
	}
}

// DefaultLayout returns the built-in world.
func DefaultLayout() (*Layout, error) {
	return Parse(defaultWorld)
}

// LoadLayout reads a layout file. An empty path yields the built-in world.
func LoadLayout(path string) (*Layout, error) {
	if path == "" {
		return DefaultLayout()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %v", bytecrawl.ErrInvalidWorld, path, err)
	}
	return Parse(data)
}

// Parse decodes a layout. Unknown keys are rejected so typos don't
// silently drop content.
func Parse(data []byte) (*Layout, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var layout Layout
	if err := dec.Decode(&layout); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: failed to parse layout: %v", bytecrawl.ErrInvalidWorld, err)
	}
	return &layout, nil
}

// Validate reports every problem in the layout at once. programs holds the
// names that Program entries may refer to.
func (l *Layout) Validate(programs *vfs.Registry) error {
	var result *multierror.Error

	shops := make(map[string]bool, len(l.Shops))
	for i, s := range l.Shops {
		if s.Name == "" {
			result = multierror.Append(result, fmt.Errorf("shops[%d]: name is required", i))
			continue
		}
		if shops[s.Name] {
			result = multierror.Append(result, fmt.Errorf("shops[%d]: duplicate shop %q", i, s.Name))
		}
		shops[s.Name] = true
		for j, it := range s.Stock {
			if it.Name == "" {
				result = multierror.Append(result, fmt.Errorf("shop %q: stock[%d] has no name", s.Name, j))
			}
		}
	}

	for i, dir := range l.Directories {
		if !strings.HasPrefix(dir, "/") {
			result = multierror.Append(result, fmt.Errorf("directories[%d]: %q is not absolute", i, dir))
		}
	}

	for i, f := range l.Files {
		if !strings.HasPrefix(f.Path, "/") {
			result = multierror.Append(result, fmt.Errorf("files[%d]: %q is not absolute", i, f.Path))
		} else if _, _, err := vfs.SplitFileAndParent(f.Path); err != nil {
			result = multierror.Append(result, fmt.Errorf("files[%d]: %w", i, err))
		}

		set := 0
		if f.Text != nil {
			set++
		}
		if f.Program != "" {
			set++
			if _, ok := programs.Lookup(f.Program); !ok {
				result = multierror.Append(result, fmt.Errorf("files[%d]: unknown program %q (known: %s)", i, f.Program, strings.Join(programs.Names(), ", ")))
			}
		}
		if f.Shop != "" {
			set++
			if !shops[f.Shop] {
				result = multierror.Append(result, fmt.Errorf("files[%d]: unknown shop %q", i, f.Shop))
			}
		}
		if set != 1 {
			result = multierror.Append(result, fmt.Errorf("files[%d]: %q must set exactly one of text, program or shop", i, f.Path))
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %v", bytecrawl.ErrInvalidWorld, err)
	}
	return nil
}
