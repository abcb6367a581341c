// Package shop implements the stores that Shop files point at.
package shop

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/vvka-141/bytecrawl/internal/player"
	"github.com/vvka-141/bytecrawl/pkg/bytecrawl"
)

// Item is something a shop sells. Buying it applies Heal and Score to the player.
type Item struct {
	Name  string `yaml:"name"`
	Price uint32 `yaml:"price"`
	Heal  uint32 `yaml:"heal,omitempty"`
	Score uint32 `yaml:"score,omitempty"`
}

// Describe summarizes what the item does.
func (it Item) Describe() string {
	var effects []string
	if it.Heal > 0 {
		effects = append(effects, fmt.Sprintf("+%d health", it.Heal))
	}
	if it.Score > 0 {
		effects = append(effects, fmt.Sprintf("+%d score", it.Score))
	}
	if len(effects) == 0 {
		return "does nothing"
	}
	return strings.Join(effects, ", ")
}

// Shop is a named store with a fixed stock.
type Shop struct {
	Name  string `yaml:"name"`
	Stock []Item `yaml:"stock"`
}

// Find returns the first stocked item named name.
func (s *Shop) Find(name string) (Item, bool) {
	for _, it := range s.Stock {
		if it.Name == name {
			return it, true
		}
	}
	return Item{}, false
}

// Visit handles one trip to the shop.
//
// Without arguments it prints the greeting and the stock. "buy <item>"
// spends the player's bytes and applies the item. Anything else is an
// ErrInvalidCommandArguments.
func (s *Shop) Visit(p *player.Player, args []string, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprintf(out, "Welcome to the %s shop!\n", s.Name)
		fmt.Fprintf(out, "Run this file again with `buy <item>` to make a purchase.\n")
		fmt.Fprint(out, s.stockTable())
		return nil
	}

	if args[0] != "buy" || len(args) != 2 {
		return fmt.Errorf("%w: usage: buy <item>", bytecrawl.ErrInvalidCommandArguments)
	}

	item, ok := s.Find(args[1])
	if !ok {
		return fmt.Errorf("%w: %s does not sell %q", bytecrawl.ErrUnknownItem, s.Name, args[1])
	}
	if err := p.Spend(item.Price); err != nil {
		return err
	}
	p.Heal(item.Heal)
	p.AddScore(item.Score)

	fmt.Fprintf(out, "You bought %s for %d bytes (%s).\n", item.Name, item.Price, item.Describe())
	return nil
}

func (s *Shop) stockTable() string {
	if len(s.Stock) == 0 {
		return "The shelves are empty.\n"
	}

	width := 0
	for _, it := range s.Stock {
		width = max(width, len(it.Name))
	}

	var b strings.Builder
	for _, it := range s.Stock {
		fmt.Fprintf(&b, "  %-*s %4d bytes  %s\n", width, it.Name, it.Price, it.Describe())
	}
	return b.String()
}

// Registry holds every shop in the world by name.
type Registry struct {
	shops map[string]*Shop
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{shops: make(map[string]*Shop)}
}

// Add registers s, replacing any shop of the same name.
func (r *Registry) Add(s *Shop) {
	r.shops[s.Name] = s
}

// Get returns the shop named name.
func (r *Registry) Get(name string) (*Shop, error) {
	s, ok := r.shops[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", bytecrawl.ErrUnknownShop, name)
	}
	return s, nil
}

// Names returns the registered shop names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.shops))
	for name := range r.shops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
