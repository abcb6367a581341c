// Package player holds the mutable stats of the person playing a session.
package player

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/vvka-141/bytecrawl/pkg/bytecrawl"
)

// Stat names accepted by Set and Apply.
const (
	StatHealth = "health"
	StatScore  = "score"
	StatBytes  = "bytes"
)

// Player is the stat block programs and shops act on.
type Player struct {
	Health uint32
	Score  uint32
	Bytes  uint32
}

// New returns a player with full health and nothing else.
func New() *Player {
	return &Player{Health: bytecrawl.DefaultHealth}
}

// Damage lowers health by amount, clamping at zero.
// Returns true if the player dies from the damage.
func (p *Player) Damage(amount uint32) bool {
	if p.Health > amount {
		p.Health -= amount
		return false
	}
	p.Health = 0
	return true
}

// Heal raises health by amount, saturating at math.MaxUint32.
func (p *Player) Heal(amount uint32) {
	p.Health = saturatingAdd(p.Health, amount)
}

// Earn adds bytes to the player's wallet, saturating at math.MaxUint32.
func (p *Player) Earn(amount uint32) {
	p.Bytes = saturatingAdd(p.Bytes, amount)
}

// AddScore raises the score, saturating at math.MaxUint32.
func (p *Player) AddScore(amount uint32) {
	p.Score = saturatingAdd(p.Score, amount)
}

func saturatingAdd(a, b uint32) uint32 {
	if b > math.MaxUint32-a {
		return math.MaxUint32
	}
	return a + b
}

// Spend removes amount bytes, or fails with ErrInsufficientBytes and leaves
// the wallet untouched.
func (p *Player) Spend(amount uint32) error {
	if p.Bytes < amount {
		return fmt.Errorf("%w: need %d, have %d", bytecrawl.ErrInsufficientBytes, amount, p.Bytes)
	}
	p.Bytes -= amount
	return nil
}

// Take removes up to amount bytes and returns how many were actually taken.
func (p *Player) Take(amount uint32) uint32 {
	if p.Bytes < amount {
		taken := p.Bytes
		p.Bytes = 0
		return taken
	}
	p.Bytes -= amount
	return amount
}

// Set assigns a single stat by name.
func (p *Player) Set(stat string, value uint32) error {
	switch stat {
	case StatHealth:
		p.Health = value
	case StatScore:
		p.Score = value
	case StatBytes:
		p.Bytes = value
	default:
		return fmt.Errorf("%w: %q (expected %s, %s or %s)", bytecrawl.ErrUnknownStat, stat, StatHealth, StatScore, StatBytes)
	}
	return nil
}

// Apply sets every stat in overrides, parsing values as unsigned integers.
// Keys are applied in sorted order so the first reported error is stable.
func (p *Player) Apply(overrides map[string]string) error {
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		value, err := strconv.ParseUint(overrides[k], 10, 32)
		if err != nil {
			return fmt.Errorf("stat %q: invalid value %q: %w", k, overrides[k], bytecrawl.ErrInvalidArguments)
		}
		if err := p.Set(k, uint32(value)); err != nil {
			return err
		}
	}
	return nil
}

// String renders the stats the way the /stats file shows them.
func (p *Player) String() string {
	return fmt.Sprintf("Health: %d\nScore: %d\nBytes: %d", p.Health, p.Score, p.Bytes)
}
