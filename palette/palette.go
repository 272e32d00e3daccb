/*
Package palette allocates the shared Game Boy Color background palettes.

Up to eight palettes of four colors each are available to a whole image.
Tiles are assigned greedily in the order they are presented: each tile's
colors are merged into the first palette that already holds them or still
has room for them. The result depends on tile order and is not optimal, it
only guarantees a feasible assignment when one is found.
*/
package palette

import (
	"errors"
	"sort"

	"github.com/bodgit/gbctc/rgb15"
)

const (
	// MaxPalettes is the number of palettes available
	MaxPalettes = 8
	// ColorsPerPalette is the number of colors in each palette
	ColorsPerPalette = 4
)

// ErrBudgetExhausted is returned when no palette can absorb a set of colors.
var ErrBudgetExhausted = errors.New("palette: budget exhausted")

var errTooManyColors = errors.New("palette: too many colors")

// Palette is an ordered sequence of up to four colors.
type Palette struct {
	colors [ColorsPerPalette]rgb15.Color
	n      int
}

// New returns a palette holding the given colors.
func New(colors ...rgb15.Color) (Palette, error) {
	var p Palette
	if len(colors) > ColorsPerPalette {
		return p, errTooManyColors
	}
	p.n = copy(p.colors[:], colors)
	return p, nil
}

// Len returns the number of colors in use.
func (p Palette) Len() int {
	return p.n
}

// Colors returns the colors in use.
func (p Palette) Colors() []rgb15.Color {
	return append([]rgb15.Color(nil), p.colors[:p.n]...)
}

// Index returns the position of c in the palette, or -1.
func (p Palette) Index(c rgb15.Color) int {
	for i := 0; i < p.n; i++ {
		if p.colors[i] == c {
			return i
		}
	}
	return -1
}

// Bytes returns all four entries in hardware order. Unused entries are
// zero.
func (p Palette) Bytes() [ColorsPerPalette * 2]byte {
	var b [ColorsPerPalette * 2]byte
	for i, c := range p.colors {
		cb := c.Bytes()
		b[2*i], b[2*i+1] = cb[0], cb[1]
	}
	return b
}

// merge adds any of the candidate colors not already present. Colors are
// added in order until one doesn't fit; those already added stay.
func (p *Palette) merge(candidates []rgb15.Color) bool {
	for _, c := range candidates {
		if p.Index(c) >= 0 {
			continue
		}
		if p.n == ColorsPerPalette {
			return false
		}
		p.colors[p.n] = c
		p.n++
	}
	return true
}

// sort orders the colors by ascending luminance, keeping the discovery
// order for equal values.
func (p *Palette) sort() {
	c := p.colors[:p.n]
	sort.SliceStable(c, func(i, j int) bool {
		return c[i].Luminance() < c[j].Luminance()
	})
}

// Allocator assigns color sets to palettes.
type Allocator struct {
	palettes [MaxPalettes]Palette
	used     int
}

// NewAllocator returns an empty Allocator.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Assign returns the index of the first palette that holds, or can be
// extended to hold, all of the candidate colors.
func (a *Allocator) Assign(candidates []rgb15.Color) (int, error) {
	if len(candidates) > ColorsPerPalette {
		return -1, errTooManyColors
	}
	for i := range a.palettes {
		if a.palettes[i].merge(candidates) {
			if i >= a.used {
				a.used = i + 1
			}
			return i, nil
		}
	}
	return -1, ErrBudgetExhausted
}

// Used returns one more than the highest palette index assigned so far.
func (a *Allocator) Used() int {
	return a.used
}

// Finalize returns the palettes up to the highest one assigned, each sorted
// by luminance.
func (a *Allocator) Finalize() []Palette {
	out := make([]Palette, a.used)
	for i := range out {
		out[i] = a.palettes[i]
		out[i].sort()
	}
	return out
}
