package tile

import (
	"errors"
)

// MaxTiles is the capacity of a Table
const MaxTiles = 1024

// ErrTableFull is returned when a new tile is needed but the table has no
// space left.
var ErrTableFull = errors.New("tile: table full")

type orientation struct {
	hflip, vflip bool
}

// Orientations in order of precedence
var orientations = [...]orientation{
	{false, false},
	{true, false},
	{false, true},
	{true, true},
}

func (o orientation) apply(t Tile) Tile {
	if o.hflip {
		t = t.FlipH()
	}
	if o.vflip {
		t = t.FlipV()
	}
	return t
}

// Table is an append-only list of unique tiles. A tile that is a mirror
// image of one already stored is not stored again.
type Table struct {
	tiles  []Tile
	lookup map[Tile]int
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{
		lookup: make(map[Tile]int),
	}
}

// Add returns the index of the stored tile matching t along with the flips
// needed to turn the stored tile into t. The lowest index wins, then the
// identity, horizontal, vertical and finally both flips. If nothing matches
// t is appended as is.
func (tb *Table) Add(t Tile) (int, bool, bool, error) {
	best, match := -1, orientation{}
	for _, o := range orientations {
		if i, ok := tb.lookup[o.apply(t)]; ok && (best < 0 || i < best) {
			best, match = i, o
		}
	}
	if best >= 0 {
		return best, match.hflip, match.vflip, nil
	}

	if len(tb.tiles) == MaxTiles {
		return -1, false, false, ErrTableFull
	}
	tb.tiles = append(tb.tiles, t)
	tb.lookup[t] = len(tb.tiles) - 1

	return len(tb.tiles) - 1, false, false, nil
}

// Len returns the number of stored tiles.
func (tb *Table) Len() int {
	return len(tb.tiles)
}

// Tiles returns the stored tiles in index order.
func (tb *Table) Tiles() []Tile {
	return append([]Tile(nil), tb.tiles...)
}
