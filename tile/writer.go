package tile

import (
	"errors"

	"github.com/bodgit/gbctc/rgb15"
)

var errColorNotFound = errors.New("tile: color not in palette")

// Indexer maps a color to its position within a palette.
type Indexer interface {
	Index(rgb15.Color) int
}

// Encode converts 64 pixels in row-major order into a tile using the
// indices of their colors in p. Every pixel color must be present in p.
func Encode(pix *[Pixels]rgb15.Color, p Indexer) (Tile, error) {
	var t Tile
	for y := 0; y < Height; y++ {
		var lower, upper byte
		for x := 0; x < Width; x++ {
			i := p.Index(pix[y*Width+x])
			if i < 0 || i > 3 {
				return Tile{}, errColorNotFound
			}
			lower = lower<<1 | byte(i&1)
			upper = upper<<1 | byte(i&2)>>1
		}
		t[2*y] = lower
		t[2*y+1] = upper
	}
	return t, nil
}
