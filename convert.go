package gbctc

import (
	"fmt"

	"github.com/bodgit/gbctc/palette"
	"github.com/bodgit/gbctc/rgb15"
	"github.com/bodgit/gbctc/tile"
)

// Tile numbers wrap past this many tiles
const maxMapTiles = 256

// assignPalettes picks a palette for every tile, left to right, top to
// bottom, and returns the chosen indices along with the sorted palettes.
func (b *Bitmap) assignPalettes() ([]int, []palette.Palette, error) {
	tilesX, tilesY := b.Width/tile.Width, b.Height/tile.Height

	alloc := palette.NewAllocator()
	assigned := make([]int, tilesX*tilesY)

	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			colors, err := b.tileColors(tx, ty)
			if err != nil {
				return nil, nil, err
			}

			candidates := make([]rgb15.Color, len(colors))
			for i, px := range colors {
				candidates[i] = rgb15.Quantize(px)
			}

			p, err := alloc.Assign(candidates)
			if err != nil {
				return nil, nil, fmt.Errorf("gbctc: tile (%d, %d): %w", tx, ty, err)
			}
			assigned[ty*tilesX+tx] = p
		}
	}

	return assigned, alloc.Finalize(), nil
}

// Convert converts b into tile data. Tiles are visited left to right, top
// to bottom, twice: first to assign every tile a palette, then, once the
// palettes are sorted, to encode and deduplicate the tiles.
func (c *Converter) Convert(b *Bitmap) (*Result, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	c.logger.Printf("Converting %dx%d image\n", b.Width, b.Height)

	r := &Result{
		TilesX: b.Width / tile.Width,
		TilesY: b.Height / tile.Height,
	}

	assigned, palettes, err := b.assignPalettes()
	if err != nil {
		return nil, err
	}

	r.Palettes = palettes
	c.logger.Printf("Using %d palettes\n", len(r.Palettes))

	table := tile.NewTable()

	for ty := 0; ty < r.TilesY; ty++ {
		for tx := 0; tx < r.TilesX; tx++ {
			p := assigned[ty*r.TilesX+tx]

			t, err := tile.Encode(b.tilePixels(tx, ty), r.Palettes[p])
			if err != nil {
				return nil, fmt.Errorf("gbctc: tile (%d, %d): %w", tx, ty, err)
			}

			i, hflip, vflip, err := table.Add(t)
			if err != nil {
				return nil, fmt.Errorf("gbctc: tile (%d, %d): %w", tx, ty, err)
			}

			r.Cells[ty*MapWidth+tx] = Cell{
				Tile:    uint16(i),
				Palette: uint8(p),
				HFlip:   hflip,
				VFlip:   vflip,
			}
		}
	}

	r.Tiles = table.Tiles()
	c.logger.Printf("Found %d tiles\n", len(r.Tiles))
	if len(r.Tiles) > maxMapTiles {
		c.logger.Printf("Warning: %d tiles don't fit in one tile map byte, map entries from tile %d wrap around\n", len(r.Tiles), maxMapTiles)
	}

	return r, nil
}

// Convert converts b using a Converter with no cache or logging.
func Convert(b *Bitmap) (*Result, error) {
	return New(nil, nil, false).Convert(b)
}
