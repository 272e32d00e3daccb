/*
Package image implements a decoder and encoder for converted Game Boy Color
tile data.

The encoder converts an image into at most eight 4 color palettes, a table
of unique 2bpp tiles and a 32 by 32 tile map and attribute map, and writes
them in the binary form produced by gbctc.Result.MarshalBinary.

The decoder renders that binary form back into a paletted image the size of
the original, where palette p occupies color indices 4p to 4p+3. Colors are
reproduced at the 5 bits per channel the hardware supports.
*/
package image

import (
	"github.com/bodgit/gbctc/palette"
	"github.com/bodgit/gbctc/tile"
)

const (
	tileWidth        = tile.Width
	tileHeight       = tile.Height
	colorsPerPalette = palette.ColorsPerPalette
)
