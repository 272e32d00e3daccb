/*
Package tile implements the Game Boy 2bpp tile encoding and a table of
unique tiles.

A tile is 8 by 8 pixels where each pixel is a 2-bit index into a four color
palette. Each row is stored as two bytes; the first holds bit 0 of every
pixel and the second holds bit 1, with the leftmost pixel in the most
significant bit. A tile is therefore 16 bytes.
*/
package tile

import (
	"math/bits"
)

const (
	// Width is the width of a tile in pixels
	Width = 8
	// Height is the height of a tile in pixels
	Height = Width
	// Pixels is the number of pixels in a tile
	Pixels = Width * Height
	// Size is the encoded size of a tile in bytes
	Size = Height * 2
)

// Tile is an encoded 2bpp tile.
type Tile [Size]byte

// ColorIndexAt returns the palette index of the pixel at (x, y).
func (t Tile) ColorIndexAt(x, y int) uint8 {
	shift := uint(Width - 1 - x)
	lo := t[2*y] >> shift & 1
	hi := t[2*y+1] >> shift & 1
	return hi<<1 | lo
}

// FlipH returns the tile mirrored left to right.
func (t Tile) FlipH() Tile {
	var f Tile
	for i, b := range t {
		f[i] = bits.Reverse8(b)
	}
	return f
}

// FlipV returns the tile mirrored top to bottom.
func (t Tile) FlipV() Tile {
	var f Tile
	for y := 0; y < Height; y++ {
		f[2*y] = t[2*(Height-1-y)]
		f[2*y+1] = t[2*(Height-1-y)+1]
	}
	return f
}
