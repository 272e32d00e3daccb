package gbctc

import (
	"image"
	"image/color"

	"github.com/bodgit/gbctc/rgb15"
)

var (
	black = color.NRGBA{0x00, 0x00, 0x00, 0xff}
	white = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	red   = color.NRGBA{0xff, 0x00, 0x00, 0xff}
	green = color.NRGBA{0x00, 0xff, 0x00, 0xff}
	blue  = color.NRGBA{0x00, 0x00, 0xff, 0xff}
)

func pack(c color.NRGBA) uint32 {
	return rgb15.Pack(c.R, c.G, c.B, c.A)
}

// newBitmap returns a bitmap filled with c
func newBitmap(width, height int, c color.NRGBA) *Bitmap {
	b := &Bitmap{
		Pix:    make([]uint32, width*height),
		Width:  width,
		Height: height,
	}
	for i := range b.Pix {
		b.Pix[i] = pack(c)
	}
	return b
}

func (b *Bitmap) set(x, y int, c color.NRGBA) {
	b.Pix[y*b.Width+x] = pack(c)
}

// fillTile paints the tile at (tx, ty) using rows of indices into colors
func (b *Bitmap) fillTile(tx, ty int, rows [8]string, colors ...color.NRGBA) {
	for y, row := range rows {
		for x := 0; x < 8; x++ {
			b.set(tx*8+x, ty*8+y, colors[row[x]-'0'])
		}
	}
}

// newImage returns an NRGBA image filled with c
func newImage(width, height int, c color.NRGBA) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.SetNRGBA(x, y, c)
		}
	}
	return m
}
