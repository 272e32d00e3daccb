package gbctc

import (
	"image"
	"image/color"

	"github.com/bodgit/gbctc/rgb15"
	"github.com/bodgit/gbctc/tile"
)

// Bitmap is a decoded image. Each pixel is a 32-bit color with red in the
// lowest byte, then green, blue and alpha.
type Bitmap struct {
	Pix    []uint32
	Width  int
	Height int
}

// FromImage converts m into a Bitmap. The top-left corner of m becomes
// (0, 0).
func FromImage(m image.Image) *Bitmap {
	r := m.Bounds()
	b := &Bitmap{
		Pix:    make([]uint32, r.Dx()*r.Dy()),
		Width:  r.Dx(),
		Height: r.Dy(),
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
			b.Pix[(y-r.Min.Y)*b.Width+x-r.Min.X] = rgb15.Pack(c.R, c.G, c.B, c.A)
		}
	}
	return b
}

func (b *Bitmap) check() error {
	if b.Width <= 0 || b.Height <= 0 || b.Width%tile.Width != 0 || b.Height%tile.Height != 0 {
		return &DimensionError{Width: b.Width, Height: b.Height, reason: "width and height must be non-zero multiples of 8"}
	}
	if len(b.Pix) != b.Width*b.Height {
		return &DimensionError{Width: b.Width, Height: b.Height, reason: "pixel data does not match dimensions"}
	}
	if b.Width/tile.Width > MapWidth || b.Height/tile.Height > MapHeight {
		return &DimensionError{Width: b.Width, Height: b.Height, reason: "image is larger than the 256 by 256 tile map"}
	}
	return nil
}

// tileColors returns the distinct raw colors of the tile at (tx, ty) in the
// order they are first seen.
func (b *Bitmap) tileColors(tx, ty int) ([]uint32, error) {
	colors := make([]uint32, 0, 4)
	for y := 0; y < tile.Height; y++ {
		for x := 0; x < tile.Width; x++ {
			px := b.Pix[(ty*tile.Height+y)*b.Width+tx*tile.Width+x]
			found := false
			for _, c := range colors {
				if c == px {
					found = true
					break
				}
			}
			if found {
				continue
			}
			if len(colors) == 4 {
				err := &TooManyColorsError{X: tx, Y: ty}
				copy(err.Colors[:], colors)
				err.Colors[4] = px
				return nil, err
			}
			colors = append(colors, px)
		}
	}
	return colors, nil
}

// tilePixels returns the quantized pixels of the tile at (tx, ty).
func (b *Bitmap) tilePixels(tx, ty int) *[tile.Pixels]rgb15.Color {
	var pix [tile.Pixels]rgb15.Color
	for y := 0; y < tile.Height; y++ {
		for x := 0; x < tile.Width; x++ {
			pix[y*tile.Width+x] = rgb15.Quantize(b.Pix[(ty*tile.Height+y)*b.Width+tx*tile.Width+x])
		}
	}
	return &pix
}
