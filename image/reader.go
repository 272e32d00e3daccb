package image

import (
	"errors"
	"image"
	"image/color"
	"io"
	"io/ioutil"

	"github.com/bodgit/gbctc"
	"github.com/bodgit/gbctc/rgb15"
)

var errEmpty = errors.New("image: no tiles")

type decoder struct {
	result gbctc.Result

	image   *image.Paletted
	palette color.Palette
}

func (d *decoder) readResult(r io.Reader) error {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return err
	}
	if err := d.result.UnmarshalBinary(b); err != nil {
		return err
	}
	if d.result.TilesX == 0 || d.result.TilesY == 0 || len(d.result.Tiles) == 0 || len(d.result.Palettes) == 0 {
		return errEmpty
	}
	return nil
}

func (d *decoder) readPalette() {
	d.palette = make(color.Palette, colorsPerPalette*len(d.result.Palettes))
	for i, p := range d.result.Palettes {
		colors := p.Colors()
		for j := 0; j < colorsPerPalette; j++ {
			// Unused entries are black, as written by the encoder
			c := rgb15.Color(0)
			if j < len(colors) {
				c = colors[j]
			}
			d.palette[i*colorsPerPalette+j] = c
		}
	}
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	if err := d.readResult(r); err != nil {
		return err
	}

	d.readPalette()

	if configOnly {
		return nil
	}

	d.image = image.NewPaletted(image.Rect(0, 0, d.result.TilesX*tileWidth, d.result.TilesY*tileHeight), d.palette)

	for ty := 0; ty < d.result.TilesY; ty++ {
		for tx := 0; tx < d.result.TilesX; tx++ {
			cell := d.result.Cells[ty*gbctc.MapWidth+tx]

			t := d.result.Tiles[cell.Tile]
			if cell.HFlip {
				t = t.FlipH()
			}
			if cell.VFlip {
				t = t.FlipV()
			}

			p := cell.Palette * colorsPerPalette

			for y := 0; y < tileHeight; y++ {
				for x := 0; x < tileWidth; x++ {
					d.image.SetColorIndex(tx*tileWidth+x, ty*tileHeight+y, p+t.ColorIndexAt(x, y))
				}
			}
		}
	}

	return nil
}

// Decode reads converted tile data from r and returns it as an image.Image.
func Decode(r io.Reader) (image.Image, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.image, nil
}

// DecodeConfig returns the color model and dimensions of converted tile data
// without rendering the entire image.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: d.palette,
		Width:      d.result.TilesX * tileWidth,
		Height:     d.result.TilesY * tileHeight,
	}, nil
}
