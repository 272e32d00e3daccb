package gbctc

import (
	"image"
	"image/color"
	"image/draw"
	"sort"

	"github.com/bodgit/gbctc/palette"
	"github.com/bodgit/gbctc/tile"
	"github.com/ericpauley/go-quantize/quantize"
)

const maxColors = palette.MaxPalettes * palette.ColorsPerPalette

// distinctColors returns every color used in m.
func distinctColors(m image.Image) color.Palette {
	b := m.Bounds()
	seen := make(map[color.Color]struct{})
	p := color.Palette{}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := m.At(x, y)
			if _, ok := seen[c]; !ok {
				seen[c] = struct{}{}
				p = append(p, c)
			}
		}
	}
	return p
}

// indexCounts returns how many pixels within r use each palette index.
func indexCounts(m *image.Paletted, r image.Rectangle) map[uint8]int {
	counts := make(map[uint8]int)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := m.PixOffset(r.Min.X, y)
		for _, ci := range m.Pix[i : i+r.Dx()] {
			counts[ci]++
		}
	}
	return counts
}

func distance(c1, c2 color.Color) uint64 {
	r1, g1, b1, a1 := c1.RGBA()
	r2, g2, b2, a2 := c2.RGBA()
	var sum uint64
	for _, d := range [...]int64{int64(r1) - int64(r2), int64(g1) - int64(g2), int64(b1) - int64(b2), int64(a1) - int64(a2)} {
		sum += uint64(d * d)
	}
	return sum
}

// closestPair returns the two indices whose palette colors are nearest.
func closestPair(p color.Palette, indices []uint8) (uint8, uint8) {
	var i1, i2 uint8
	best := ^uint64(0)
	for i, a := range indices {
		for _, b := range indices[i+1:] {
			if d := distance(p[a], p[b]); d < best {
				best, i1, i2 = d, a, b
			}
		}
	}
	return i1, i2
}

// replaceIndex repoints every pixel using index o at index n.
func replaceIndex(m *image.Paletted, o, n uint8) {
	for i, ci := range m.Pix {
		if ci == o {
			m.Pix[i] = n
		}
	}
}

// mergeTiles draws m using p, then merges the closest colors of every tile
// until each uses no more than four. The color used by more pixels across
// the whole image survives each merge.
func mergeTiles(m image.Image, p color.Palette) *image.Paletted {
	b := m.Bounds()

	dup := image.NewPaletted(b, p)
	draw.Draw(dup, b, m, b.Min, draw.Src)

	global := indexCounts(dup, b)

	for ty := b.Min.Y; ty < b.Max.Y; ty += tile.Height {
		for tx := b.Min.X; tx < b.Max.X; tx += tile.Width {
			r := image.Rect(tx, ty, tx+tile.Width, ty+tile.Height).Intersect(b)

			used := make([]uint8, 0, len(p))
			for ci := range indexCounts(dup, r) {
				used = append(used, ci)
			}
			sort.Slice(used, func(i, j int) bool { return used[i] < used[j] })

			for len(used) > palette.ColorsPerPalette {
				keep, drop := closestPair(dup.Palette, used)
				if global[keep] < global[drop] {
					keep, drop = drop, keep
				}
				replaceIndex(dup, drop, keep)
				global[keep] += global[drop]
				delete(global, drop)

				for i, ci := range used {
					if ci == drop {
						used = append(used[:i], used[i+1:]...)
						break
					}
				}
			}
		}
	}

	return dup
}

// fitsPalettes reports whether m can be converted without running out of
// palettes. Images that can't be split into tiles are left for Convert to
// reject.
func fitsPalettes(m image.Image) bool {
	b := FromImage(m)
	if b.check() != nil {
		return true
	}
	_, _, err := b.assignPalettes()
	return err == nil
}

// Reduce returns a copy of m where no tile uses more than four colors and
// all tiles fit into the available palettes. The image is quantized to
// progressively fewer colors, starting with as many as all of the palettes
// can hold, until the palettes can be allocated.
func Reduce(m image.Image) *image.Paletted {
	colors := distinctColors(m)

	max := maxColors
	if len(colors) < max {
		max = len(colors)
	}

	q := quantize.MedianCutQuantizer{}

	for i := max; ; i-- {
		p := colors
		if len(colors) > i {
			p = q.Quantize(make(color.Palette, 0, i), m)
		}

		dup := mergeTiles(m, p)
		if i <= palette.ColorsPerPalette || fitsPalettes(dup) {
			return dup
		}
	}
}
