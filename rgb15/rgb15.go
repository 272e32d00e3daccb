/*
Package rgb15 implements the 15-bit color encoding used by the Game Boy
Color.

Each color is packed into 16 bits as 0BBBBBGGGGGRRRRR and stored in memory
little-endian. Source colors are 32-bit values with red in the lowest byte,
green in the next and blue in the third; any alpha in the top byte is
ignored.
*/
package rgb15

import (
	"image/color"
)

// Color is a packed 15-bit Game Boy Color value. It implements the
// color.Color interface.
type Color uint16

// Quantize converts a 32-bit source color to a Color by keeping the top five
// bits of each 8-bit channel.
func Quantize(c uint32) Color {
	r := c >> 3 & 0x1f
	g := c >> 11 & 0x1f
	b := c >> 19 & 0x1f

	return Color(r | g<<5 | b<<10)
}

// Pack builds a 32-bit source color from its 8-bit channels.
func Pack(r, g, b, a uint8) uint32 {
	return uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24
}

// R returns the 5-bit red channel.
func (c Color) R() uint8 { return uint8(c & 0x1f) }

// G returns the 5-bit green channel.
func (c Color) G() uint8 { return uint8(c >> 5 & 0x1f) }

// B returns the 5-bit blue channel.
func (c Color) B() uint8 { return uint8(c >> 10 & 0x1f) }

// Luminance returns the sum of the three 5-bit channels.
func (c Color) Luminance() int {
	return int(c.R()) + int(c.G()) + int(c.B())
}

// Bytes returns the color in the little-endian order used by the hardware
// palette registers.
func (c Color) Bytes() [2]byte {
	return [2]byte{byte(c), byte(c >> 8)}
}

// FromBytes is the inverse of Bytes. Bit 15 is discarded.
func FromBytes(lo, hi byte) Color {
	return Color(uint16(lo)|uint16(hi)<<8) & 0x7fff
}

func expand(v uint8) uint32 {
	// Replicate the five bits across 16
	x := uint32(v)
	return x<<11 | x<<6 | x<<1 | x>>4
}

// RGBA implements color.Color. The color is always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return expand(c.R()), expand(c.G()), expand(c.B()), 0xffff
}

// Model converts any color.Color to a Color.
var Model color.Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Quantize(Pack(n.R, n.G, n.B, n.A))
}
