package gbctc

import (
	"fmt"
	"strings"
)

// DimensionError is returned when an image can't be split into tiles or
// doesn't fit in the tile map.
type DimensionError struct {
	Width, Height int
	reason        string
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("gbctc: bad dimensions %dx%d: %s", e.Width, e.Height, e.reason)
}

// TooManyColorsError is returned when a tile uses more than four colors.
// Colors holds the first four colors found and the fifth that caused the
// error.
type TooManyColorsError struct {
	X, Y   int
	Colors [5]uint32
}

func (e *TooManyColorsError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "gbctc: more than 4 colors in tile (%d, %d):", e.X, e.Y)
	for i, c := range e.Colors {
		fmt.Fprintf(&b, " %d: 0x%08X", i, c)
	}
	return b.String()
}
