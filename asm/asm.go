/*
Package asm writes converted tile data as assembler source.

Each table is introduced by a label and written as db directives with
hexadecimal operands:

	Palette0:
	  db $FF, $7F
	  ...
	TileData:
	  db $00, $00, ... 16 bytes per tile
	Map:
	  db $80, $81, ... 32 bytes per row, 32 rows
	Attributes:
	  db $00, $20, ... 32 bytes per row, 32 rows
*/
package asm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/bodgit/gbctc"
	"github.com/bodgit/gbctc/palette"
)

func writeBytes(w io.Writer, b []byte) {
	fmt.Fprint(w, "  db ")
	for i, v := range b {
		if i > 0 {
			fmt.Fprint(w, ", ")
		}
		fmt.Fprintf(w, "$%02X", v)
	}
	fmt.Fprintln(w)
}

// Encode writes r to w as assembler source.
func Encode(w io.Writer, r *gbctc.Result) error {
	bw := bufio.NewWriter(w)

	for i, p := range r.Palettes {
		fmt.Fprintf(bw, "Palette%d:\n", i)
		b := p.Bytes()
		for j := 0; j < palette.ColorsPerPalette; j++ {
			writeBytes(bw, b[2*j:2*j+2])
		}
	}

	fmt.Fprintln(bw, "TileData:")
	for _, t := range r.Tiles {
		writeBytes(bw, t[:])
	}

	m := r.Map()
	fmt.Fprintln(bw, "Map:")
	for y := 0; y < gbctc.MapHeight; y++ {
		writeBytes(bw, m[y*gbctc.MapWidth:(y+1)*gbctc.MapWidth])
	}

	a := r.Attributes()
	fmt.Fprintln(bw, "Attributes:")
	for y := 0; y < gbctc.MapHeight; y++ {
		writeBytes(bw, a[y*gbctc.MapWidth:(y+1)*gbctc.MapWidth])
	}

	// Errors are sticky
	return bw.Flush()
}
