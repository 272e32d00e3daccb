package gbctc

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"github.com/bodgit/gbctc/palette"
	"github.com/bodgit/gbctc/rgb15"
	"github.com/bodgit/gbctc/tile"
)

const (
	// MapWidth is the width of the tile map in tiles
	MapWidth = 32
	// MapHeight is the height of the tile map in tiles
	MapHeight = 32
	// MapOffset is added to each tile index written to the map so that
	// index 0 is the first tile at $8800 with signed tile addressing
	MapOffset = 0x80

	headerSize = 5
)

const (
	attrPalette = 0x07
	attrHFlip   = 1 << 5
	attrVFlip   = 1 << 6
)

var (
	errShortData = errors.New("gbctc: insufficient data")
	errLongData  = errors.New("gbctc: too much data")
	errBadResult = errors.New("gbctc: invalid data")
)

// Cell is one entry in the tile map.
type Cell struct {
	Tile    uint16
	Palette uint8
	HFlip   bool
	VFlip   bool
}

// TileNumber returns the byte written to the tile map. Only the low 8 bits
// of the biased index are kept, so tiles 256 and above share map bytes with
// tiles 0 to 255; selecting the right tile data for those is up to the
// caller.
func (c Cell) TileNumber() byte {
	return byte(c.Tile + MapOffset)
}

// Attribute returns the byte written to the attribute map.
func (c Cell) Attribute() byte {
	a := c.Palette & attrPalette
	if c.HFlip {
		a |= attrHFlip
	}
	if c.VFlip {
		a |= attrVFlip
	}
	return a
}

func cellFromAttribute(tile uint16, a byte) Cell {
	return Cell{
		Tile:    tile,
		Palette: a & attrPalette,
		HFlip:   a&attrHFlip != 0,
		VFlip:   a&attrVFlip != 0,
	}
}

// Result is a converted image. It implements the encoding.BinaryMarshaler
// and encoding.BinaryUnmarshaler interfaces.
type Result struct {
	// TilesX and TilesY are the size of the source image in tiles
	TilesX, TilesY int
	Palettes       []palette.Palette
	Tiles          []tile.Tile
	Cells          [MapWidth * MapHeight]Cell
}

// Map returns the tile map, one byte per cell.
func (r *Result) Map() [MapWidth * MapHeight]byte {
	var m [MapWidth * MapHeight]byte
	for i, c := range r.Cells {
		m[i] = c.TileNumber()
	}
	return m
}

// Attributes returns the attribute map, one byte per cell.
func (r *Result) Attributes() [MapWidth * MapHeight]byte {
	var m [MapWidth * MapHeight]byte
	for i, c := range r.Cells {
		m[i] = c.Attribute()
	}
	return m
}

// MarshalBinary encodes the result into binary form and returns it
func (r *Result) MarshalBinary() ([]byte, error) {
	if len(r.Palettes) > palette.MaxPalettes || len(r.Tiles) > tile.MaxTiles || r.TilesX > MapWidth || r.TilesY > MapHeight {
		return nil, errBadResult
	}

	b := new(bytes.Buffer)

	// Write out the header
	b.Write([]byte{byte(r.TilesX), byte(r.TilesY), byte(len(r.Palettes))})
	if err := binary.Write(b, binary.LittleEndian, uint16(len(r.Tiles))); err != nil {
		return nil, err
	}

	// Write out palettes, each prefixed with the number of colors used
	for _, p := range r.Palettes {
		pb := p.Bytes()
		b.WriteByte(byte(p.Len()))
		b.Write(pb[:])
	}

	// Write out tiles
	for _, t := range r.Tiles {
		b.Write(t[:])
	}

	// Write out tile indices
	for _, c := range r.Cells {
		if err := binary.Write(b, binary.LittleEndian, c.Tile); err != nil {
			return nil, err
		}
	}

	// Write out attributes
	a := r.Attributes()
	b.Write(a[:])

	return b.Bytes(), nil
}

// UnmarshalBinary decodes the result from binary form
func (r *Result) UnmarshalBinary(data []byte) error {
	br := bytes.NewReader(data)

	var header [headerSize]byte
	if err := readFull(br, header[:]); err != nil {
		return err
	}

	tilesX, tilesY, numPalettes := int(header[0]), int(header[1]), int(header[2])
	numTiles := int(binary.LittleEndian.Uint16(header[3:]))
	if tilesX > MapWidth || tilesY > MapHeight || numPalettes > palette.MaxPalettes || numTiles > tile.MaxTiles {
		return errBadResult
	}

	palettes := make([]palette.Palette, numPalettes)
	for i := range palettes {
		var tmp [1 + palette.ColorsPerPalette*2]byte
		if err := readFull(br, tmp[:]); err != nil {
			return err
		}
		if tmp[0] > palette.ColorsPerPalette {
			return errBadResult
		}
		colors := make([]rgb15.Color, tmp[0])
		for j := range colors {
			colors[j] = rgb15.FromBytes(tmp[1+2*j], tmp[2+2*j])
		}
		p, err := palette.New(colors...)
		if err != nil {
			return err
		}
		palettes[i] = p
	}

	tiles := make([]tile.Tile, numTiles)
	for i := range tiles {
		if err := readFull(br, tiles[i][:]); err != nil {
			return err
		}
	}

	var indices [MapWidth * MapHeight]uint16
	if err := binary.Read(br, binary.LittleEndian, &indices); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return errShortData
		}
		return err
	}

	var attributes [MapWidth * MapHeight]byte
	if err := readFull(br, attributes[:]); err != nil {
		return err
	}

	if br.Len() > 0 {
		return errLongData
	}

	var cells [MapWidth * MapHeight]Cell
	for i := range cells {
		cells[i] = cellFromAttribute(indices[i], attributes[i])
		if (numTiles > 0 && int(cells[i].Tile) >= numTiles) || (numPalettes > 0 && int(cells[i].Palette) >= numPalettes) {
			return errBadResult
		}
	}

	r.TilesX, r.TilesY = tilesX, tilesY
	r.Palettes = palettes
	r.Tiles = tiles
	r.Cells = cells

	return nil
}

func readFull(r io.Reader, b []byte) error {
	if _, err := io.ReadFull(r, b); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return errShortData
		}
		return err
	}
	return nil
}
