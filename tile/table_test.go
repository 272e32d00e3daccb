package tile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableAdd(t *testing.T) {
	tb := NewTable()

	tile, err := Encode(pixels(arrow), testPalette)
	require.Nil(t, err)

	tables := []struct {
		name         string
		tile         Tile
		index        int
		hflip, vflip bool
	}{
		{"first", tile, 0, false, false},
		{"again", tile, 0, false, false},
		{"hflip", tile.FlipH(), 0, true, false},
		{"vflip", tile.FlipV(), 0, false, false}, // arrow is symmetric top to bottom
		{"both", tile.FlipH().FlipV(), 0, true, false},
		{"blank", Tile{}, 1, false, false},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			i, h, v, err := tb.Add(table.tile)
			require.Nil(t, err)
			assert.Equal(t, table.index, i)
			assert.Equal(t, table.hflip, h)
			assert.Equal(t, table.vflip, v)
		})
	}

	assert.Equal(t, 2, tb.Len())
	assert.Equal(t, []Tile{tile, {}}, tb.Tiles())
}

func TestTableVerticalFlip(t *testing.T) {
	tb := NewTable()

	tile, err := Encode(pixels([Height]string{
		"11111111",
		"12000000",
		"12000000",
		"12000000",
		"00000000",
		"00000000",
		"00000000",
		"00000003",
	}), testPalette)
	require.Nil(t, err)

	_, _, _, err = tb.Add(tile)
	require.Nil(t, err)

	i, h, v, err := tb.Add(tile.FlipV())
	require.Nil(t, err)
	assert.Equal(t, []interface{}{0, false, true}, []interface{}{i, h, v})

	i, h, v, err = tb.Add(tile.FlipV().FlipH())
	require.Nil(t, err)
	assert.Equal(t, []interface{}{0, true, true}, []interface{}{i, h, v})

	assert.Equal(t, 1, tb.Len())
}

func TestTableLowestIndexWins(t *testing.T) {
	tb := NewTable()

	a := Tile{0x01}
	b := a.FlipH()

	// b is only added as a new tile if looked up on its own
	tb.tiles = append(tb.tiles, a, b)
	tb.lookup[a] = 0
	tb.lookup[b] = 1

	// b is an exact match for index 1 but a horizontal flip of index 0
	i, h, v, err := tb.Add(b)
	require.Nil(t, err)
	assert.Equal(t, 0, i)
	assert.True(t, h)
	assert.False(t, v)
}

func TestTableFull(t *testing.T) {
	tb := NewTable()

	for i := 0; i < MaxTiles; i++ {
		// The top left marker pixel stops any two from being flips of
		// each other
		var tile Tile
		tile[0] = 0x80
		tile[2] = byte(i & 0xff)
		tile[4] = byte(i >> 8)
		_, _, _, err := tb.Add(tile)
		require.Nil(t, err)
	}

	_, _, _, err := tb.Add(Tile{0xff, 0x00, 0xff, 0x00, 0xff})
	assert.Equal(t, ErrTableFull, err)
}
