package palette

import (
	"testing"

	"github.com/bodgit/gbctc/rgb15"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func colors(c ...rgb15.Color) []rgb15.Color {
	return c
}

func TestAssignReuse(t *testing.T) {
	a := NewAllocator()

	i, err := a.Assign(colors(1, 2))
	require.Nil(t, err)
	assert.Equal(t, 0, i)

	// Subset and overlapping sets merge into palette 0
	i, err = a.Assign(colors(2))
	require.Nil(t, err)
	assert.Equal(t, 0, i)

	i, err = a.Assign(colors(3, 1, 4))
	require.Nil(t, err)
	assert.Equal(t, 0, i)

	// Palette 0 is full
	i, err = a.Assign(colors(5))
	require.Nil(t, err)
	assert.Equal(t, 1, i)

	assert.Equal(t, 2, a.Used())

	p := a.Finalize()
	require.Len(t, p, 2)
	assert.Equal(t, colors(1, 2, 3, 4), p[0].Colors())
	assert.Equal(t, colors(5), p[1].Colors())
}

func TestAssignPartialMerge(t *testing.T) {
	a := NewAllocator()

	_, err := a.Assign(colors(1, 2, 3))
	require.Nil(t, err)

	// 4 fits into palette 0 but 5 does not, so palette 0 keeps 4 and the
	// whole set lands in palette 1
	i, err := a.Assign(colors(4, 5))
	require.Nil(t, err)
	assert.Equal(t, 1, i)

	p := a.Finalize()
	assert.Equal(t, colors(1, 2, 3, 4), p[0].Colors())
	assert.Equal(t, colors(4, 5), p[1].Colors())
}

func TestAssignDuplicateCandidates(t *testing.T) {
	a := NewAllocator()

	i, err := a.Assign(colors(7, 7, 8))
	require.Nil(t, err)
	assert.Equal(t, 0, i)
	assert.Equal(t, colors(7, 8), a.Finalize()[0].Colors())
}

func TestBudgetExhausted(t *testing.T) {
	a := NewAllocator()

	for i := 0; i < MaxPalettes; i++ {
		base := rgb15.Color(i * 4)
		p, err := a.Assign(colors(base, base+1, base+2, base+3))
		require.Nil(t, err)
		assert.Equal(t, i, p)
	}

	_, err := a.Assign(colors(100, 101, 102, 103))
	assert.Equal(t, ErrBudgetExhausted, err)
}

func TestAssignTooMany(t *testing.T) {
	_, err := NewAllocator().Assign(colors(1, 2, 3, 4, 5))
	assert.NotNil(t, err)
}

func TestFinalizeSortsByLuminance(t *testing.T) {
	a := NewAllocator()

	white := rgb15.Color(0x7fff)
	red := rgb15.Color(0x001f)
	blue := rgb15.Color(0x7c00)
	black := rgb15.Color(0x0000)

	_, err := a.Assign(colors(white, red, blue, black))
	require.Nil(t, err)

	// Red and blue tie so keep their discovery order
	assert.Equal(t, colors(black, red, blue, white), a.Finalize()[0].Colors())

	// Finalize doesn't disturb the allocator
	_, err = a.Assign(colors(blue))
	require.Nil(t, err)
}

func TestPalette(t *testing.T) {
	p, err := New(0x7fff, 0x001f)
	require.Nil(t, err)

	assert.Equal(t, 2, p.Len())
	assert.Equal(t, 1, p.Index(0x001f))
	assert.Equal(t, -1, p.Index(0x0000))
	assert.Equal(t, [8]byte{0xff, 0x7f, 0x1f, 0x00, 0, 0, 0, 0}, p.Bytes())

	_, err = New(1, 2, 3, 4, 5)
	assert.NotNil(t, err)
}
