package gbctc

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	cache, err := NewCache(filepath.Join(t.TempDir(), "cache.db"))
	require.Nil(t, err)
	defer cache.Close()

	r, err := cache.Find("DEADBEEF", false)
	require.Nil(t, err)
	assert.Nil(t, r)

	want := testResult(t)
	require.Nil(t, cache.Add("DEADBEEF", false, want))

	r, err = cache.Find("DEADBEEF", false)
	require.Nil(t, err)
	assert.Equal(t, want, r)

	// Reduced conversions are cached separately
	r, err = cache.Find("DEADBEEF", true)
	require.Nil(t, err)
	assert.Nil(t, r)

	// Replacing is allowed
	require.Nil(t, cache.Add("DEADBEEF", false, want))
}
