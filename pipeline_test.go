package gbctc

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertDir(t *testing.T) {
	dir := t.TempDir()
	require.Nil(t, os.MkdirAll(filepath.Join(dir, "sub"), 0755))
	require.Nil(t, os.MkdirAll(filepath.Join(dir, ".hidden"), 0755))

	m := newImage(8, 8, black)
	writePNG(t, filepath.Join(dir, "a.png"), m)
	writePNG(t, filepath.Join(dir, "sub", "b.PNG"), m)
	writePNG(t, filepath.Join(dir, ".hidden", "c.png"), m)
	writePNG(t, filepath.Join(dir, "d.txt"), m)

	var mu sync.Mutex
	var files []string

	err := New(nil, nil, false).ConvertDir(dir, func(file string, r *Result) error {
		mu.Lock()
		defer mu.Unlock()
		rel, err := filepath.Rel(dir, file)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	require.Nil(t, err)

	sort.Strings(files)
	assert.Equal(t, []string{"a.png", filepath.Join("sub", "b.PNG")}, files)
}

func TestConvertDirError(t *testing.T) {
	dir := t.TempDir()

	m := newImage(12, 8, black)
	writePNG(t, filepath.Join(dir, "odd.png"), m)

	err := New(nil, nil, false).ConvertDir(dir, func(string, *Result) error {
		return nil
	})
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "odd.png")
}

func TestConvertDirStopsAfterError(t *testing.T) {
	dir := t.TempDir()

	writePNG(t, filepath.Join(dir, "000.png"), newImage(12, 8, black))
	m := newImage(128, 128, black)
	for i := 1; i < 50; i++ {
		writePNG(t, filepath.Join(dir, fmt.Sprintf("%03d.png", i)), m)
	}

	var returned, late int32
	err := New(nil, nil, false).ConvertDir(dir, func(string, *Result) error {
		if atomic.LoadInt32(&returned) == 1 {
			atomic.AddInt32(&late, 1)
		}
		return nil
	})
	atomic.StoreInt32(&returned, 1)

	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "000.png")

	// Give any straggling worker a chance to call back
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&late))
}
