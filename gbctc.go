/*
Package gbctc is a library for converting images into Game Boy Color
background tile data.

An image is split into 8 by 8 tiles, each of which may use at most four
colors. The colors of every tile are packed into no more than eight shared
palettes, and tiles are deduplicated, including mirror images, into a table
of no more than 1024 tiles. A fixed 32 by 32 tile map and attribute map
reference the table.
*/
package gbctc

import (
	"io/ioutil"
	"log"
)

// Converter converts images into tile data.
type Converter struct {
	cache  *Cache
	logger *log.Logger
	reduce bool
}

// New returns a Converter. cache may be nil to disable caching, and logger
// may be nil to disable logging. If reduce is set, images are reduced to
// at most four colors per tile before conversion.
func New(cache *Cache, logger *log.Logger, reduce bool) *Converter {
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}
	return &Converter{
		cache:  cache,
		logger: logger,
		reduce: reduce,
	}
}
