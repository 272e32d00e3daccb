package gbctc

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"image"
	_ "image/gif"  // gif decoder
	_ "image/jpeg" // jpeg decoder
	_ "image/png"  // png decoder
	"io/ioutil"

	_ "golang.org/x/image/bmp" // bmp decoder
)

// ConvertImage converts m into tile data.
func (c *Converter) ConvertImage(m image.Image) (*Result, error) {
	if c.reduce {
		m = Reduce(m)
	}
	return c.Convert(FromImage(m))
}

// ConvertFile decodes the image in file and converts it into tile data. If
// the Converter has a cache, it is consulted first and updated afterwards.
func (c *Converter) ConvertFile(file string) (*Result, error) {
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, err
	}
	sha := fmt.Sprintf("%X", sha1.Sum(b))

	if c.cache != nil {
		r, err := c.cache.Find(sha, c.reduce)
		if err != nil {
			return nil, err
		}
		if r != nil {
			c.logger.Printf("Using cached conversion of \"%s\"\n", file)
			return r, nil
		}
	}

	m, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}

	r, err := c.ConvertImage(m)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if err := c.cache.Add(sha, c.reduce, r); err != nil {
			return nil, err
		}
	}

	return r, nil
}
