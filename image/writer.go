package image

import (
	"image"
	"io"

	"github.com/bodgit/gbctc"
)

// Encode converts the Image m and writes it to w in binary tile data
// format. If reduce is set, m is first reduced so that no tile uses more
// than four colors.
func Encode(w io.Writer, m image.Image, reduce bool) error {
	r, err := gbctc.New(nil, nil, reduce).ConvertImage(m)
	if err != nil {
		return err
	}

	b, err := r.MarshalBinary()
	if err != nil {
		return err
	}

	_, err = w.Write(b)
	return err
}
