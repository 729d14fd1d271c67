// Package imager stores uploaded images content-addressed and generates
// their thumbnails
package imager

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	// Supported upload formats
	_ "image/gif"
	_ "image/jpeg"

	"github.com/hibiki-board/hibiki/common"
	"github.com/hibiki-board/hibiki/db"
	"github.com/hibiki-board/hibiki/imager/assets"
	"github.com/hibiki-board/hibiki/util"
	"github.com/nfnt/resize"
)

// Thumbnails are fit into a square bounding box preserving aspect ratio
const thumbDim = 200

// EnsureStored persists an uploaded image, if not yet known, and returns its
// content digest. Storing identical bytes twice is a no-op on the second
// call: the digest is looked up before any decoding or file writes. Files
// are written before the database row, so a row always implies both files
// exist.
func EnsureStored(buf []byte) (hash string, err error) {
	hash = util.HashBuffer(buf)

	exists, err := db.ImageExists(hash)
	if err != nil || exists {
		return
	}

	thumb, err := thumbnail(buf)
	if err != nil {
		return
	}
	err = assets.Write(hash, buf, thumb)
	if err != nil {
		return
	}
	err = db.InsertImage(hash)
	return
}

// Decode the upload, downscale it into the bounding box and encode the
// result as PNG
func thumbnail(buf []byte) (thumb []byte, err error) {
	src, _, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		err = common.StatusError{
			Err:  fmt.Errorf("decoding image: %s", err),
			Code: 400,
		}
		return
	}

	scaled := resize.Thumbnail(thumbDim, thumbDim, src, resize.Lanczos3)

	var w bytes.Buffer
	err = png.Encode(&w, scaled)
	if err != nil {
		return
	}
	thumb = w.Bytes()
	return
}
