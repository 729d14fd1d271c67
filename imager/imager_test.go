package imager

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"

	"github.com/hibiki-board/hibiki/common"
	"github.com/hibiki-board/hibiki/imager/assets"
	. "github.com/hibiki-board/hibiki/test"
	"github.com/hibiki-board/hibiki/util"
)

// Encode a solid-color PNG of the passed dimensions
func samplePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var w bytes.Buffer
	if err := png.Encode(&w, img); err != nil {
		t.Fatal(err)
	}
	return w.Bytes()
}

func TestThumbnail(t *testing.T) {
	t.Parallel()

	cases := [...]struct {
		name                   string
		srcW, srcH, maxW, maxH int
	}{
		{"landscape", 400, 300, 200, 150},
		{"portrait", 300, 600, 100, 200},
		{"smaller than box stays", 120, 80, 120, 80},
	}

	for i := range cases {
		c := cases[i]
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			thumb, err := thumbnail(samplePNG(t, c.srcW, c.srcH))
			if err != nil {
				t.Fatal(err)
			}

			conf, err := png.DecodeConfig(bytes.NewReader(thumb))
			if err != nil {
				t.Fatal(err)
			}
			if conf.Width > c.maxW || conf.Height > c.maxH {
				t.Fatalf(
					"thumbnail exceeds bounds: %dx%d",
					conf.Width, conf.Height,
				)
			}
		})
	}
}

func TestThumbnailNotAnImage(t *testing.T) {
	t.Parallel()

	_, err := thumbnail([]byte("not an image at all"))
	se, ok := err.(common.StatusError)
	if !ok || se.Code != 400 {
		t.Fatalf("expected 400 status error, got: %#v", err)
	}
}

func TestEnsureStoredIdempotent(t *testing.T) {
	buf := samplePNG(t, 400, 300)

	hash, err := EnsureStored(buf)
	if err != nil {
		t.Fatal(err)
	}
	AssertEquals(t, hash, util.HashBuffer(buf))
	for _, path := range [...]string{
		assets.SourcePath(hash),
		assets.ThumbPath(hash),
	} {
		if _, err := os.Stat(path); err != nil {
			t.Fatal(err)
		}
	}

	// The second call must short-circuit on the existing row without
	// decoding or writing anything: a removed thumbnail stays removed
	if err := os.Remove(assets.ThumbPath(hash)); err != nil {
		t.Fatal(err)
	}
	again, err := EnsureStored(buf)
	if err != nil {
		t.Fatal(err)
	}
	AssertEquals(t, again, hash)
	if _, err := os.Stat(assets.ThumbPath(hash)); !os.IsNotExist(err) {
		t.Fatal("second store decoded and rewrote the thumbnail")
	}
}
