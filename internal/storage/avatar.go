package storage

import (
	"bytes"
	"image"

	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const avatarMaxSize = 512

// NormalizeAvatar decodes an uploaded jpeg/png, scales it down so the
// longest side is at most 512px and re-encodes as webp.
func NormalizeAvatar(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > avatarMaxSize || h > avatarMaxSize {
		if w >= h {
			h = h * avatarMaxSize / w
			w = avatarMaxSize
		} else {
			w = w * avatarMaxSize / h
			h = avatarMaxSize
		}

		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var out bytes.Buffer
	if err := webp.Encode(&out, src, &webp.Options{Quality: 80}); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}
