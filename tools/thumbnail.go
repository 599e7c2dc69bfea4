package tools

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/image/webp"
)

// Thumbnail scales the image down by ratio and re-encodes it as JPEG.
// WEBP input is decoded through x/image since imaging cannot read it.
func Thumbnail(srcData []byte, ratio float64) ([]byte, error) {
	if ratio <= 0 || ratio >= 1 {
		return nil, fmt.Errorf("invalid thumbnail ratio: %f", ratio)
	}
	var img image.Image
	var err error
	if DetectImageType(srcData) == ImageTypeWEBP {
		img, err = webp.Decode(bytes.NewReader(srcData))
	} else {
		img, err = imaging.Decode(bytes.NewReader(srcData))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	b := img.Bounds()
	width := int(float64(b.Dx()) * ratio)
	height := int(float64(b.Dy()) * ratio)
	thumbnail := imaging.Thumbnail(img, width, height, imaging.Lanczos)
	var buf bytes.Buffer
	err = imaging.Encode(&buf, thumbnail, imaging.JPEG, imaging.JPEGQuality(85))
	if err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}
