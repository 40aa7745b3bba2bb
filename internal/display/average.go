package display

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"countdown/internal/models"
)

// AverageColor returns the mean color over every pixel of img. The result
// is false for an image without pixels.
func AverageColor(img image.Image) (models.Color, bool) {
	bounds := img.Bounds()
	n := uint64(bounds.Dx()) * uint64(bounds.Dy())
	if bounds.Empty() || n == 0 {
		return models.Black, false
	}

	var r, g, b, a uint64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pr, pg, pb, pa := img.At(x, y).RGBA()
			r += uint64(pr >> 8)
			g += uint64(pg >> 8)
			b += uint64(pb >> 8)
			a += uint64(pa >> 8)
		}
	}
	return models.Color{
		R: uint8(r / n),
		G: uint8(g / n),
		B: uint8(b / n),
		A: uint8(a / n),
	}, true
}

// AverageColorBytes decodes data (jpeg, png or gif) and averages it.
func AverageColorBytes(data []byte) (models.Color, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return models.Black, fmt.Errorf("decode image: %w", err)
	}
	c, ok := AverageColor(img)
	if !ok {
		return models.Black, fmt.Errorf("decode image: no pixels")
	}
	return c, nil
}
