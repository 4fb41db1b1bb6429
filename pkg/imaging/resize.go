package imaging

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// Resize scales img so that its longest side equals maxDimension, keeping the
// aspect ratio. Images already within bounds, and maxDimension <= 0, return img unchanged.
func Resize(img image.Image, maxDimension int) image.Image {
	if maxDimension <= 0 {
		return img
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	longest := max(width, height)
	if longest <= maxDimension {
		return img
	}

	scale := float64(maxDimension) / float64(longest)
	newWidth := max(1, int(math.Round(float64(width)*scale)))
	newHeight := max(1, int(math.Round(float64(height)*scale)))

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
