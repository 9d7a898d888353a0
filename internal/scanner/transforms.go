package scanner

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Transform is one preprocessing step tried when the raw frame does not decode
type Transform struct {
	Name  string
	Apply func(image.Image) image.Image
}

// DefaultTransforms returns grayscale, contrast stretch, binary threshold and
// inverted grayscale, in that order. Each is applied to the raw frame.
func DefaultTransforms() []Transform {
	return []Transform{
		{Name: "grayscale", Apply: grayscale},
		{Name: "contrast", Apply: contrast},
		{Name: "threshold", Apply: threshold},
		{Name: "invert", Apply: invert},
	}
}

func grayscale(img image.Image) image.Image {
	return imaging.Grayscale(img)
}

func contrast(img image.Image) image.Image {
	return imaging.AdjustContrast(imaging.Grayscale(img), 60)
}

func threshold(img image.Image) image.Image {
	return imaging.AdjustFunc(imaging.Grayscale(img), func(c color.NRGBA) color.NRGBA {
		v := uint8(0)
		if c.R >= 128 {
			v = 255
		}
		return color.NRGBA{R: v, G: v, B: v, A: c.A}
	})
}

func invert(img image.Image) image.Image {
	return imaging.Invert(imaging.Grayscale(img))
}
