package scanner

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/oned"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// scriptedDecoder returns one scripted answer per call
type scriptedDecoder struct {
	answers [][]Detection
	calls   int
}

func (d *scriptedDecoder) Decode(img image.Image) ([]Detection, error) {
	defer func() { d.calls++ }()
	if d.calls >= len(d.answers) {
		return nil, nil
	}
	if d.answers[d.calls] == nil {
		return nil, errors.New("not found")
	}
	return d.answers[d.calls], nil
}

func blank() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.White)
		}
	}
	return img
}

func TestDetectOnce_RawImageFirst(t *testing.T) {
	decoder := &scriptedDecoder{answers: [][]Detection{{{Text: "123", Symbology: "EAN_13"}}}}
	detector := NewDetector(decoder, zap.NewNop())

	det, ok := detector.DetectOnce(blank())

	require.True(t, ok)
	assert.Equal(t, "123", det.Text)
	assert.Equal(t, 1, decoder.calls)
}

func TestDetectOnce_SkipsQRAndFallsThroughTransforms(t *testing.T) {
	decoder := &scriptedDecoder{answers: [][]Detection{
		{{Text: "https://example.com", Symbology: SymbologyQR}},
		nil,
		{{Text: "", Symbology: "CODE_128"}},
		{{Text: "X-42", Symbology: "CODE_128"}},
	}}

	var applied []string
	transforms := make([]Transform, 0)
	for _, name := range []string{"first", "second", "third", "fourth"} {
		name := name
		transforms = append(transforms, Transform{Name: name, Apply: func(img image.Image) image.Image {
			applied = append(applied, name)
			return img
		}})
	}

	detector := NewDetector(decoder, zap.NewNop(), transforms...)
	det, ok := detector.DetectOnce(blank())

	require.True(t, ok)
	assert.Equal(t, Detection{Text: "X-42", Symbology: "CODE_128"}, det)
	assert.Equal(t, []string{"first", "second", "third"}, applied)
}

func TestDetectOnce_NothingFound(t *testing.T) {
	decoder := &scriptedDecoder{}
	detector := NewDetector(decoder, zap.NewNop())

	_, ok := detector.DetectOnce(blank())

	assert.False(t, ok)
	assert.Equal(t, 1+len(DefaultTransforms()), decoder.calls)
}

func TestDefaultTransforms(t *testing.T) {
	names := make([]string, 0)
	for _, tr := range DefaultTransforms() {
		names = append(names, tr.Name)
		out := tr.Apply(blank())
		assert.Equal(t, blank().Bounds().Size(), out.Bounds().Size())
	}
	assert.Equal(t, []string{"grayscale", "contrast", "threshold", "invert"}, names)
}

func TestThreshold_Binarizes(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 100, G: 100, B: 100, A: 255})
	img.Set(1, 0, color.RGBA{R: 200, G: 200, B: 200, A: 255})

	out := threshold(img)

	r0, _, _, _ := out.At(0, 0).RGBA()
	r1, _, _, _ := out.At(1, 0).RGBA()
	assert.Equal(t, uint32(0), r0)
	assert.Equal(t, uint32(0xffff), r1)
}

func TestZXingDecoder_EAN13(t *testing.T) {
	matrix, err := oned.NewEAN13Writer().Encode("9780131103627", gozxing.BarcodeFormat_EAN_13, 400, 120, nil)
	require.NoError(t, err)

	detector := NewDetector(NewZXingDecoder(), zap.NewNop())
	det, ok := detector.DetectOnce(matrix)

	require.True(t, ok)
	assert.Equal(t, "9780131103627", det.Text)
	assert.Equal(t, "EAN_13", det.Symbology)
}

func TestZXingDecoder_NilImage(t *testing.T) {
	_, err := NewZXingDecoder().Decode(nil)
	assert.Error(t, err)
}
