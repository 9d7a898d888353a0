package scanner

import (
	"errors"
	"image"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/oned"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// SymbologyQR is reported for QR codes, which the detector ignores
const SymbologyQR = "QR_CODE"

// Detection is one decoded code
type Detection struct {
	Text      string
	Symbology string
}

// Decoder maps an image to every code it can find in it
type Decoder interface {
	Decode(img image.Image) ([]Detection, error)
}

// ZXingDecoder decodes retail 1D symbologies and QR codes with gozxing
type ZXingDecoder struct {
	hints map[gozxing.DecodeHintType]interface{}
}

func NewZXingDecoder() *ZXingDecoder {
	return &ZXingDecoder{
		hints: map[gozxing.DecodeHintType]interface{}{
			gozxing.DecodeHintType_TRY_HARDER: true,
		},
	}
}

// gozxing readers keep state, so each call gets a fresh set
func readers() []gozxing.Reader {
	return []gozxing.Reader{
		oned.NewEAN13Reader(),
		oned.NewEAN8Reader(),
		oned.NewUPCAReader(),
		oned.NewUPCEReader(),
		oned.NewCode128Reader(),
		oned.NewCode39Reader(),
		oned.NewCode93Reader(),
		oned.NewITFReader(),
		oned.NewCodaBarReader(),
		qrcode.NewQRCodeReader(),
	}
}

func (d *ZXingDecoder) Decode(img image.Image) ([]Detection, error) {
	if img == nil {
		return nil, errors.New("nil image")
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil, err
	}

	var detections []Detection
	seen := make(map[Detection]bool)
	for _, reader := range readers() {
		result, err := reader.Decode(bmp, d.hints)
		if err != nil || result == nil || result.GetText() == "" {
			continue
		}
		det := Detection{Text: result.GetText(), Symbology: result.GetBarcodeFormat().String()}
		if seen[det] {
			continue
		}
		seen[det] = true
		detections = append(detections, det)
	}
	return detections, nil
}
