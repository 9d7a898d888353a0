package scanner

import (
	"image"

	"go.uber.org/zap"
)

// FrameDetector finds an accepted barcode in a single image
type FrameDetector interface {
	DetectOnce(img image.Image) (Detection, bool)
}

// Detector runs a Decoder over the raw image and then over each transform
type Detector struct {
	decoder    Decoder
	transforms []Transform
	logger     *zap.Logger
}

// NewDetector uses DefaultTransforms when none are given
func NewDetector(decoder Decoder, logger *zap.Logger, transforms ...Transform) *Detector {
	if len(transforms) == 0 {
		transforms = DefaultTransforms()
	}
	return &Detector{
		decoder:    decoder,
		transforms: transforms,
		logger:     logger,
	}
}

// DetectOnce returns the first non-empty, non-QR detection
func (d *Detector) DetectOnce(img image.Image) (Detection, bool) {
	if det, ok := d.try("raw", img); ok {
		return det, true
	}
	for _, t := range d.transforms {
		if det, ok := d.try(t.Name, t.Apply(img)); ok {
			return det, true
		}
	}
	return Detection{}, false
}

func (d *Detector) try(stage string, img image.Image) (Detection, bool) {
	detections, err := d.decoder.Decode(img)
	if err != nil {
		d.logger.Debug("Decoder failed", zap.String("stage", stage), zap.Error(err))
		return Detection{}, false
	}
	for _, det := range detections {
		if det.Text == "" || det.Symbology == SymbologyQR {
			continue
		}
		d.logger.Debug("Barcode detected",
			zap.String("stage", stage),
			zap.String("barcode", det.Text),
			zap.String("symbology", det.Symbology),
		)
		return det, true
	}
	return Detection{}, false
}
