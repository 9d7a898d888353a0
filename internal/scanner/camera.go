package scanner

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"net/http"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Camera opens the capture device
type Camera interface {
	Open(ctx context.Context) (Device, error)
}

// Device yields frames until closed
type Device interface {
	ReadFrame(ctx context.Context) (image.Image, error)
	Close() error
}

// SnapshotCamera pulls still frames from an IP camera or mjpg-streamer
// snapshot endpoint.
type SnapshotCamera struct {
	url    string
	client *resty.Client
	logger *zap.Logger
}

func NewSnapshotCamera(url string, frameTimeout time.Duration, logger *zap.Logger) *SnapshotCamera {
	client := resty.New().
		SetTimeout(frameTimeout).
		SetHeader("Accept", "image/jpeg, image/png")

	return &SnapshotCamera{
		url:    url,
		client: client,
		logger: logger,
	}
}

// Open checks the endpoint answers with a frame before handing out a device
func (c *SnapshotCamera) Open(ctx context.Context) (Device, error) {
	dev := &snapshotDevice{camera: c}
	if _, err := dev.ReadFrame(ctx); err != nil {
		return nil, fmt.Errorf("failed to open camera: %w", err)
	}
	c.logger.Debug("Camera opened", zap.String("url", c.url))
	return dev, nil
}

type snapshotDevice struct {
	camera *SnapshotCamera
}

func (d *snapshotDevice) ReadFrame(ctx context.Context) (image.Image, error) {
	resp, err := d.camera.client.R().SetContext(ctx).Get(d.camera.url)
	if err != nil {
		return nil, fmt.Errorf("snapshot request failed: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("snapshot request returned status %d", resp.StatusCode())
	}

	img, err := imaging.Decode(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("failed to decode frame: %w", err)
	}
	return img, nil
}

func (d *snapshotDevice) Close() error {
	d.camera.client.GetClient().CloseIdleConnections()
	return nil
}

// ErrInvalidImage is returned for payloads that are not a decodable image
var ErrInvalidImage = errors.New("invalid image data")

// DecodeDataURL decodes a "data:image/...;base64,..." URL or bare base64 image
func DecodeDataURL(dataURL string) (image.Image, error) {
	payload := strings.TrimSpace(dataURL)
	if payload == "" {
		return nil, ErrInvalidImage
	}
	if strings.HasPrefix(payload, "data:") {
		idx := strings.Index(payload, ",")
		if idx < 0 {
			return nil, ErrInvalidImage
		}
		payload = payload[idx+1:]
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return img, nil
}
