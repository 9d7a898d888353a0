package scanner

import (
	"context"
	"errors"
	"image"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDevice struct {
	frameErr   error
	closeDelay time.Duration
	closed     atomic.Bool
}

func (d *fakeDevice) ReadFrame(ctx context.Context) (image.Image, error) {
	if d.frameErr != nil {
		return nil, d.frameErr
	}
	return blank(), nil
}

func (d *fakeDevice) Close() error {
	time.Sleep(d.closeDelay)
	d.closed.Store(true)
	return nil
}

type fakeCamera struct {
	openErr    error
	frameErr   error
	closeDelay time.Duration

	mu      sync.Mutex
	devices []*fakeDevice
}

func (c *fakeCamera) Open(ctx context.Context) (Device, error) {
	if c.openErr != nil {
		return nil, c.openErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	dev := &fakeDevice{frameErr: c.frameErr, closeDelay: c.closeDelay}
	c.devices = append(c.devices, dev)
	return dev, nil
}

func (c *fakeCamera) allClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, d := range c.devices {
		if !d.closed.Load() {
			return false
		}
	}
	return true
}

// fakeDetector detects "123" on the Nth frame; zero never detects
type fakeDetector struct {
	after int32
	calls atomic.Int32
}

func (d *fakeDetector) DetectOnce(img image.Image) (Detection, bool) {
	n := d.calls.Add(1)
	if d.after > 0 && n >= d.after {
		return Detection{Text: "123", Symbology: "EAN_13"}, true
	}
	return Detection{}, false
}

func testOptions() Options {
	return Options{
		PollInterval:   5 * time.Millisecond,
		MaxDuration:    5 * time.Second,
		MaxFrameErrors: 3,
	}
}

var addKey = Key{Operator: "admin", Purpose: PurposeAdd}
var sellKey = Key{Operator: "admin", Purpose: PurposeSell}

func TestManager_FoundCodeIsReturnedOnce(t *testing.T) {
	camera := &fakeCamera{}
	manager := NewManager(camera, &fakeDetector{after: 3}, testOptions(), zap.NewNop())
	defer manager.Shutdown()

	id, err := manager.Start(context.Background(), addKey)
	require.NoError(t, err)
	assert.Equal(t, "admin_add", id)

	var status Status
	require.Eventually(t, func() bool {
		status = manager.Poll(addKey)
		return status.Code != nil
	}, 2*time.Second, 5*time.Millisecond)

	assert.False(t, status.Scanning)
	assert.Equal(t, "123", *status.Code)

	again := manager.Poll(addKey)
	assert.False(t, again.Scanning)
	assert.Nil(t, again.Code)

	require.Eventually(t, camera.allClosed, time.Second, 5*time.Millisecond)
}

func TestManager_PollWhileScanning(t *testing.T) {
	manager := NewManager(&fakeCamera{}, &fakeDetector{}, testOptions(), zap.NewNop())
	defer manager.Shutdown()

	_, err := manager.Start(context.Background(), addKey)
	require.NoError(t, err)

	status := manager.Poll(addKey)
	assert.True(t, status.Scanning)
	assert.Nil(t, status.Code)
}

func TestManager_StartIsIdempotentPerKey(t *testing.T) {
	camera := &fakeCamera{}
	manager := NewManager(camera, &fakeDetector{}, testOptions(), zap.NewNop())
	defer manager.Shutdown()

	first, err := manager.Start(context.Background(), addKey)
	require.NoError(t, err)
	second, err := manager.Start(context.Background(), addKey)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	camera.mu.Lock()
	assert.LessOrEqual(t, len(camera.devices), 1)
	camera.mu.Unlock()
}

func TestManager_CameraBusy(t *testing.T) {
	manager := NewManager(&fakeCamera{}, &fakeDetector{}, testOptions(), zap.NewNop())
	defer manager.Shutdown()

	_, err := manager.Start(context.Background(), addKey)
	require.NoError(t, err)

	_, err = manager.Start(context.Background(), sellKey)
	assert.True(t, errors.Is(err, ErrCameraBusy))
}

func TestManager_NoCamera(t *testing.T) {
	manager := NewManager(nil, &fakeDetector{}, testOptions(), zap.NewNop())

	_, err := manager.Start(context.Background(), addKey)
	assert.True(t, errors.Is(err, ErrCameraUnavailable))
}

func TestManager_StopReleasesCamera(t *testing.T) {
	camera := &fakeCamera{}
	manager := NewManager(camera, &fakeDetector{}, testOptions(), zap.NewNop())
	defer manager.Shutdown()

	_, err := manager.Start(context.Background(), addKey)
	require.NoError(t, err)

	manager.Stop(addKey)

	status := manager.Poll(addKey)
	assert.False(t, status.Scanning)
	assert.Nil(t, status.Code)

	require.Eventually(t, func() bool {
		_, err := manager.Start(context.Background(), sellKey)
		return err == nil
	}, time.Second, 5*time.Millisecond)

	camera.mu.Lock()
	defer camera.mu.Unlock()
	assert.True(t, camera.devices[0].closed.Load())
}

func TestManager_RestartSameKeyAfterStop(t *testing.T) {
	camera := &fakeCamera{closeDelay: 50 * time.Millisecond}
	manager := NewManager(camera, &fakeDetector{}, testOptions(), zap.NewNop())
	defer manager.Shutdown()

	for i := 0; i < 3; i++ {
		id, err := manager.Start(context.Background(), addKey)
		require.NoError(t, err)
		assert.Equal(t, "admin_add", id)
		manager.Stop(addKey)
	}

	_, err := manager.Start(context.Background(), addKey)
	require.NoError(t, err)
	assert.True(t, manager.Poll(addKey).Scanning)
}

func TestManager_StopUnknownKey(t *testing.T) {
	manager := NewManager(&fakeCamera{}, &fakeDetector{}, testOptions(), zap.NewNop())
	manager.Stop(addKey)
	assert.Equal(t, Status{}, manager.Poll(addKey))
}

func TestManager_MaxDuration(t *testing.T) {
	camera := &fakeCamera{}
	opts := testOptions()
	opts.MaxDuration = 30 * time.Millisecond
	manager := NewManager(camera, &fakeDetector{}, opts, zap.NewNop())
	defer manager.Shutdown()

	_, err := manager.Start(context.Background(), addKey)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return !manager.Poll(addKey).Scanning
	}, 2*time.Second, 5*time.Millisecond)
	require.Eventually(t, camera.allClosed, time.Second, 5*time.Millisecond)
}

func TestManager_FrameErrorsEndSession(t *testing.T) {
	camera := &fakeCamera{frameErr: errors.New("no frame")}
	manager := NewManager(camera, &fakeDetector{after: 1}, testOptions(), zap.NewNop())
	defer manager.Shutdown()

	_, err := manager.Start(context.Background(), addKey)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return !manager.Poll(addKey).Scanning
	}, 2*time.Second, 5*time.Millisecond)
	require.Eventually(t, camera.allClosed, time.Second, 5*time.Millisecond)
}

func TestManager_OpenFailureEndsSession(t *testing.T) {
	camera := &fakeCamera{openErr: errors.New("device missing")}
	manager := NewManager(camera, &fakeDetector{}, testOptions(), zap.NewNop())
	defer manager.Shutdown()

	_, err := manager.Start(context.Background(), addKey)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return !manager.Poll(addKey).Scanning
	}, 2*time.Second, 5*time.Millisecond)

	require.Eventually(t, func() bool {
		_, err := manager.Start(context.Background(), sellKey)
		return err == nil
	}, time.Second, 5*time.Millisecond)
}

func TestManager_Shutdown(t *testing.T) {
	camera := &fakeCamera{}
	manager := NewManager(camera, &fakeDetector{}, testOptions(), zap.NewNop())

	_, err := manager.Start(context.Background(), addKey)
	require.NoError(t, err)

	manager.Shutdown()
	assert.True(t, camera.allClosed())

	_, err = manager.Start(context.Background(), addKey)
	assert.True(t, errors.Is(err, ErrCameraUnavailable))
}

func TestParsePurpose(t *testing.T) {
	testCases := []struct {
		input    string
		expected Purpose
		wantErr  bool
	}{
		{"", PurposeAdd, false},
		{"add", PurposeAdd, false},
		{"sell", PurposeSell, false},
		{"bill", PurposeSell, false},
		{" BILL ", PurposeSell, false},
		{"refund", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			purpose, err := ParsePurpose(tc.input)
			if tc.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidPurpose))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, purpose)
		})
	}
}
