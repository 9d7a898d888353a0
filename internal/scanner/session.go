package scanner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// restartWait bounds how long Start waits for the same key's stopped loop
// to release the camera
const restartWait = time.Second

var (
	ErrCameraBusy        = errors.New("camera is in use by another scan session")
	ErrCameraUnavailable = errors.New("camera unavailable")
	ErrInvalidPurpose    = errors.New("scan type must be 'add' or 'sell'")
)

// Purpose is what a scanned code is used for
type Purpose string

const (
	PurposeAdd  Purpose = "add"
	PurposeSell Purpose = "sell"
)

// ParsePurpose defaults to add and accepts "bill" for sell
func ParsePurpose(s string) (Purpose, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "add":
		return PurposeAdd, nil
	case "sell", "bill":
		return PurposeSell, nil
	default:
		return "", ErrInvalidPurpose
	}
}

// Key identifies a scan session
type Key struct {
	Operator string
	Purpose  Purpose
}

func (k Key) SessionID() string {
	return k.Operator + "_" + string(k.Purpose)
}

// Status is what a poll reports
type Status struct {
	Scanning bool
	Code     *string
}

// Options bound a scan loop
type Options struct {
	PollInterval   time.Duration
	MaxDuration    time.Duration
	MaxFrameErrors int
}

type session struct {
	id       string
	cancel   context.CancelFunc
	scanning bool
	result   *string
}

// Manager runs at most one capture loop per Key and owns the single camera.
// All session state is guarded by mu.
type Manager struct {
	camera   Camera
	detector FrameDetector
	opts     Options
	logger   *zap.Logger

	// cameraSlot holds a token while a loop owns the camera
	cameraSlot chan struct{}

	mu       sync.Mutex
	sessions map[Key]*session
	// loops maps a key to the done channel of its running loop
	loops  map[Key]chan struct{}
	closed bool
	wg     sync.WaitGroup
}

// NewManager builds a manager; a nil camera makes every Start fail with
// ErrCameraUnavailable.
func NewManager(camera Camera, detector FrameDetector, opts Options, logger *zap.Logger) *Manager {
	if opts.PollInterval <= 0 {
		opts.PollInterval = 100 * time.Millisecond
	}
	if opts.MaxDuration <= 0 {
		opts.MaxDuration = 2 * time.Minute
	}
	if opts.MaxFrameErrors <= 0 {
		opts.MaxFrameErrors = 50
	}

	return &Manager{
		camera:     camera,
		detector:   detector,
		opts:       opts,
		logger:     logger,
		cameraSlot: make(chan struct{}, 1),
		sessions:   make(map[Key]*session),
		loops:      make(map[Key]chan struct{}),
	}
}

// Start launches a capture loop for key. A key that is already scanning
// keeps its loop and gets the same session id back. A key whose previous
// loop was stopped but is still closing the camera waits up to restartWait
// for it.
func (m *Manager) Start(ctx context.Context, key Key) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for waited := false; ; waited = true {
		if m.closed {
			return "", fmt.Errorf("%w: scanner is shutting down", ErrCameraUnavailable)
		}
		if s, ok := m.sessions[key]; ok && s.scanning {
			return s.id, nil
		}
		done, running := m.loops[key]
		if !running || waited {
			break
		}

		m.mu.Unlock()
		timer := time.NewTimer(restartWait)
		select {
		case <-done:
		case <-ctx.Done():
		case <-timer.C:
		}
		timer.Stop()
		m.mu.Lock()
	}

	if m.camera == nil {
		return "", ErrCameraUnavailable
	}

	select {
	case m.cameraSlot <- struct{}{}:
	default:
		return "", ErrCameraBusy
	}

	loopCtx, cancel := context.WithTimeout(context.Background(), m.opts.MaxDuration)
	s := &session{
		id:       key.SessionID(),
		cancel:   cancel,
		scanning: true,
	}
	m.sessions[key] = s
	done := make(chan struct{})
	m.loops[key] = done

	m.wg.Add(1)
	go m.run(loopCtx, key, s, done)

	m.logger.Info("Scan session started",
		zap.String("session_id", s.id),
		zap.Duration("max_duration", m.opts.MaxDuration),
	)
	return s.id, nil
}

// Stop ends the loop for key; a result already found stays pollable
func (m *Manager) Stop(key Key) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[key]
	if !ok {
		return
	}
	s.scanning = false
	s.cancel()
	m.logger.Info("Scan session stopped", zap.String("session_id", s.id))
}

// Poll reports the state of key. A found code is returned exactly once.
func (m *Manager) Poll(key Key) Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[key]
	if !ok {
		return Status{}
	}
	if s.result != nil {
		delete(m.sessions, key)
		return Status{Code: s.result}
	}
	if s.scanning {
		return Status{Scanning: true}
	}
	delete(m.sessions, key)
	return Status{}
}

// Shutdown cancels every loop and waits for them to release the camera
func (m *Manager) Shutdown() {
	m.mu.Lock()
	m.closed = true
	for _, s := range m.sessions {
		s.scanning = false
		s.cancel()
	}
	m.mu.Unlock()

	m.wg.Wait()
}

func (m *Manager) run(ctx context.Context, key Key, s *session, done chan struct{}) {
	defer m.wg.Done()
	defer m.loopExited(key, done)
	defer func() { <-m.cameraSlot }()
	defer s.cancel()

	logger := m.logger.With(zap.String("session_id", s.id))

	device, err := m.camera.Open(ctx)
	if err != nil {
		logger.Error("Failed to open camera", zap.Error(err))
		m.finish(s, nil)
		return
	}
	defer func() {
		if err := device.Close(); err != nil {
			logger.Warn("Failed to close camera", zap.Error(err))
		}
		logger.Debug("Camera released")
	}()

	ticker := time.NewTicker(m.opts.PollInterval)
	defer ticker.Stop()

	failures := 0
	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				logger.Info("Scan session timed out")
			}
			m.finish(s, nil)
			return
		case <-ticker.C:
		}

		frame, err := device.ReadFrame(ctx)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			failures++
			logger.Debug("Frame read failed", zap.Int("consecutive_failures", failures), zap.Error(err))
			if failures >= m.opts.MaxFrameErrors {
				logger.Error("Too many frame read failures, ending scan session", zap.Error(err))
				m.finish(s, nil)
				return
			}
			continue
		}
		failures = 0

		if det, ok := m.detector.DetectOnce(frame); ok {
			logger.Info("🎯 Barcode detected",
				zap.String("barcode", det.Text),
				zap.String("symbology", det.Symbology),
			)
			code := det.Text
			m.finish(s, &code)
			return
		}
	}
}

// finish records the outcome on the session. A session that was already
// polled away or replaced is no longer in the map, so the write is dropped.
func (m *Manager) finish(s *session, code *string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s.scanning = false
	if code != nil {
		s.result = code
	}
}

// loopExited runs after the loop has given the camera back
func (m *Manager) loopExited(key Key, done chan struct{}) {
	m.mu.Lock()
	if m.loops[key] == done {
		delete(m.loops, key)
	}
	m.mu.Unlock()
	close(done)
}
