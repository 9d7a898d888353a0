package middleware

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"pos-service/internal/cache"
	"pos-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// RequestIDHeader is the HTTP header name for request ID
	RequestIDHeader = "X-Request-ID"
	// RequestIDContextKey is the context key for request ID
	RequestIDContextKey = "request_id"
)

var ErrRequestIDNotFound = stderrors.New("request ID not found")

// StoredResponse is a replayable response
type StoredResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// maxClaimTTL bounds how long an unfinished request blocks its retries
const maxClaimTTL = time.Minute

// RequestIDStore stores processed request IDs for idempotency.
// Claim reserves a key with an empty placeholder and reports false when the
// key is already taken. Release drops a claim that produced nothing to replay.
type RequestIDStore interface {
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Store(ctx context.Context, key string, response StoredResponse, ttl time.Duration) error
	Get(ctx context.Context, key string) (StoredResponse, error)
	Release(ctx context.Context, key string) error
}

// CacheRequestIDStore keeps responses in the shared cache (Redis or memory)
type CacheRequestIDStore struct {
	cache cache.Cache
}

func NewCacheRequestIDStore(c cache.Cache) *CacheRequestIDStore {
	return &CacheRequestIDStore{cache: c}
}

func (s *CacheRequestIDStore) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return s.cache.SetNX(ctx, key, []byte("{}"), ttl)
}

func (s *CacheRequestIDStore) Store(ctx context.Context, key string, response StoredResponse, ttl time.Duration) error {
	return cache.SetJSON(ctx, s.cache, key, response, ttl)
}

func (s *CacheRequestIDStore) Get(ctx context.Context, key string) (StoredResponse, error) {
	var response StoredResponse
	err := cache.GetJSON(ctx, s.cache, key, &response)
	if stderrors.Is(err, cache.ErrCacheMiss) {
		return StoredResponse{}, ErrRequestIDNotFound
	}
	if err != nil {
		return StoredResponse{}, err
	}
	return response, nil
}

func (s *CacheRequestIDStore) Release(ctx context.Context, key string) error {
	return s.cache.Delete(ctx, key)
}

// RequestIDMiddleware extracts or generates X-Request-ID header
func RequestIDMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDContextKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}

// GetRequestID retrieves the request ID from the Gin context
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDContextKey)
}

// IdempotencyMiddleware replays the stored response when a client retries a
// write with the same X-Request-ID, and stores successful responses otherwise.
// A retry that arrives while the first request is still running gets 409.
// Only client-supplied request ids are considered.
func IdempotencyMiddleware(store RequestIDStore, logger *zap.Logger, ttl time.Duration) gin.HandlerFunc {
	claimTTL := ttl
	if claimTTL > maxClaimTTL {
		claimTTL = maxClaimTTL
	}

	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead || c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			c.Next()
			return
		}

		key := "idempotency:" + GetUsername(c) + ":" + c.Request.Method + ":" + c.FullPath() + ":" + requestID
		ctx := c.Request.Context()

		claimed, err := store.Claim(ctx, key, claimTTL)
		if err != nil {
			// fail open
			logger.Warn("Error claiming request ID",
				zap.String("request_id", requestID),
				zap.Error(err),
			)
			c.Next()
			return
		}

		if !claimed {
			cached, err := store.Get(ctx, key)
			if err != nil && !stderrors.Is(err, ErrRequestIDNotFound) {
				logger.Warn("Error reading stored response",
					zap.String("request_id", requestID),
					zap.Error(err),
				)
				c.Next()
				return
			}
			if len(cached.Body) > 0 {
				logger.Info("Duplicate request detected, returning cached response",
					zap.String("request_id", requestID),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
				)
				c.Header("Idempotent-Replay", "true")
				c.Data(cached.Status, cached.ContentType, cached.Body)
				c.Abort()
				return
			}

			logger.Warn("Duplicate request while original is in progress",
				zap.String("request_id", requestID),
				zap.String("path", c.Request.URL.Path),
			)
			stdErr := errors.NewRequestInProgress()
			c.AbortWithStatusJSON(stdErr.HTTPStatus(), stdErr)
			return
		}

		stored := false
		defer func() {
			if stored {
				return
			}
			if err := store.Release(context.WithoutCancel(ctx), key); err != nil {
				logger.Warn("Failed to release request ID",
					zap.String("request_id", requestID),
					zap.Error(err),
				)
			}
		}()

		writer := &responseWriter{ResponseWriter: c.Writer}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		if status < 200 || status >= 300 || len(writer.body) == 0 {
			return
		}

		response := StoredResponse{
			Status:      status,
			ContentType: writer.Header().Get("Content-Type"),
			Body:        writer.body,
		}
		if err := store.Store(ctx, key, response, ttl); err != nil {
			logger.Warn("Failed to store response for idempotency",
				zap.String("request_id", requestID),
				zap.Error(err),
			)
			return
		}
		stored = true
		logger.Debug("Stored response for idempotency",
			zap.String("request_id", requestID),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
		)
	}
}

// responseWriter captures the response body
type responseWriter struct {
	gin.ResponseWriter
	body []byte
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body = append(w.body, b...)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body = append(w.body, s...)
	return w.ResponseWriter.WriteString(s)
}

