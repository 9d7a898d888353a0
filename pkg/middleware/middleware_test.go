package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"pos-service/internal/auth"
	"pos-service/internal/cache"
	"pos-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const testSecret = "test-secret-key-min-32-chars-for-testing"

func setupAuthMiddlewareTestRouter(jwtManager *auth.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	protected := router.Group("/api")
	protected.Use(AuthMiddleware(jwtManager, zap.NewNop()))
	{
		protected.GET("/test", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"username": GetUsername(c)})
		})
	}
	return router
}

func TestAuthMiddleware_BearerToken(t *testing.T) {
	jwtManager := auth.NewJWTManager(testSecret, time.Hour, zap.NewNop())
	router := setupAuthMiddlewareTestRouter(jwtManager)
	token, _, err := jwtManager.GenerateToken("admin")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"admin"`)
}

func TestAuthMiddleware_SessionCookie(t *testing.T) {
	jwtManager := auth.NewJWTManager(testSecret, time.Hour, zap.NewNop())
	router := setupAuthMiddlewareTestRouter(jwtManager)
	token, _, err := jwtManager.GenerateToken("admin")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/test", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: token})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	jwtManager := auth.NewJWTManager(testSecret, time.Hour, zap.NewNop())
	expiredManager := auth.NewJWTManager(testSecret, -time.Minute, zap.NewNop())
	expired, _, err := expiredManager.GenerateToken("admin")
	require.NoError(t, err)

	router := setupAuthMiddlewareTestRouter(jwtManager)

	testCases := []struct {
		name   string
		header string
		cookie string
	}{
		{"no credentials", "", ""},
		{"malformed header", "Token abc", ""},
		{"garbage bearer", "Bearer abc", ""},
		{"expired cookie", "", expired},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/test", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: tc.cookie})
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "Not authenticated", body["error"])
		})
	}
}

func TestRequestIDMiddleware_GenerateID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestIDMiddleware(zap.NewNop()))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": GetRequestID(c)})
	})

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
	assert.NoError(t, err)
}

func TestRequestIDMiddleware_UseProvidedID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestIDMiddleware(zap.NewNop()))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": GetRequestID(c)})
	})

	providedID := uuid.New().String()
	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set(RequestIDHeader, providedID)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, providedID, w.Header().Get(RequestIDHeader))
}

func setupIdempotencyRouter(calls *int, status int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	store := NewCacheRequestIDStore(cache.NewInMemoryCache(zap.NewNop()))
	router.Use(RequestIDMiddleware(zap.NewNop()))
	router.Use(IdempotencyMiddleware(store, zap.NewNop(), time.Minute))
	router.POST("/api/process_bill", func(c *gin.Context) {
		*calls++
		c.JSON(status, gin.H{"call": *calls})
	})
	return router
}

func TestIdempotencyMiddleware_ReplaysDuplicate(t *testing.T) {
	calls := 0
	router := setupIdempotencyRouter(&calls, http.StatusOK)
	requestID := uuid.New().String()

	var bodies []string
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("POST", "/api/process_bill", nil)
		req.Header.Set(RequestIDHeader, requestID)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		bodies = append(bodies, w.Body.String())
	}

	assert.Equal(t, 1, calls)
	assert.Equal(t, bodies[0], bodies[1])
}

func TestIdempotencyMiddleware_WithoutHeaderAlwaysRuns(t *testing.T) {
	calls := 0
	router := setupIdempotencyRouter(&calls, http.StatusOK)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("POST", "/api/process_bill", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}

	assert.Equal(t, 2, calls)
}

func TestIdempotencyMiddleware_FailuresAreNotStored(t *testing.T) {
	calls := 0
	router := setupIdempotencyRouter(&calls, http.StatusBadRequest)
	requestID := uuid.New().String()

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("POST", "/api/process_bill", nil)
		req.Header.Set(RequestIDHeader, requestID)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	assert.Equal(t, 2, calls)
}

func TestIdempotencyMiddleware_DuplicateWhileInFlight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	store := NewCacheRequestIDStore(cache.NewInMemoryCache(zap.NewNop()))
	router.Use(IdempotencyMiddleware(store, zap.NewNop(), time.Minute))

	entered := make(chan struct{})
	unblock := make(chan struct{})
	calls := 0
	router.POST("/api/process_bill", func(c *gin.Context) {
		calls++
		close(entered)
		<-unblock
		c.JSON(http.StatusOK, gin.H{"call": calls})
	})

	requestID := uuid.New().String()
	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/api/process_bill", nil)
		req.Header.Set(RequestIDHeader, requestID)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	first := make(chan *httptest.ResponseRecorder)
	go func() { first <- send() }()
	<-entered

	w := send()
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), errors.CodeRequestInProgress)

	close(unblock)
	original := <-first
	assert.Equal(t, http.StatusOK, original.Code)

	w = send()
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "true", w.Header().Get("Idempotent-Replay"))
	assert.Equal(t, original.Body.String(), w.Body.String())
	assert.Equal(t, 1, calls)
}

func TestIdempotencyMiddleware_PanicReleasesClaim(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	store := NewCacheRequestIDStore(cache.NewInMemoryCache(zap.NewNop()))
	router.Use(RecoveryHandler(zap.NewNop()))
	router.Use(IdempotencyMiddleware(store, zap.NewNop(), time.Minute))

	calls := 0
	router.POST("/api/process_bill", func(c *gin.Context) {
		calls++
		if calls == 1 {
			panic("boom")
		}
		c.JSON(http.StatusOK, gin.H{"call": calls})
	})

	requestID := uuid.New().String()
	for _, want := range []int{http.StatusInternalServerError, http.StatusOK} {
		req := httptest.NewRequest("POST", "/api/process_bill", nil)
		req.Header.Set(RequestIDHeader, requestID)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code)
	}
	assert.Equal(t, 2, calls)
}

func TestErrorHandler_LogsCauseWithoutExposingIt(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.WarnLevel)
	router := gin.New()
	router.Use(ErrorHandler(zap.New(core)))
	router.POST("/api/process_bill", func(c *gin.Context) {
		cause := &os.PathError{Op: "open", Path: "/var/lib/pos/transactions.csv", Err: os.ErrPermission}
		c.Error(errors.NewStoreFailure("transactions append", cause))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/api/process_bill", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), errors.CodeStoreFailure)
	assert.NotContains(t, w.Body.String(), "/var/lib/pos")

	entries := logs.FilterMessage("Request error").All()
	require.Len(t, entries, 1)
	assert.Contains(t, fmt.Sprint(entries[0].ContextMap()["error"]), "/var/lib/pos/transactions.csv")
}

func TestErrorHandler_StandardError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorHandler(zap.NewNop()))
	router.GET("/missing", func(c *gin.Context) {
		c.Error(errors.NewItemNotFound("123"))
	})
	router.GET("/plain", func(c *gin.Context) {
		c.Error(assert.AnError)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"error":"Book not found"`)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/plain", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRecoveryHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RecoveryHandler(zap.NewNop()))
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORSMiddleware())
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest("OPTIONS", "/test", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}
