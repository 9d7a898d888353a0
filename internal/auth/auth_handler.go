package auth

import (
	"net/http"
	"strings"
	"time"

	"pos-service/internal/config"
	"pos-service/pkg/errors"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SessionCookie is the cookie holding the session token
const SessionCookie = "session"

// AuthHandler handles login and logout for the single operator account
type AuthHandler struct {
	jwtManager    *JWTManager
	logger        *zap.Logger
	username      string
	passwordHash  []byte
	secureCookies bool
}

// NewAuthHandler hashes the configured admin password once at start-up
func NewAuthHandler(jwtManager *JWTManager, cfg *config.Config, logger *zap.Logger) (*AuthHandler, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &AuthHandler{
		jwtManager:    jwtManager,
		logger:        logger,
		username:      cfg.AdminUsername,
		passwordHash:  hash,
		secureCookies: cfg.SecureCookies,
	}, nil
}

// LoginRequest represents the login request, sent as JSON or as a form
type LoginRequest struct {
	Username string `json:"username" form:"username" example:"admin"`
	Password string `json:"password" form:"password" example:"admin123"`
}

func (r *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// LoginResponse represents the login response
type LoginResponse struct {
	Success   bool      `json:"success" example:"true"`
	Username  string    `json:"username" example:"admin"`
	Token     string    `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	Type      string    `json:"type" example:"Bearer"`
	ExpiresIn int       `json:"expires_in" example:"28800"`
	ExpiresAt time.Time `json:"expires_at" example:"2024-01-15T20:00:00Z"`
}

// Login handles POST /login
// @Summary      Log in
// @Description  Checks the operator credentials and sets the HttpOnly session cookie. The token is also returned for Bearer use.
// @Tags         auth
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request  body      LoginRequest   true  "Login credentials"
// @Success      200      {object}  LoginResponse
// @Failure      400      {object}  errors.StandardError
// @Failure      401      {object}  errors.StandardError
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest

	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warn("Invalid login request", zap.Error(err))
		c.Error(errors.NewInvalidRequest("invalid request", err.Error()))
		c.Abort()
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if err := req.Validate(); err != nil {
		c.Error(errors.NewValidationError(err))
		c.Abort()
		return
	}

	if !h.validateCredentials(req.Username, req.Password) {
		h.logger.Warn("Invalid credentials", zap.String("username", req.Username))
		c.Error(errors.NewStandardError(errors.CodeNotAuthenticated, "Invalid credentials", nil))
		c.Abort()
		return
	}

	token, expiresAt, err := h.jwtManager.GenerateToken(req.Username)
	if err != nil {
		c.Error(errors.NewInternalError("failed to generate token", err))
		c.Abort()
		return
	}

	maxAge := int(h.jwtManager.TTL().Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, maxAge, "/", "", h.secureCookies, true)

	h.logger.Info("User logged in successfully",
		zap.String("username", req.Username),
		zap.Time("expires_at", expiresAt),
	)

	c.JSON(http.StatusOK, LoginResponse{
		Success:   true,
		Username:  req.Username,
		Token:     token,
		Type:      "Bearer",
		ExpiresIn: maxAge,
		ExpiresAt: expiresAt,
	})
}

// Logout handles GET|POST /logout
// @Summary      Log out
// @Description  Clears the session cookie
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(SessionCookie); err == nil {
		if claims, err := h.jwtManager.ValidateToken(token); err == nil {
			h.logger.Info("User logged out", zap.String("username", claims.Username))
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", h.secureCookies, true)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out",
	})
}

func (h *AuthHandler) validateCredentials(username, password string) bool {
	if username != h.username {
		// keep timing comparable with a wrong password
		_ = bcrypt.CompareHashAndPassword(h.passwordHash, []byte(password))
		return false
	}
	return bcrypt.CompareHashAndPassword(h.passwordHash, []byte(password)) == nil
}
