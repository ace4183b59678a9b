package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Limiter rate-limits login attempts per client IP. Check asks whether the
// IP may attempt a login; Record registers a failed attempt.
type Limiter interface {
	Check(ip string) bool
	Record(ip string)
}

// Handler exposes the auth service over JSON endpoints.
type Handler struct {
	svc      *Service
	validate *validator.Validate
	limiter  Limiter
	log      *slog.Logger
}

// NewHandler creates a Handler. limiter may be nil to disable rate
// limiting; log may be nil to use the default logger.
func NewHandler(svc *Service, limiter Limiter, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		svc:      svc,
		validate: validator.New(),
		limiter:  limiter,
		log:      log,
	}
}

// RegisterRoutes mounts the auth endpoints on g (typically /api/auth).
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/login", h.Login)
	g.POST("/signup", h.Signup)
	g.POST("/logout", h.Logout)
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type signupRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// Login handles POST /login. Success establishes a cookie session and
// returns the user; bad credentials return a generic 401 so callers cannot
// probe which part was wrong.
func (h *Handler) Login(c echo.Context) error {
	if h.limiter != nil && !h.limiter.Check(c.RealIP()) {
		return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "Too many login attempts. Try again later."})
	}
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Email and password are required"})
	}
	user, err := h.svc.Login(req.Email, req.Password)
	if err != nil {
		var ve *ValidationError
		switch {
		case errors.As(err, &ve):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Error()})
		case errors.Is(err, ErrInvalidCredentials):
			if h.limiter != nil {
				h.limiter.Record(c.RealIP())
			}
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid credentials"})
		default:
			h.log.Error("login failed", "error", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
		}
	}
	if err := setUserSession(c, user.ID); err != nil {
		h.log.Error("save session", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"user": user})
}

// Signup handles POST /signup. A created account is logged in immediately.
func (h *Handler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "All fields are required"})
	}
	user, err := h.svc.Signup(req.Name, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		var ve *ValidationError
		switch {
		case errors.As(err, &ve):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Error()})
		case errors.Is(err, ErrEmailExists):
			return c.JSON(http.StatusConflict, echo.Map{"error": "User already exists"})
		default:
			h.log.Error("signup failed", "error", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
		}
	}
	if err := setUserSession(c, user.ID); err != nil {
		h.log.Error("save session", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"user": user})
}

// Logout handles POST /logout. It invalidates the cookie session; calling
// it without one is still a success.
func (h *Handler) Logout(c echo.Context) error {
	if err := clearUserSession(c); err != nil {
		h.log.Error("clear session", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Logged out successfully"})
}
