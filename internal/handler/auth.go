package handler

import (
    "errors"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/movie-ticket-booking/internal/identity"
)

// AuthHandler exposes the identity stub over HTTP: register, login,
// logout and the current-user endpoint.  It is a thin layer over
// identity.Service; all validation here is shape validation.
type AuthHandler struct {
    Identity *identity.Service
}

// NewAuthHandler constructs an AuthHandler.  The service must be
// non-nil.
func NewAuthHandler(svc *identity.Service) *AuthHandler {
    if svc == nil {
        panic("nil identity service passed to NewAuthHandler")
    }
    return &AuthHandler{Identity: svc}
}

// Register handles POST /v1/auth/register.  The body must contain
// name, email, mobile and password.  On success it returns 201 with
// the user and a signed access token.
func (h *AuthHandler) Register(c echo.Context) error {
    var body struct {
        Name     string `json:"name"`
        Email    string `json:"email"`
        Mobile   string `json:"mobile"`
        Password string `json:"password"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    body.Email = strings.TrimSpace(strings.ToLower(body.Email))
    if body.Name == "" || body.Email == "" || body.Mobile == "" || body.Password == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, email, mobile and password are required"})
    }
    user, tok, err := h.Identity.Signup(c.Request().Context(), body.Name, body.Email, body.Mobile, body.Password)
    if errors.Is(err, identity.ErrEmailTaken) {
        return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
    }
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to register"})
    }
    return c.JSON(http.StatusCreated, echo.Map{
        "user":         user,
        "access_token": tok.Token,
        "expires_at":   tok.Exp.Format(time.RFC3339),
    })
}

// Login handles POST /v1/auth/login.  A bad email/password pair is a
// 401; the response never says which half was wrong.
func (h *AuthHandler) Login(c echo.Context) error {
    var body struct {
        Email    string `json:"email"`
        Password string `json:"password"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    body.Email = strings.TrimSpace(strings.ToLower(body.Email))
    if body.Email == "" || body.Password == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password are required"})
    }
    user, tok, err := h.Identity.Login(c.Request().Context(), body.Email, body.Password)
    if errors.Is(err, identity.ErrInvalidCredentials) {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
    }
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to login"})
    }
    return c.JSON(http.StatusOK, echo.Map{
        "user":         user,
        "access_token": tok.Token,
        "expires_at":   tok.Exp.Format(time.RFC3339),
    })
}

// Logout handles POST /v1/auth/logout.  It clears the persisted
// identity; issued access tokens are short-lived and simply expire.
func (h *AuthHandler) Logout(c echo.Context) error {
    if err := h.Identity.Logout(c.Request().Context()); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to logout"})
    }
    return c.NoContent(http.StatusNoContent)
}

// Me handles GET /v1/me and returns the authenticated user's identity
// for display on the summary and payment views.
func (h *AuthHandler) Me(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    user, err := h.Identity.Current(c.Request().Context(), userID)
    if errors.Is(err, identity.ErrUserNotFound) {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
    }
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load user"})
    }
    return c.JSON(http.StatusOK, echo.Map{"user": user})
}
