package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/giannis-supplies/storefront/internal/account"
	"github.com/giannis-supplies/storefront/internal/logging"
	"github.com/giannis-supplies/storefront/internal/models"
	"github.com/giannis-supplies/storefront/internal/tokens"
)

const accessTokenTTL = 15 * time.Minute

type AuthHTTP struct {
	Svc       *account.Service
	JWTSecret []byte
}

type registerRequest struct {
	FullName        string `json:"fullname"`
	Email           string `json:"email"`
	DateOfBirth     string `json:"dob"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password" validate:"eqfield=Password"`
}

// userView is the user record without the stored password hash.
type userView struct {
	FullName     string `json:"fullname"`
	Email        string `json:"email"`
	DateOfBirth  string `json:"dob"`
	Username     string `json:"username"`
	RegisteredAt string `json:"registered_at"`
}

func viewUser(u *models.User) userView {
	return userView{
		FullName:     u.FullName,
		Email:        u.Email,
		DateOfBirth:  u.DateOfBirth,
		Username:     u.Username,
		RegisteredAt: u.RegisteredAt,
	}
}

type sessionResponse struct {
	User        userView `json:"user"`
	AccessToken string   `json:"access_token"`
}

// Register reports every failing field at once: the domain rules from the
// account service plus the form-only password confirmation check.
func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	in := account.RegisterInput{
		FullName:    req.FullName,
		Email:       req.Email,
		DateOfBirth: req.DateOfBirth,
		Username:    req.Username,
		Password:    req.Password,
	}

	confirmErrs := FieldErrors(c.Validate(&req))
	if len(confirmErrs) > 0 {
		fieldErrs, err := h.Svc.ValidateRegistration(ctx, in)
		if err != nil {
			l.Error("register_error", "error", err)
			return c.JSON(http.StatusInternalServerError, "internal error")
		}
		return c.JSON(http.StatusBadRequest, append(fieldErrs, confirmErrs...))
	}

	user, err := h.Svc.Register(ctx, in)
	if err != nil {
		var fieldErrs account.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return c.JSON(http.StatusBadRequest, fieldErrs)
		}
		l.Error("register_error", "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}

	return h.session(c, user)
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, account.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, "invalid username or password")
		}
		l.Error("login_error", "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}

	return h.session(c, user)
}

// session issues the access-token cookie and returns the user.
func (h *AuthHTTP) session(c echo.Context, user *models.User) error {
	exp := time.Now().Add(accessTokenTTL)
	token, err := tokens.SignAccess(user.Username, h.JWTSecret, exp)
	if err != nil {
		logging.FromContext(c.Request().Context()).Error("token_sign_error", "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}
	c.SetCookie(createCookie(accessCookieName, token, "/", exp))
	return c.JSON(http.StatusOK, sessionResponse{User: viewUser(user), AccessToken: token})
}

func (h *AuthHTTP) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.Svc.Logout(ctx); err != nil {
		logging.FromContext(ctx).Error("logout_error", "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}
	c.SetCookie(createCookie(accessCookieName, "", "/", time.Unix(0, 0)))
	return c.JSON(http.StatusOK, "logged out")
}

func (h *AuthHTTP) Me(c echo.Context) error {
	ctx := c.Request().Context()
	user, err := h.Svc.CurrentUser(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("current_user_error", "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}
	if user == nil {
		return c.JSON(http.StatusUnauthorized, "not logged in")
	}
	return c.JSON(http.StatusOK, viewUser(user))
}
