package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/giannis-supplies/storefront/internal/tokens"
)

const accessCookieName = "accessToken"

// RequireAuth admits only requests carrying a valid access-token cookie and
// puts the username into the echo context.
func RequireAuth(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(accessCookieName)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "access token missing")
			}
			claims, err := tokens.ParseAccess(cookie.Value, secret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid access token")
			}
			c.Set("username", claims.Username)
			return next(c)
		}
	}
}

func createCookie(name, value, path string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
