package auth

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ClaimsContextKey is where RequireRole stores validated claims on the echo
// context.
const ClaimsContextKey = "auth.claims"

// RequireRole guards a route group: the request must carry a valid token
// whose claims include the role.
func RequireRole(validator TokenValidator, role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := ExtractToken(c.Request(), "token")
			claims, err := validator.Validate(token)
			if err != nil {
				if errors.Is(err, ErrMissingToken) {
					return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			if !claims.HasRole(role) {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			c.Set(ClaimsContextKey, claims)
			return next(c)
		}
	}
}
