package http

import (
	"net/http"
	"strings"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// sessionCookieName is the cookie carrying the session token issued by the
// authentication frontend.
const sessionCookieName = "session_token"

const identityContextKey = "identity"

// SessionAuth returns middleware that resolves the session token to a member
// identity and stores it in the request context. Requests without a valid
// session are rejected with 401 before reaching the handler.
func SessionAuth(resolver ports.IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			token := sessionToken(ctx)
			if token == "" {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "authentication required",
				})
			}

			identity, err := resolver.Resolve(ctx.Request().Context(), token)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "session is invalid or expired",
				})
			}

			ctx.Set(identityContextKey, identity)
			return next(ctx)
		}
	}
}

// sessionToken extracts the session token from the cookie, falling back to
// a bearer Authorization header for non-browser clients.
func sessionToken(ctx echo.Context) string {
	if cookie, err := ctx.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	auth := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return token
	}

	return ""
}

// callerIdentity returns the identity stored by SessionAuth.
func callerIdentity(ctx echo.Context) (kernel.Identity, bool) {
	identity, ok := ctx.Get(identityContextKey).(kernel.Identity)
	return identity, ok
}
