package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/campushub/clubhub/internal/domain/dto"
	"github.com/campushub/clubhub/internal/domain/errs"
	"github.com/campushub/clubhub/internal/ports/primary"
)

const (
	sessionCookieName = "clubhub_session"
	identityCtxKey    = "identity"
)

// sessionGuard resolves the session cookie into an identity and enforces the
// role each route group requires.
type sessionGuard struct {
	auth         primary.AuthService
	cookieSecure bool
}

func newSessionGuard(auth primary.AuthService, cookieSecure bool) *sessionGuard {
	return &sessionGuard{
		auth:         auth,
		cookieSecure: cookieSecure,
	}
}

func (g *sessionGuard) resolve(c echo.Context) (dto.Identity, error) {
	cookie, err := c.Cookie(sessionCookieName)
	if err != nil {
		return dto.Identity{}, errs.ErrUnauthenticated
	}
	return g.auth.Resolve(c.Request().Context(), cookie.Value)
}

func (g *sessionGuard) require(check func(dto.Identity) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, err := g.resolve(c)
			if err != nil {
				return err
			}
			if !check(identity) {
				return errs.ErrForbidden
			}
			c.Set(identityCtxKey, identity)
			return next(c)
		}
	}
}

func (g *sessionGuard) requireStudent() echo.MiddlewareFunc {
	return g.require(dto.Identity.IsStudent)
}

func (g *sessionGuard) requireClubAdmin() echo.MiddlewareFunc {
	return g.require(dto.Identity.IsClubAdmin)
}

func (g *sessionGuard) requireAdmin() echo.MiddlewareFunc {
	return g.require(dto.Identity.IsAdmin)
}

func (g *sessionGuard) requireUniversityAdmin() echo.MiddlewareFunc {
	return g.require(dto.Identity.IsUniversityAdmin)
}

func contextIdentity(c echo.Context) dto.Identity {
	identity, _ := c.Get(identityCtxKey).(dto.Identity)
	return identity
}

func (g *sessionGuard) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   g.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (g *sessionGuard) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   g.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
}
