package account

import (
	v1 "github.com/5urf/carrot-challenge/store/v1"
	"github.com/5urf/carrot-challenge/store/v1/types"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SessionMiddleware resolves the session cookie into a stored session and
// stashes it in the request context. Requests without a resolvable session
// pass through untouched; each handler decides how to treat a missing actor.
func (a *accounts) SessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			cookie, err := ctx.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return next(ctx)
			}

			sessionID, err := uuid.Parse(cookie.Value)
			if err != nil {
				return next(ctx)
			}

			session, err := a.sessionStore.GetSession(ctx.Request().Context(), sessionID)
			if err != nil {
				if !v1.IsNotFound(err) {
					a.logger.Err(err).Str("session_id", sessionID.String()).Msg("error resolving session")
				}
				return next(ctx)
			}

			ctx.Set(string(types.SessionContextKey), session)
			return next(ctx)
		}
	}
}

func sessionFromContext(ctx echo.Context) (*types.Session, bool) {
	session, ok := ctx.Get(string(types.SessionContextKey)).(*types.Session)
	if !ok || session == nil {
		return nil, false
	}

	return session, true
}
