package account

import (
	"net/http"
	"time"

	"github.com/5urf/carrot-challenge/config"
)

const SessionCookieName = "session_id"

func (a *accounts) createCookie(name, value string, httpOnly bool, expiresAt time.Time) *http.Cookie {
	secure := true
	sameSite := http.SameSiteNoneMode
	domain := a.cfg.HTTP.FQDN
	if a.cfg.Environment == config.Local {
		secure = false
		sameSite = http.SameSiteLaxMode
		domain = "localhost"
	}

	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   domain,
		Expires:  expiresAt,
		Secure:   secure,
		SameSite: sameSite,
		HttpOnly: httpOnly,
	}
}
