package account

import (
	"github.com/5urf/carrot-challenge/cache"
	"github.com/5urf/carrot-challenge/config"
	"github.com/5urf/carrot-challenge/store/v1/users"
	"github.com/5urf/carrot-challenge/telemetry"
	"github.com/labstack/echo/v4"
)

// Accounts defines the behaviour for the signed-in account management
// surface: profile edits, password changes and account withdrawal.
type Accounts interface {
	UpdateProfile(ctx echo.Context) error
	UpdatePassword(ctx echo.Context) error
	Withdraw(ctx echo.Context) error
	SessionMiddleware() echo.MiddlewareFunc
}

type accounts struct {
	userStore    users.UserStore
	sessionStore users.SessionStore
	notifier     cache.Notifier
	logger       telemetry.Logger
	cfg          *config.CarrotConfig
}

// New is the constructor function returns an Accounts implementation
func New(
	cfg *config.CarrotConfig,
	userStore users.UserStore,
	sessionStore users.SessionStore,
	notifier cache.Notifier,
	logger telemetry.Logger,
) Accounts {
	return &accounts{
		userStore:    userStore,
		sessionStore: sessionStore,
		notifier:     notifier,
		logger:       logger,
		cfg:          cfg,
	}
}
