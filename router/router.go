package router

import (
	"net/http"

	"github.com/5urf/carrot-challenge/account"
	"github.com/5urf/carrot-challenge/config"
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Register is the entry point that registers all the endpoints
func Register(cfg *config.CarrotConfig, e *echo.Echo, accountsAPI account.Accounts) {
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.WebAppConfig.AllowedOrigins,
		AllowCredentials: true,
	}))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string {
			return uuid.NewString()
		},
	}))
	e.Use(echoprometheus.NewMiddleware("carrot"))
	e.GET(Metrics, echoprometheus.NewHandler())

	accountRouter := e.Group(Account, accountsAPI.SessionMiddleware())
	RegisterAccountRoutes(accountRouter, accountsAPI)
}

func RegisterHealthCheckEndpoint(e *echo.Echo, handler http.HandlerFunc) {
	e.GET(Health, echo.WrapHandler(handler))
}
