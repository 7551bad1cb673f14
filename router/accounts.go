package router

import (
	"net/http"

	"github.com/5urf/carrot-challenge/account"
	"github.com/labstack/echo/v4"
)

func RegisterAccountRoutes(router *echo.Group, api account.Accounts) {
	router.Add(http.MethodPost, Profile, api.UpdateProfile)
	router.Add(http.MethodPost, Password, api.UpdatePassword)
	router.Add(http.MethodPost, Withdraw, api.Withdraw)
}
