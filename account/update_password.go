package account

import (
	"fmt"
	"net/http"
	"time"

	"github.com/5urf/carrot-challenge/telemetry"
	"github.com/labstack/echo/v4"
)

func (a *accounts) UpdatePassword(ctx echo.Context) error {
	ctx.Set(telemetry.HandlerStartTime, time.Now())

	session, ok := sessionFromContext(ctx)
	if !ok {
		err := fmt.Errorf("ERR_MISSING_SESSION")
		echoErr := ctx.JSON(http.StatusUnauthorized, formErrorResult("please sign in to change your password"))
		a.logger.Log(ctx, err).Send()
		return echoErr
	}

	var form PasswordForm
	if err := ctx.Bind(&form); err != nil {
		echoErr := ctx.JSON(http.StatusBadRequest, formErrorResult("request body could not be decoded"))
		a.logger.Log(ctx, err).Send()
		return echoErr
	}

	if fieldErrors := validateForm(&form); fieldErrors != nil {
		echoErr := ctx.JSON(http.StatusBadRequest, &Result{FieldErrors: fieldErrors})
		a.logger.Log(ctx, nil).Send()
		return echoErr
	}

	user, err := a.userStore.GetUserByID(ctx.Request().Context(), session.OwnerID)
	if err != nil {
		echoErr := ctx.JSON(http.StatusInternalServerError, formErrorResult(genericErrorMessage))
		a.logger.Log(ctx, err).Send()
		return echoErr
	}

	// compare the submitted current password with the stored hash; bcrypt's
	// comparison is constant-time on the digest
	if !a.verifyPassword(user.Password, form.CurrentPassword) {
		err = fmt.Errorf("ERR_WRONG_PASSWORD")
		echoErr := ctx.JSON(http.StatusBadRequest, fieldErrorResult("currentPassword", "password is wrong"))
		a.logger.Log(ctx, err).Send()
		return echoErr
	}

	hashPassword, err := a.hashPassword(form.NewPassword)
	if err != nil {
		echoErr := ctx.JSON(http.StatusInternalServerError, formErrorResult(genericErrorMessage))
		a.logger.Log(ctx, err).Send()
		return echoErr
	}

	if err = a.userStore.UpdateUserPWD(ctx.Request().Context(), user.ID, hashPassword); err != nil {
		echoErr := ctx.JSON(http.StatusInternalServerError, formErrorResult(genericErrorMessage))
		a.logger.Log(ctx, err).Send()
		return echoErr
	}

	// password is never publicly rendered, so nothing to invalidate

	echoErr := ctx.JSON(http.StatusOK, successResult("password changed successfully"))
	a.logger.Log(ctx, nil).Send()
	return echoErr
}
