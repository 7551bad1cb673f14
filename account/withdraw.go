package account

import (
	"fmt"
	"net/http"
	"time"

	v1 "github.com/5urf/carrot-challenge/store/v1"
	"github.com/5urf/carrot-challenge/telemetry"
	"github.com/labstack/echo/v4"
)

func (a *accounts) Withdraw(ctx echo.Context) error {
	ctx.Set(telemetry.HandlerStartTime, time.Now())

	// an absent session is an authorization failure, not a field error
	session, ok := sessionFromContext(ctx)
	if !ok {
		err := fmt.Errorf("ERR_MISSING_SESSION")
		echoErr := ctx.JSON(http.StatusUnauthorized, formErrorResult("please sign in to delete your account"))
		a.logger.Log(ctx, err).Send()
		return echoErr
	}

	var form WithdrawForm
	if err := ctx.Bind(&form); err != nil {
		echoErr := ctx.JSON(http.StatusBadRequest, formErrorResult("request body could not be decoded"))
		a.logger.Log(ctx, err).Send()
		return echoErr
	}

	// an empty password short-circuits before any user record is read
	if fieldErrors := validateForm(&form); fieldErrors != nil {
		echoErr := ctx.JSON(http.StatusBadRequest, &Result{FieldErrors: fieldErrors})
		a.logger.Log(ctx, nil).Send()
		return echoErr
	}

	user, err := a.userStore.GetUserByID(ctx.Request().Context(), session.OwnerID)
	if err != nil {
		if v1.IsNotFound(err) {
			echoErr := ctx.JSON(http.StatusNotFound, formErrorResult("account not found"))
			a.logger.Log(ctx, err).Send()
			return echoErr
		}

		echoErr := ctx.JSON(http.StatusInternalServerError, formErrorResult(genericErrorMessage))
		a.logger.Log(ctx, err).Send()
		return echoErr
	}

	if !a.verifyPassword(user.Password, form.Password) {
		err = fmt.Errorf("ERR_WRONG_PASSWORD")
		echoErr := ctx.JSON(http.StatusBadRequest, fieldErrorResult("password", "password is wrong"))
		a.logger.Log(ctx, err).Send()
		return echoErr
	}

	// delete first; the session stays intact when the delete fails so the
	// actor can retry
	if err = a.userStore.DeleteUser(ctx.Request().Context(), user.ID); err != nil {
		echoErr := ctx.JSON(http.StatusInternalServerError, formErrorResult(genericErrorMessage))
		a.logger.Log(ctx, err).Send()
		return echoErr
	}

	if err = a.sessionStore.DeleteSession(ctx.Request().Context(), session.ID); err != nil {
		// the account is already gone, nothing actionable for the caller
		a.logger.Err(err).Str("session_id", session.ID.String()).Msg("error destroying session after withdrawal")
	}

	ctx.SetCookie(a.createCookie(SessionCookieName, "", true, time.Now().Add(-time.Hour)))

	echoErr := ctx.JSON(http.StatusOK, successResult("account deleted successfully"))
	a.logger.Log(ctx, nil).Send()
	return echoErr
}
