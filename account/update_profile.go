package account

import (
	"fmt"
	"net/http"
	"time"

	"github.com/5urf/carrot-challenge/telemetry"
	"github.com/labstack/echo/v4"
)

const profileCacheTag = "profile"

func (a *accounts) UpdateProfile(ctx echo.Context) error {
	ctx.Set(telemetry.HandlerStartTime, time.Now())

	session, ok := sessionFromContext(ctx)
	if !ok {
		err := fmt.Errorf("ERR_MISSING_SESSION")
		echoErr := ctx.JSON(http.StatusUnauthorized, formErrorResult("please sign in to update your profile"))
		a.logger.Log(ctx, err).Send()
		return echoErr
	}

	var form ProfileForm
	if err := ctx.Bind(&form); err != nil {
		echoErr := ctx.JSON(http.StatusBadRequest, formErrorResult("request body could not be decoded"))
		a.logger.Log(ctx, err).Send()
		return echoErr
	}
	form.Normalize()

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

	// uniqueness is only queried for fields that actually changed, so the
	// actor never collides with their own record
	usernameToCheck := ""
	emailToCheck := ""
	if form.Username != user.Username {
		usernameToCheck = form.Username
	}
	if form.Email != user.Email {
		emailToCheck = form.Email
	}

	if usernameToCheck != "" || emailToCheck != "" {
		usernameTaken, emailTaken := a.userStore.UserExists(ctx.Request().Context(), usernameToCheck, emailToCheck)

		fieldErrors := make(map[string][]string)
		if usernameTaken {
			fieldErrors["username"] = append(fieldErrors["username"], "this username is already taken")
		}
		if emailTaken {
			fieldErrors["email"] = append(fieldErrors["email"], "this email is already taken")
		}

		if len(fieldErrors) > 0 {
			echoErr := ctx.JSON(http.StatusBadRequest, &Result{FieldErrors: fieldErrors})
			a.logger.Log(ctx, nil).Send()
			return echoErr
		}
	}

	oldUsername := user.Username
	if err = a.userStore.UpdateProfile(
		ctx.Request().Context(), user.ID, form.Email, form.Username, form.Bio,
	); err != nil {
		echoErr := ctx.JSON(http.StatusInternalServerError, formErrorResult(genericErrorMessage))
		a.logger.Log(ctx, err).Send()
		return echoErr
	}

	a.notifier.Tag(ctx.Request().Context(), profileCacheTag)
	if form.Username != oldUsername {
		paths := []string{"/"}
		if oldUsername != "" {
			paths = append(paths, "/users/"+oldUsername)
		}
		paths = append(paths, "/users/"+form.Username, "/feed", "/search")
		a.notifier.Path(ctx.Request().Context(), paths...)
	}

	echoErr := ctx.JSON(http.StatusOK, successResult("profile updated successfully"))
	a.logger.Log(ctx, nil).Send()
	return echoErr
}
