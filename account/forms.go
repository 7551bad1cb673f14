package account

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

type (
	// ProfileForm carries the raw profile-edit fields. Normalize must run
	// before validation so the email shape check and the uniqueness lookup
	// both see the canonical value.
	ProfileForm struct {
		Email    string `form:"email" validate:"required,email"`
		Username string `form:"username" validate:"required,min=3"`
		Bio      string `form:"bio" validate:"-"`
	}

	PasswordForm struct {
		CurrentPassword string `form:"currentPassword" validate:"required"`
		NewPassword     string `form:"newPassword" validate:"required,min=8,containsdigit"`
		ConfirmPassword string `form:"confirmPassword" validate:"required,eqfield=NewPassword"`
	}

	WithdrawForm struct {
		Password string `form:"password" validate:"required"`
	}
)

func (f *ProfileForm) Normalize() {
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	f.Username = strings.TrimSpace(f.Username)
}

type formValidator struct {
	validate *validator.Validate
	trans    ut.Translator
}

var forms = newFormValidator()

func newFormValidator() *formValidator {
	v := validator.New()

	// surface the wire-level field names in errors, not Go struct fields
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(v, trans); err != nil {
		panic(err)
	}

	if err := v.RegisterValidation("containsdigit", containsDigit); err != nil {
		panic(err)
	}

	err := v.RegisterTranslation("containsdigit", trans,
		func(ut ut.Translator) error {
			return ut.Add("containsdigit", "{0} must contain at least one number", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T("containsdigit", fe.Field())
			return t
		},
	)
	if err != nil {
		panic(err)
	}

	return &formValidator{validate: v, trans: trans}
}

func containsDigit(fl validator.FieldLevel) bool {
	for _, ch := range fl.Field().String() {
		if unicode.IsDigit(ch) {
			return true
		}
	}

	return false
}

// validateForm runs the pure structural phase. It returns per-field error
// messages, or nil when the form is valid. No datastore access happens here.
func validateForm(form any) map[string][]string {
	err := forms.validate.Struct(form)
	if err == nil {
		return nil
	}

	validatorErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string][]string{"": {err.Error()}}
	}

	fieldErrors := make(map[string][]string, len(validatorErrs))
	for _, fe := range validatorErrs {
		fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], fe.Translate(forms.trans))
	}

	return fieldErrors
}
