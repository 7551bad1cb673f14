package account_test

import (
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"testing"

	"github.com/5urf/carrot-challenge/account"
	"github.com/google/uuid"
)

func withdrawForm(password string) url.Values {
	return url.Values{"password": {password}}
}

func TestWithdrawSuccessDeletesThenDestroysSession(t *testing.T) {
	te := newTestEnv(t)
	seedPassword(t, te, "secret1")
	ops := []string{}
	te.users.ops = &ops
	te.sessions.ops = &ops

	rec, res := te.invoke(t, te.svc.Withdraw, withdrawForm("secret1"), true)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (result: %+v)", rec.Code, http.StatusOK, res)
	}
	if res.Message == "" {
		t.Errorf("want a success message, got %+v", res)
	}
	if want := []string{"delete_user", "delete_session"}; !reflect.DeepEqual(ops, want) {
		t.Errorf("operation order = %v, want %v", ops, want)
	}

	expired := false
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == account.SessionCookieName && cookie.Value == "" {
			expired = true
		}
	}
	if !expired {
		t.Errorf("session cookie not expired; Set-Cookie: %v", rec.Header().Values("Set-Cookie"))
	}
}

func TestWithdrawWithoutSession(t *testing.T) {
	te := newTestEnv(t)

	rec, res := te.invoke(t, te.svc.Withdraw, withdrawForm("secret1"), false)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if len(res.FormErrors) == 0 || len(res.FieldErrors) != 0 {
		t.Errorf("missing session must be a form error, got %+v", res)
	}
}

func TestWithdrawEmptyPasswordSkipsDatastore(t *testing.T) {
	te := newTestEnv(t)

	rec, res := te.invoke(t, te.svc.Withdraw, withdrawForm(""), true)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if len(res.FieldErrors["password"]) == 0 {
		t.Errorf("want a field error on password, got %+v", res)
	}
	if te.users.getUserCalls != 0 {
		t.Errorf("datastore read despite empty password")
	}
}

func TestWithdrawMissingUserRecord(t *testing.T) {
	te := newTestEnv(t)
	te.session.OwnerID = uuid.New()

	rec, res := te.invoke(t, te.svc.Withdraw, withdrawForm("secret1"), true)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if len(res.FormErrors) == 0 {
		t.Errorf("want a generic form error, got %+v", res)
	}
}

func TestWithdrawWrongPassword(t *testing.T) {
	te := newTestEnv(t)
	seedPassword(t, te, "secret1")

	rec, res := te.invoke(t, te.svc.Withdraw, withdrawForm("wrong1"), true)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if len(res.FieldErrors["password"]) == 0 {
		t.Errorf("want a field error on password, got %+v", res)
	}
	if te.users.deleteCalls != 0 {
		t.Errorf("record deleted despite wrong password")
	}
}

func TestWithdrawDeleteFailureLeavesSessionIntact(t *testing.T) {
	te := newTestEnv(t)
	seedPassword(t, te, "secret1")
	te.users.deleteErr = errFailedUpdate

	rec, res := te.invoke(t, te.svc.Withdraw, withdrawForm("secret1"), true)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if len(res.FormErrors) == 0 {
		t.Errorf("want a generic form error, got %+v", res)
	}
	for _, msg := range res.FormErrors {
		if strings.Contains(msg, errFailedUpdate.Error()) {
			t.Errorf("internal error detail leaked to caller: %q", msg)
		}
	}
	if te.sessions.deleteCalls != 0 {
		t.Errorf("session destroyed even though the delete failed")
	}
}
