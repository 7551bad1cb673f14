package account_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/5urf/carrot-challenge/account"
	"github.com/5urf/carrot-challenge/config"
	v1 "github.com/5urf/carrot-challenge/store/v1"
	"github.com/5urf/carrot-challenge/store/v1/types"
	"github.com/5urf/carrot-challenge/telemetry"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var errFailedUpdate = errors.New("connection reset by peer")

type existsCall struct {
	username string
	email    string
}

type profileUpdate struct {
	email    string
	username string
	bio      string
}

type fakeUserStore struct {
	user *types.User
	ops  *[]string

	existsCalls        []existsCall
	updateProfileCalls []profileUpdate
	updatePWDCalls     []string

	usernameTaken bool
	emailTaken    bool

	getUserCalls int
	deleteCalls  int

	getErr    error
	updateErr error
	pwdErr    error
	deleteErr error
}

func (f *fakeUserStore) record(op string) {
	if f.ops != nil {
		*f.ops = append(*f.ops, op)
	}
}

func (f *fakeUserStore) GetUserByID(_ context.Context, userID uuid.UUID) (*types.User, error) {
	f.getUserCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.user == nil || f.user.ID != userID {
		return nil, v1.WrapDatabaseError(sql.ErrNoRows, v1.DatabaseOperationRead)
	}

	return f.user, nil
}

func (f *fakeUserStore) GetUserByUsername(_ context.Context, username string) (*types.User, error) {
	if f.user == nil || f.user.Username != username {
		return nil, v1.WrapDatabaseError(sql.ErrNoRows, v1.DatabaseOperationRead)
	}

	return f.user, nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*types.User, error) {
	if f.user == nil || f.user.Email != email {
		return nil, v1.WrapDatabaseError(sql.ErrNoRows, v1.DatabaseOperationRead)
	}

	return f.user, nil
}

func (f *fakeUserStore) UserExists(_ context.Context, username, email string) (bool, bool) {
	f.existsCalls = append(f.existsCalls, existsCall{username: username, email: email})
	return username != "" && f.usernameTaken, email != "" && f.emailTaken
}

func (f *fakeUserStore) UpdateProfile(_ context.Context, _ uuid.UUID, email, username, bio string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updateProfileCalls = append(f.updateProfileCalls, profileUpdate{email: email, username: username, bio: bio})
	return nil
}

func (f *fakeUserStore) UpdateUserPWD(_ context.Context, _ uuid.UUID, newPassword string) error {
	if f.pwdErr != nil {
		return f.pwdErr
	}
	f.updatePWDCalls = append(f.updatePWDCalls, newPassword)
	return nil
}

func (f *fakeUserStore) DeleteUser(_ context.Context, _ uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleteCalls++
	f.record("delete_user")
	return nil
}

type fakeSessionStore struct {
	session *types.Session
	ops     *[]string

	deleteCalls int
	deleteErr   error
}

func (f *fakeSessionStore) record(op string) {
	if f.ops != nil {
		*f.ops = append(*f.ops, op)
	}
}

func (f *fakeSessionStore) GetSession(_ context.Context, sessionID uuid.UUID) (*types.Session, error) {
	if f.session == nil || f.session.ID != sessionID {
		return nil, v1.WrapDatabaseError(sql.ErrNoRows, v1.DatabaseOperationRead)
	}

	return f.session, nil
}

func (f *fakeSessionStore) AddSession(_ context.Context, _, _ uuid.UUID) error {
	return nil
}

func (f *fakeSessionStore) DeleteSession(_ context.Context, _ uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleteCalls++
	f.record("delete_session")
	return nil
}

func (f *fakeSessionStore) DeleteAllSessions(_ context.Context, _ uuid.UUID) error {
	return nil
}

type fakeNotifier struct {
	tags  []string
	paths []string
}

func (f *fakeNotifier) Tag(_ context.Context, tags ...string) {
	f.tags = append(f.tags, tags...)
}

func (f *fakeNotifier) Path(_ context.Context, paths ...string) {
	f.paths = append(f.paths, paths...)
}

func testConfig() *config.CarrotConfig {
	return &config.CarrotConfig{
		WebAppConfig: config.WebAppConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		StoreConfig:  config.Store{Kind: config.StoreKindSQLite},
		HTTP:         config.HTTP{Host: "localhost", FQDN: "localhost", Port: 8080},
		Environment:  config.Local,
	}
}

func testLogger() telemetry.Logger {
	return telemetry.ZLogger(config.Local, config.Telemetry{
		Logging: config.Logging{Level: "disabled"},
	})
}

type testEnv struct {
	svc      account.Accounts
	users    *fakeUserStore
	sessions *fakeSessionStore
	notifier *fakeNotifier
	user     *types.User
	session  *types.Session
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ops := []string{}
	user := &types.User{
		ID:       uuid.New(),
		Username: "bob",
		Email:    "bob@example.com",
		Bio:      "hello",
	}
	session := &types.Session{
		ID:      uuid.New(),
		OwnerID: user.ID,
	}

	usersStore := &fakeUserStore{user: user, ops: &ops}
	sessionsStore := &fakeSessionStore{session: session, ops: &ops}
	notifier := &fakeNotifier{}

	svc := account.New(testConfig(), usersStore, sessionsStore, notifier, testLogger())

	return &testEnv{
		svc:      svc,
		users:    usersStore,
		sessions: sessionsStore,
		notifier: notifier,
		user:     user,
		session:  session,
	}
}

// invoke runs a handler behind the session middleware the way the router
// wires it in production.
func (te *testEnv) invoke(
	t *testing.T,
	handler echo.HandlerFunc,
	form url.Values,
	withSession bool,
) (*httptest.ResponseRecorder, *account.Result) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if withSession {
		req.AddCookie(&http.Cookie{Name: account.SessionCookieName, Value: te.session.ID.String()})
	}

	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	if err := te.svc.SessionMiddleware()(handler)(ctx); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	var res account.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("response is not a Result: %v", err)
	}

	return rec, &res
}
