package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-book-keeper/internal/app"
	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/internal/service"
	"github.com/MKhiriev/go-book-keeper/internal/store"
	"github.com/MKhiriev/go-book-keeper/internal/validators"
	"github.com/MKhiriev/go-book-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock UserService
// ─────────────────────────────────────────────

// mockUserService implements service.UserService for unit tests.
// Each method field can be overridden per test case.
type mockUserService struct {
	addUserFn        func(ctx context.Context, user models.User) (models.User, error)
	verifyUserFn     func(ctx context.Context, user models.User) error
	listUsersFn      func(ctx context.Context) ([]models.User, error)
	deleteAllUsersFn func(ctx context.Context) error
	deleteUserFn     func(ctx context.Context, id int64) (models.User, error)
}

func (m *mockUserService) AddUser(ctx context.Context, user models.User) (models.User, error) {
	return m.addUserFn(ctx, user)
}

func (m *mockUserService) VerifyUser(ctx context.Context, user models.User) error {
	return m.verifyUserFn(ctx, user)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}

func (m *mockUserService) DeleteAllUsers(ctx context.Context) error {
	return m.deleteAllUsersFn(ctx)
}

func (m *mockUserService) DeleteUser(ctx context.Context, id int64) (models.User, error) {
	return m.deleteUserFn(ctx, id)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithUsers builds a Handler with the given UserService mock.
func newHandlerWithUsers(t *testing.T, users service.UserService) *Handler {
	t.Helper()
	svcs := &service.Services{
		UserService: users,
	}
	return NewHandler(svcs, logger.Nop())
}

// userBody serialises a models.User to a JSON request body string.
func userBody(t *testing.T, u models.User) string {
	t.Helper()
	b, err := json.Marshal(u)
	require.NoError(t, err)
	return string(b)
}

// messageOf decodes the {"message": ...} envelope from a recorded response.
func messageOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Message
}

// errorOf decodes the {"error": ...} envelope from a recorded response.
func errorOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

// validUser is a convenience fixture used across multiple tests.
var validUser = models.User{
	Username: "alice",
	Password: "secret",
}

// ─────────────────────────────────────────────
// addUser
// ─────────────────────────────────────────────

func TestAddUser_Success(t *testing.T) {
	users := &mockUserService{
		addUserFn: func(_ context.Context, u models.User) (models.User, error) {
			u.ID = 1
			return u, nil
		},
	}

	h := newHandlerWithUsers(t, users)
	req := httptest.NewRequest(http.MethodPost, "/user/add", strings.NewReader(userBody(t, validUser)))
	rec := httptest.NewRecorder()

	h.addUser(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, app.MsgSignedUp, messageOf(t, rec))
}

func TestAddUser_InvalidJSON(t *testing.T) {
	h := newHandlerWithUsers(t, &mockUserService{})

	req := httptest.NewRequest(http.MethodPost, "/user/add", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()

	h.addUser(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidJSON, errorOf(t, rec))
}

func TestAddUser_MissingCredentials(t *testing.T) {
	users := &mockUserService{
		addUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, validators.ErrCredentialsRequired
		},
	}

	h := newHandlerWithUsers(t, users)
	req := httptest.NewRequest(http.MethodPost, "/user/add", strings.NewReader(`{"username":"alice"}`))
	rec := httptest.NewRecorder()

	h.addUser(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgUsernameAndPasswordRequired, errorOf(t, rec))
}

func TestAddUser_UsernameTaken(t *testing.T) {
	users := &mockUserService{
		addUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrUsernameTaken
		},
	}

	h := newHandlerWithUsers(t, users)
	req := httptest.NewRequest(http.MethodPost, "/user/add", strings.NewReader(userBody(t, validUser)))
	rec := httptest.NewRecorder()

	h.addUser(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, app.MsgUsernameTaken, errorOf(t, rec))
}

// ─────────────────────────────────────────────
// verifyUser
// ─────────────────────────────────────────────

func TestVerifyUser_Success(t *testing.T) {
	users := &mockUserService{
		verifyUserFn: func(_ context.Context, _ models.User) error {
			return nil
		},
	}

	h := newHandlerWithUsers(t, users)
	req := httptest.NewRequest(http.MethodPost, "/user/verify", strings.NewReader(userBody(t, validUser)))
	rec := httptest.NewRecorder()

	h.verifyUser(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, app.MsgUserVerified, messageOf(t, rec))
}

// TestVerifyUser_NotVerified verifies that both an unknown username and a
// wrong password produce the same 200 response, leaving no way to tell which
// accounts exist.
func TestVerifyUser_NotVerified(t *testing.T) {
	users := &mockUserService{
		verifyUserFn: func(_ context.Context, _ models.User) error {
			return service.ErrNotVerified
		},
	}

	h := newHandlerWithUsers(t, users)
	req := httptest.NewRequest(http.MethodPost, "/user/verify", strings.NewReader(userBody(t, validUser)))
	rec := httptest.NewRecorder()

	h.verifyUser(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, app.MsgUserNotVerified, messageOf(t, rec))
}

func TestVerifyUser_MissingCredentials(t *testing.T) {
	users := &mockUserService{
		verifyUserFn: func(_ context.Context, _ models.User) error {
			return validators.ErrCredentialsRequired
		},
	}

	h := newHandlerWithUsers(t, users)
	req := httptest.NewRequest(http.MethodPost, "/user/verify", strings.NewReader(`{"username":"alice"}`))
	rec := httptest.NewRecorder()

	h.verifyUser(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgUsernameAndPasswordRequired, errorOf(t, rec))
}

func TestVerifyUser_InvalidJSON(t *testing.T) {
	h := newHandlerWithUsers(t, &mockUserService{})

	req := httptest.NewRequest(http.MethodPost, "/user/verify", strings.NewReader("not json"))
	rec := httptest.NewRecorder()

	h.verifyUser(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// getUsers
// ─────────────────────────────────────────────

func TestGetUsers_Success(t *testing.T) {
	want := []models.User{
		{ID: 1, Username: "alice", Password: "$2a$10$hash"},
		{ID: 2, Username: "bob", Password: "$2a$10$hash2"},
	}
	users := &mockUserService{
		listUsersFn: func(_ context.Context) ([]models.User, error) {
			return want, nil
		},
	}

	h := newHandlerWithUsers(t, users)
	req := httptest.NewRequest(http.MethodGet, "/user/get", nil)
	rec := httptest.NewRecorder()

	h.getUsers(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestGetUsers_EmptyIsArray(t *testing.T) {
	users := &mockUserService{
		listUsersFn: func(_ context.Context) ([]models.User, error) {
			return nil, nil
		},
	}

	h := newHandlerWithUsers(t, users)
	req := httptest.NewRequest(http.MethodGet, "/user/get", nil)
	rec := httptest.NewRecorder()

	h.getUsers(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestGetUsers_StorageError(t *testing.T) {
	users := &mockUserService{
		listUsersFn: func(_ context.Context) ([]models.User, error) {
			return nil, store.ErrExecutingQuery
		},
	}

	h := newHandlerWithUsers(t, users)
	req := httptest.NewRequest(http.MethodGet, "/user/get", nil)
	rec := httptest.NewRecorder()

	h.getUsers(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, app.MsgInternalServerError, errorOf(t, rec))
}

// ─────────────────────────────────────────────
// deleteAllUsers / deleteUser
// ─────────────────────────────────────────────

func TestDeleteAllUsers_Success(t *testing.T) {
	users := &mockUserService{
		deleteAllUsersFn: func(_ context.Context) error {
			return nil
		},
	}

	h := newHandlerWithUsers(t, users)
	req := httptest.NewRequest(http.MethodDelete, "/user/delete", nil)
	rec := httptest.NewRecorder()

	h.deleteAllUsers(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, app.MsgAllUsersDeleted, messageOf(t, rec))
}

func TestDeleteUser_Success(t *testing.T) {
	users := &mockUserService{
		deleteUserFn: func(_ context.Context, id int64) (models.User, error) {
			assert.Equal(t, int64(7), id)
			return models.User{ID: 7, Username: "alice"}, nil
		},
	}

	h := newHandlerWithUsers(t, users)
	router := h.Init()

	req := httptest.NewRequest(http.MethodDelete, "/user/delete/7", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "The user alice has been deleted.", messageOf(t, rec))
}

func TestDeleteUser_NotFound(t *testing.T) {
	users := &mockUserService{
		deleteUserFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}

	h := newHandlerWithUsers(t, users)
	router := h.Init()

	req := httptest.NewRequest(http.MethodDelete, "/user/delete/404", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgUserNotFound, errorOf(t, rec))
}

func TestDeleteUser_NonNumericID(t *testing.T) {
	h := newHandlerWithUsers(t, &mockUserService{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodDelete, "/user/delete/abc", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
