package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslife/CampusLife_Go/internal/user"
)

func newUserService() user.Service {
	return user.NewService(user.NewFakeRepository(), user.NewTokenIssuer("test-secret", time.Hour))
}

func postJSON(t *testing.T, h http.HandlerFunc, target string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestHandleSignup(t *testing.T) {
	svc := newUserService()

	rec := postJSON(t, HandleSignup(svc), "/api/v1/auth/signup", SignupRequest{
		Email:       "sam@campus.edu",
		Password:    "hunter2hunter2",
		DisplayName: "Sam",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, "sam@campus.edu", resp.User.Email)
	assert.NotContains(t, rec.Body.String(), "password_hash", "hash never serializes")
}

func TestHandleSignup_ValidationFailure(t *testing.T) {
	svc := newUserService()

	rec := postJSON(t, HandleSignup(svc), "/api/v1/auth/signup", SignupRequest{
		Email:       "not-an-email",
		Password:    "short",
		DisplayName: "",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "email")
	assert.Contains(t, resp.Fields, "password")
	assert.Contains(t, resp.Fields, "displayname")
}

func TestHandleSignup_DuplicateEmail(t *testing.T) {
	svc := newUserService()
	signup := HandleSignup(svc)

	req := SignupRequest{Email: "sam@campus.edu", Password: "hunter2hunter2", DisplayName: "Sam"}
	require.Equal(t, http.StatusCreated, postJSON(t, signup, "/api/v1/auth/signup", req).Code)

	rec := postJSON(t, signup, "/api/v1/auth/signup", req)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgEmailTakenError)
}

func TestHandleLogin(t *testing.T) {
	svc := newUserService()
	require.Equal(t, http.StatusCreated, postJSON(t, HandleSignup(svc), "/api/v1/auth/signup", SignupRequest{
		Email: "sam@campus.edu", Password: "hunter2hunter2", DisplayName: "Sam",
	}).Code)

	rec := postJSON(t, HandleLogin(svc), "/api/v1/auth/login", LoginRequest{
		Email:    "sam@campus.edu",
		Password: "hunter2hunter2",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
}

func TestHandleLogin_BadCredentials(t *testing.T) {
	svc := newUserService()

	rec := postJSON(t, HandleLogin(svc), "/api/v1/auth/login", LoginRequest{
		Email:    "nobody@campus.edu",
		Password: "whatever1",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgInvalidCredentialsError)
}

func TestHandleGetMe(t *testing.T) {
	svc := newUserService()
	account, err := svc.Register(t.Context(), "sam@campus.edu", "hunter2hunter2", "Sam")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req = req.WithContext(WithUserID(req.Context(), account.ID))
	rec := httptest.NewRecorder()
	HandleGetMe(svc)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "sam@campus.edu")
}
