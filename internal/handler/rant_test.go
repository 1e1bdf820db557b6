package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslife/CampusLife_Go/internal/domain"
	"github.com/campuslife/CampusLife_Go/internal/rant"
	"github.com/campuslife/CampusLife_Go/internal/user"
)

// asUser injects an authenticated user ID the way the auth middleware does
func asUser(userID string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

func rantRouter(rantService rant.Service, userService user.Service, userID string) http.Handler {
	r := chi.NewRouter()
	r.Post("/rants", HandleCreateRant(rantService, userService))
	r.Get("/rants", HandleListRants(rantService))
	r.Put("/rants/{rantID}", HandleUpdateRant(rantService))
	r.Delete("/rants/{rantID}", HandleDeleteRant(rantService))
	return asUser(userID, r)
}

func TestRantLifecycle(t *testing.T) {
	userService := newUserService()
	samID := registerUser(t, userService, "sam@campus.edu", "Sam")
	rantService := rant.NewService(rant.NewFakeRepository())
	router := rantRouter(rantService, userService, samID)

	// Create
	body, _ := json.Marshal(RantRequest{Content: "the wifi died during my exam"})
	req := httptest.NewRequest(http.MethodPost, "/rants", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.Rant
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Sam", created.DisplayName)

	// List
	req = httptest.NewRequest(http.MethodGet, "/rants", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "wifi died")

	// Edit by a different user is forbidden
	otherRouter := rantRouter(rantService, userService, "someone-else")
	body, _ = json.Marshal(RantRequest{Content: "hijacked"})
	req = httptest.NewRequest(http.MethodPut, "/rants/"+created.ID, bytes.NewReader(body))
	rec = httptest.NewRecorder()
	otherRouter.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Delete by the author works
	req = httptest.NewRequest(http.MethodDelete, "/rants/"+created.ID, nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), MsgRantDeleted)
}

func TestListRants_BadLimit(t *testing.T) {
	userService := newUserService()
	router := rantRouter(rant.NewService(rant.NewFakeRepository()), userService, "u1")

	req := httptest.NewRequest(http.MethodGet, "/rants?limit=abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
