package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslife/CampusLife_Go/internal/domain"
	"github.com/campuslife/CampusLife_Go/internal/profile"
	"github.com/campuslife/CampusLife_Go/internal/storage"
	"github.com/campuslife/CampusLife_Go/internal/user"
)

func newProfileService(t *testing.T) profile.Service {
	t.Helper()
	files, err := storage.NewDiskStore(t.TempDir())
	require.NoError(t, err)
	return profile.NewService(profile.NewFakeRepository(), files)
}

func profileRouter(profileService profile.Service, userService user.Service, userID string) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/v1/profiles/me", HandleGetMyProfile(profileService, userService))
	r.Put("/api/v1/profiles/me", HandleUpdateProfile(profileService))
	r.Put("/api/v1/profiles/me/avatar", HandleUploadAvatar(profileService, testMaxUploadBytes))
	r.Get("/api/v1/profiles/search", HandleSearchProfiles(profileService))
	r.Get("/api/v1/profiles/birthdays", HandleGetBirthdays(profileService))
	r.Get("/api/v1/profiles/{userID}", HandleGetProfile(profileService))
	r.Get("/api/v1/profiles/{userID}/avatar", HandleGetAvatar(profileService))
	return asUser(userID, r)
}

func avatarUpload(t *testing.T, contentType string, image []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="avatar"; filename="avatar.png"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(image)
	require.NoError(t, err)

	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func registerProfileUser(t *testing.T, userService user.Service, email, name string) string {
	t.Helper()
	account, err := userService.Register(t.Context(), email, "hunter2hunter2", name)
	require.NoError(t, err)
	return account.ID
}

func TestHandleGetMyProfile_BootstrapsOnFirstAccess(t *testing.T) {
	userService := newUserService()
	profileService := newProfileService(t)
	userID := registerProfileUser(t, userService, "ana@campus.edu", "Ana")
	router := profileRouter(profileService, userService, userID)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles/me", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, "Ana", got.DisplayName, "display name copied from the account")
}

func TestHandleUpdateProfile(t *testing.T) {
	userService := newUserService()
	profileService := newProfileService(t)
	userID := registerProfileUser(t, userService, "ana@campus.edu", "Ana")
	router := profileRouter(profileService, userService, userID)

	// Bootstrap first
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/profiles/me", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := json.Marshal(map[string]string{
		"bio":      "Third-year, mostly in the library",
		"course":   "computer science",
		"birthday": "2004-06-15",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/profiles/me", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Third-year, mostly in the library", got.Bio)
	assert.Equal(t, "Computer Science", got.Course, "course is title-cased")
	assert.Equal(t, "2004-06-15", got.Birthday)
}

func TestHandleUpdateProfile_BadBirthday(t *testing.T) {
	userService := newUserService()
	profileService := newProfileService(t)
	userID := registerProfileUser(t, userService, "ana@campus.edu", "Ana")
	router := profileRouter(profileService, userService, userID)

	body := []byte(`{"birthday": "June 15th"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/profiles/me", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetProfile_NotFound(t *testing.T) {
	userService := newUserService()
	profileService := newProfileService(t)
	userID := registerProfileUser(t, userService, "ana@campus.edu", "Ana")
	router := profileRouter(profileService, userService, userID)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles/no-such-user", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetBirthdays_InvalidMonth(t *testing.T) {
	userService := newUserService()
	profileService := newProfileService(t)
	userID := registerProfileUser(t, userService, "ana@campus.edu", "Ana")
	router := profileRouter(profileService, userService, userID)

	for _, month := range []string{"0", "13", "july"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles/birthdays?month="+month, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "month=%s", month)
	}
}

func TestHandleSearchProfiles(t *testing.T) {
	userService := newUserService()
	profileService := newProfileService(t)
	userID := registerProfileUser(t, userService, "ana@campus.edu", "Ana")
	router := profileRouter(profileService, userService, userID)

	_, err := profileService.GetOrCreate(t.Context(), userID, "Ana Silva")
	require.NoError(t, err)
	_, err = profileService.GetOrCreate(t.Context(), "other-user", "Bruno Costa")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles/search?q=ana", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []domain.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Ana Silva", got[0].DisplayName)
}

func TestAvatarUploadAndFetch(t *testing.T) {
	userService := newUserService()
	profileService := newProfileService(t)
	userID := registerProfileUser(t, userService, "ana@campus.edu", "Ana")
	router := profileRouter(profileService, userService, userID)

	// Bootstrap the profile
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/profiles/me", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, contentType := avatarUpload(t, "image/png", []byte("png bytes"))
	req := httptest.NewRequest(http.MethodPut, "/api/v1/profiles/me/avatar", body)
	req.Header.Set("Content-Type", contentType)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated domain.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	require.NotEmpty(t, updated.AvatarID)

	// Fetch the avatar back by user ID
	req = httptest.NewRequest(http.MethodGet, "/api/v1/profiles/"+userID+"/avatar", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	data, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, "png bytes", string(data))
}

func TestAvatarUpload_RejectsNonImage(t *testing.T) {
	userService := newUserService()
	profileService := newProfileService(t)
	userID := registerProfileUser(t, userService, "ana@campus.edu", "Ana")
	router := profileRouter(profileService, userService, userID)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/profiles/me", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, contentType := avatarUpload(t, "application/pdf", []byte("%PDF"))
	req := httptest.NewRequest(http.MethodPut, "/api/v1/profiles/me/avatar", body)
	req.Header.Set("Content-Type", contentType)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetAvatar_NoneUploaded(t *testing.T) {
	userService := newUserService()
	profileService := newProfileService(t)
	userID := registerProfileUser(t, userService, "ana@campus.edu", "Ana")
	router := profileRouter(profileService, userService, userID)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/profiles/me", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles/"+userID+"/avatar", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgAvatarNotFoundError)
}
