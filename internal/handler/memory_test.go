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
	"github.com/campuslife/CampusLife_Go/internal/memories"
	"github.com/campuslife/CampusLife_Go/internal/storage"
)

const testMaxUploadBytes = 1 << 20

func memoriesRouter(t *testing.T, userID string) (http.Handler, memories.Service) {
	t.Helper()
	files, err := storage.NewDiskStore(t.TempDir())
	require.NoError(t, err)
	svc := memories.NewService(memories.NewFakeRepository(), files)

	r := chi.NewRouter()
	r.Post("/memories", HandleUploadMemory(svc, testMaxUploadBytes))
	r.Get("/memories", HandleListMemories(svc))
	r.Get("/memories/{memoryID}/photo", HandleGetMemoryPhoto(svc))
	r.Delete("/memories/{memoryID}", HandleDeleteMemory(svc))
	return asUser(userID, r), svc
}

func multipartUpload(t *testing.T, caption, contentType string, photo []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="photo"; filename="photo.jpg"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(photo)
	require.NoError(t, err)

	require.NoError(t, writer.WriteField("caption", caption))
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestMemoryUploadAndFetch(t *testing.T) {
	router, _ := memoriesRouter(t, "u1")

	body, contentType := multipartUpload(t, "movie night", "image/jpeg", []byte("jpeg bytes"))
	req := httptest.NewRequest(http.MethodPost, "/memories", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.Memory
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "movie night", created.Caption)

	// Fetch the photo back
	req = httptest.NewRequest(http.MethodGet, "/memories/"+created.ID+"/photo", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))

	data, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(data))
}

func TestMemoryUpload_RejectsNonImage(t *testing.T) {
	router, _ := memoriesRouter(t, "u1")

	body, contentType := multipartUpload(t, "", "application/pdf", []byte("%PDF"))
	req := httptest.NewRequest(http.MethodPost, "/memories", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMemoryUpload_MissingFile(t *testing.T) {
	router, _ := memoriesRouter(t, "u1")

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("caption", "no photo"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/memories", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgPhotoRequired)
}

func TestMemoryDelete_UploaderOnly(t *testing.T) {
	router, svc := memoriesRouter(t, "u2")

	memory, err := svc.Add(t.Context(), "u1", "", "image/png", bytes.NewReader([]byte("png")))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/memories/"+memory.ID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
