package handler

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/campuslife/CampusLife_Go/internal/logger"
	"github.com/campuslife/CampusLife_Go/internal/profile"
	"github.com/campuslife/CampusLife_Go/internal/user"
)

// avatarFormField is the multipart field carrying the avatar image
const avatarFormField = "avatar"

// UpdateProfileRequest carries the editable profile fields. Absent fields
// are left unchanged. The avatar is not editable here: its file ID is
// assigned by the avatar upload endpoint.
type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name" validate:"omitempty,max=50"`
	Bio         *string `json:"bio" validate:"omitempty,max=500"`
	Course      *string `json:"course" validate:"omitempty,max=100"`
	Birthday    *string `json:"birthday" validate:"omitempty,calendardate"`
}

// HandleGetMyProfile returns the caller's profile, creating it on first
// access
func HandleGetMyProfile(profileService profile.Service, userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := UserIDFromContext(r.Context())

		account, err := userService.GetUser(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get profile", err)
			return
		}

		p, err := profileService.GetOrCreate(r.Context(), userID, account.DisplayName)
		if err != nil {
			respondServiceError(w, r, "Get profile", err)
			return
		}
		respondJSON(w, http.StatusOK, p)
	}
}

// HandleGetProfile returns another user's profile
func HandleGetProfile(profileService profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := profileService.Get(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			respondServiceError(w, r, "Get profile", err)
			return
		}
		respondJSON(w, http.StatusOK, p)
	}
}

// HandleUpdateProfile edits the caller's own profile
func HandleUpdateProfile(profileService profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateProfileRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update profile"); err != nil {
			return
		}

		p, err := profileService.Update(r.Context(), UserIDFromContext(r.Context()), profile.Update{
			DisplayName: req.DisplayName,
			Bio:         req.Bio,
			Course:      req.Course,
			Birthday:    req.Birthday,
		})
		if err != nil {
			respondServiceError(w, r, "Update profile", err)
			return
		}
		respondJSON(w, http.StatusOK, p)
	}
}

// HandleListProfiles returns the campus directory
func HandleListProfiles(profileService profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profiles, err := profileService.List(r.Context())
		if err != nil {
			respondServiceError(w, r, "List profiles", err)
			return
		}
		respondJSON(w, http.StatusOK, profiles)
	}
}

// HandleSearchProfiles fuzzy-searches the directory by name or course
func HandleSearchProfiles(profileService profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := GetOptionalQueryParam(r, "q", "")

		profiles, err := profileService.Search(r.Context(), query)
		if err != nil {
			respondServiceError(w, r, "Search profiles", err)
			return
		}
		respondJSON(w, http.StatusOK, profiles)
	}
}

// HandleUploadAvatar accepts a multipart avatar image for the caller's own
// profile
// @Summary Upload an avatar
// @Tags profiles
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Avatar image"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/profiles/me/avatar [put]
func HandleUploadAvatar(profileService profile.Service, maxUploadBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			log.Warn("Failed to parse avatar form", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		file, header, err := r.FormFile(avatarFormField)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgAvatarRequired)
			return
		}
		defer file.Close()

		p, err := profileService.UpdateAvatar(r.Context(), UserIDFromContext(r.Context()),
			header.Header.Get("Content-Type"), file)
		if err != nil {
			respondServiceError(w, r, "Upload avatar", err)
			return
		}
		respondJSON(w, http.StatusOK, p)
	}
}

// HandleGetAvatar streams a user's avatar image
func HandleGetAvatar(profileService profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		reader, fileID, err := profileService.OpenAvatar(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			respondServiceError(w, r, "Get avatar", err)
			return
		}
		defer reader.Close()

		if contentType := mime.TypeByExtension(filepath.Ext(fileID)); contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		if _, err := io.Copy(w, reader); err != nil {
			log.Error("Failed to stream avatar", "file_id", fileID, "error", err)
		}
	}
}

// HandleGetBirthdays lists birthdays for a month (defaults to the current
// month)
func HandleGetBirthdays(profileService profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		monthParam := GetOptionalQueryParam(r, "month", strconv.Itoa(int(time.Now().Month())))
		month, err := strconv.Atoi(monthParam)
		if err != nil || month < 1 || month > 12 {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidMonth)
			return
		}

		entries, err := profileService.BirthdaysInMonth(r.Context(), time.Month(month))
		if err != nil {
			respondServiceError(w, r, "Get birthdays", err)
			return
		}
		respondJSON(w, http.StatusOK, entries)
	}
}
