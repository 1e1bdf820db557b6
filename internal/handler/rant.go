package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/campuslife/CampusLife_Go/internal/rant"
	"github.com/campuslife/CampusLife_Go/internal/user"
)

// RantRequest carries the rant content for create and edit
type RantRequest struct {
	Content string `json:"content" validate:"required,max=1000"`
}

// HandleCreateRant posts a rant to the feed
// @Summary Post a rant
// @Tags rants
// @Accept json
// @Produce json
// @Param request body RantRequest true "Rant content"
// @Success 201 {object} domain.Rant
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/rants [post]
func HandleCreateRant(rantService rant.Service, userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RantRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create rant"); err != nil {
			return
		}

		userID := UserIDFromContext(r.Context())
		account, err := userService.GetUser(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Create rant", err)
			return
		}

		created, err := rantService.Create(r.Context(), userID, account.DisplayName, req.Content)
		if err != nil {
			respondServiceError(w, r, "Create rant", err)
			return
		}
		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleListRants returns the feed newest-first
func HandleListRants(rantService rant.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limitParam := GetOptionalQueryParam(r, "limit", "0")
		limit, err := strconv.Atoi(limitParam)
		if err != nil || limit < 0 {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
			return
		}

		rants, err := rantService.List(r.Context(), limit)
		if err != nil {
			respondServiceError(w, r, "List rants", err)
			return
		}
		respondJSON(w, http.StatusOK, rants)
	}
}

// HandleUpdateRant edits a rant (author only)
func HandleUpdateRant(rantService rant.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RantRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update rant"); err != nil {
			return
		}

		updated, err := rantService.Update(r.Context(), UserIDFromContext(r.Context()), chi.URLParam(r, "rantID"), req.Content)
		if err != nil {
			respondServiceError(w, r, "Update rant", err)
			return
		}
		respondJSON(w, http.StatusOK, updated)
	}
}

// HandleDeleteRant removes a rant (author only)
func HandleDeleteRant(rantService rant.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := rantService.Delete(r.Context(), UserIDFromContext(r.Context()), chi.URLParam(r, "rantID"))
		if err != nil {
			respondServiceError(w, r, "Delete rant", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgRantDeleted})
	}
}
