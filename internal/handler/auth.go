package handler

import (
	"net/http"

	"github.com/campuslife/CampusLife_Go/internal/domain"
	"github.com/campuslife/CampusLife_Go/internal/logger"
	"github.com/campuslife/CampusLife_Go/internal/user"
)

// SignupRequest represents the request to create an account
type SignupRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
	DisplayName string `json:"display_name" validate:"required,max=50"`
}

// LoginRequest represents the request to log in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse carries a session token and the account it belongs to
type SessionResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// UpdateNameRequest changes the account display name
type UpdateNameRequest struct {
	DisplayName string `json:"display_name" validate:"required,max=50"`
}

// UpdateEmailRequest changes the account email, verified by password
type UpdateEmailRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdatePasswordRequest rotates the account password
type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}

// HandleSignup creates a new account
// @Summary Sign up
// @Description Creates an account and returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Account details"
// @Success 201 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/auth/signup [post]
func HandleSignup(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Signup"); err != nil {
			return
		}

		created, err := userService.Register(r.Context(), req.Email, req.Password, req.DisplayName)
		if err != nil {
			respondServiceError(w, r, "Signup", err)
			return
		}

		token, _, err := userService.Login(r.Context(), created.Email, req.Password)
		if err != nil {
			respondServiceError(w, r, "Signup", err)
			return
		}

		respondJSON(w, http.StatusCreated, SessionResponse{Token: token, User: created})
	}
}

// HandleLogin authenticates an account
// @Summary Log in
// @Description Verifies credentials and returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} SessionResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/auth/login [post]
func HandleLogin(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Login"); err != nil {
			return
		}

		token, account, err := userService.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			respondServiceError(w, r, "Login", err)
			return
		}

		respondJSON(w, http.StatusOK, SessionResponse{Token: token, User: account})
	}
}

// HandleGetMe returns the authenticated account
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} domain.User
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/auth/me [get]
func HandleGetMe(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account, err := userService.GetUser(r.Context(), UserIDFromContext(r.Context()))
		if err != nil {
			respondServiceError(w, r, "Get current user", err)
			return
		}
		respondJSON(w, http.StatusOK, account)
	}
}

// HandleUpdateName changes the account display name
func HandleUpdateName(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateNameRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update name"); err != nil {
			return
		}

		account, err := userService.UpdateName(r.Context(), UserIDFromContext(r.Context()), req.DisplayName)
		if err != nil {
			respondServiceError(w, r, "Update name", err)
			return
		}
		respondJSON(w, http.StatusOK, account)
	}
}

// HandleUpdateEmail changes the account email
func HandleUpdateEmail(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateEmailRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update email"); err != nil {
			return
		}

		account, err := userService.UpdateEmail(r.Context(), UserIDFromContext(r.Context()), req.Email, req.Password)
		if err != nil {
			respondServiceError(w, r, "Update email", err)
			return
		}
		respondJSON(w, http.StatusOK, account)
	}
}

// HandleUpdatePassword rotates the account password
func HandleUpdatePassword(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req UpdatePasswordRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update password"); err != nil {
			return
		}

		userID := UserIDFromContext(r.Context())
		if err := userService.UpdatePassword(r.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
			respondServiceError(w, r, "Update password", err)
			return
		}

		log.Info("Password updated", "user_id", userID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPasswordUpdated})
	}
}
