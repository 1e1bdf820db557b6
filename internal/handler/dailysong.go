package handler

import (
	"errors"
	"net/http"

	"github.com/campuslife/CampusLife_Go/internal/dailysong"
	"github.com/campuslife/CampusLife_Go/internal/domain"
	"github.com/campuslife/CampusLife_Go/internal/user"
)

// SubmitSongRequest carries a song pick for today's winner slot
type SubmitSongRequest struct {
	TrackName  string `json:"track_name" validate:"required,max=200"`
	ArtistName string `json:"artist_name" validate:"required,max=200"`
	ArtworkURL string `json:"artwork_url" validate:"omitempty,url,max=500"`
	PreviewURL string `json:"preview_url" validate:"omitempty,url,max=500"`
}

// SongOfTheDayResponse reports today's winner. Winner is null while the
// slot is still open.
type SongOfTheDayResponse struct {
	Winner *domain.Submission `json:"winner"`
}

// SubmitStatusResponse reports whether the caller has submitted today
type SubmitStatusResponse struct {
	Submitted bool `json:"submitted"`
}

// StreakResponse reports the caller's consecutive-day streak
type StreakResponse struct {
	Streak int `json:"streak"`
}

// AlreadyWonResponse tells a rejected submitter who won
type AlreadyWonResponse struct {
	Error  string             `json:"error"`
	Winner *domain.Submission `json:"winner,omitempty"`
}

// HandleGetSongOfTheDay returns today's winning pick, if claimed
// @Summary Song of the day
// @Description Returns today's winning submission, or a null winner while
// @Description the slot is open
// @Tags daily-song
// @Produce json
// @Success 200 {object} SongOfTheDayResponse
// @Router /api/v1/daily-song [get]
func HandleGetSongOfTheDay(songService dailysong.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		winner, err := songService.GetSongOfTheDay(r.Context())
		if err != nil {
			respondServiceError(w, r, "Get song of the day", err)
			return
		}
		respondJSON(w, http.StatusOK, SongOfTheDayResponse{Winner: winner})
	}
}

// HandleGetSubmitStatus reports whether the caller already submitted today
func HandleGetSubmitStatus(songService dailysong.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		submitted, err := songService.HasSubmittedToday(r.Context(), UserIDFromContext(r.Context()))
		if err != nil {
			respondServiceError(w, r, "Get submit status", err)
			return
		}
		respondJSON(w, http.StatusOK, SubmitStatusResponse{Submitted: submitted})
	}
}

// HandleSubmitSong attempts to claim today's winner slot
// @Summary Submit a song pick
// @Description First pick of the day wins. Rejected picks receive the
// @Description winning submission so the UI can show who got there first.
// @Tags daily-song
// @Accept json
// @Produce json
// @Param request body SubmitSongRequest true "Song pick"
// @Success 201 {object} domain.SubmitResult
// @Failure 409 {object} AlreadyWonResponse
// @Router /api/v1/daily-song/submit [post]
func HandleSubmitSong(songService dailysong.Service, userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SubmitSongRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Submit song"); err != nil {
			return
		}

		userID := UserIDFromContext(r.Context())
		account, err := userService.GetUser(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Submit song", err)
			return
		}

		result, err := songService.Submit(r.Context(), userID, account.DisplayName, domain.Song{
			TrackName:  req.TrackName,
			ArtistName: req.ArtistName,
			ArtworkURL: req.ArtworkURL,
			PreviewURL: req.PreviewURL,
		})
		if err != nil {
			var alreadyWon *domain.AlreadyWonError
			if errors.As(err, &alreadyWon) {
				respondJSON(w, http.StatusConflict, AlreadyWonResponse{
					Error:  ErrMsgAlreadyWonError,
					Winner: alreadyWon.Winner,
				})
				return
			}
			respondServiceError(w, r, "Submit song", err)
			return
		}

		respondJSON(w, http.StatusCreated, result)
	}
}

// HandleGetStreak returns the caller's consecutive-day streak
func HandleGetStreak(songService dailysong.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		streak, err := songService.ComputeStreak(r.Context(), UserIDFromContext(r.Context()))
		if err != nil {
			respondServiceError(w, r, "Get streak", err)
			return
		}
		respondJSON(w, http.StatusOK, StreakResponse{Streak: streak})
	}
}
