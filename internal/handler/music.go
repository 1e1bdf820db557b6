package handler

import (
	"net/http"
	"strconv"

	"github.com/campuslife/CampusLife_Go/internal/domain"
	"github.com/campuslife/CampusLife_Go/internal/music"
)

// SongSearchResponse wraps song search results
type SongSearchResponse struct {
	Results []domain.Song `json:"results"`
}

// HandleSearchSongs proxies a song search to the upstream catalog
// @Summary Search songs
// @Tags music
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Max results"
// @Success 200 {object} SongSearchResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/music/search [get]
func HandleSearchSongs(searcher music.Searcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, ok := GetQueryParam(r, w, "q")
		if !ok {
			return
		}

		limit, err := strconv.Atoi(GetOptionalQueryParam(r, "limit", "0"))
		if err != nil || limit < 0 {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
			return
		}

		songs, err := searcher.Search(r.Context(), query, limit)
		if err != nil {
			respondServiceError(w, r, "Search songs", err)
			return
		}
		respondJSON(w, http.StatusOK, SongSearchResponse{Results: songs})
	}
}
