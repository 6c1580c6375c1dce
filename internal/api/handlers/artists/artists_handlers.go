// internal/api/handlers/artists/artists_handlers.go
package artists

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"soundhub/internal/lib/logger/utils"
	"soundhub/internal/lib/response"
	"soundhub/internal/models"
	"soundhub/internal/service"
	"soundhub/internal/storage"
)

type ArtistHandlers struct {
	artists *service.ArtistService
}

func NewArtistHandlers(artists *service.ArtistService) *ArtistHandlers {
	return &ArtistHandlers{artists: artists}
}

type profileResponse struct {
	Success bool                  `json:"success"`
	Artist  *models.ArtistSummary `json:"artist"`
	Songs   []models.SongListItem `json:"songs"`
}

// @Summary Artist profile by username
// @Description Profile summary with read-time stats plus the artist's uploaded and collaborated songs.
// @Tags artists
// @Produce json
// @Param name path string true "Artist username"
// @Success 200 {object} profileResponse
// @Failure 404 {string} string "Not Found"
// @Router /artists/{name} [get]
func (h *ArtistHandlers) GetProfileHandler(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	artist, songs, err := h.artists.Profile(r.Context(), name)
	if err != nil {
		if errors.Is(err, storage.ErrArtistNotFound) {
			response.Error(w, http.StatusNotFound, "Artist not found")
			return
		}
		utils.Logger.Error("GetProfileHandler - artists.Profile failed", zap.Error(err), zap.String("name", name))
		response.Error(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	response.JSON(w, http.StatusOK, profileResponse{Success: true, Artist: artist, Songs: songs})
}

type updateStatusRequest struct {
	IsActive bool `json:"is_active"`
}

// @Summary Toggle an artist's active flag
// @Tags artists
// @Accept json
// @Produce json
// @Param id path int true "Artist ID"
// @Param body body updateStatusRequest true "New status"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {string} string "Not Found"
// @Router /api/artists/{id}/status [post]
func (h *ArtistHandlers) UpdateStatusHandler(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		response.Error(w, http.StatusBadRequest, "Invalid artist ID")
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.artists.SetActive(r.Context(), id, req.IsActive); err != nil {
		if errors.Is(err, storage.ErrArtistNotFound) {
			response.Error(w, http.StatusNotFound, "Artist not found")
			return
		}
		utils.Logger.Error("UpdateStatusHandler - artists.SetActive failed", zap.Error(err), zap.Int("id", id))
		response.Error(w, http.StatusInternalServerError, "Failed to update status")
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
