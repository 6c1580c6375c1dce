// internal/api/handlers/songs/songs_handlers.go
package songs

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

// Limits applied when slicing the related list for a page payload. The
// full fetched list stays in the payload behind the visible cut so the
// client can offer a "show more" affordance.
type PageLimits struct {
	RelatedShown       int
	RelatedShownMobile int
	AlsoLikeCount      int
}

type SongHandlers struct {
	resolver   *service.ResolverService
	aggregator *service.AggregatorService
	related    *service.RelatedService
	songs      *service.SongService
	comments   *service.CommentService
	limits     PageLimits
}

func NewSongHandlers(
	resolver *service.ResolverService,
	aggregator *service.AggregatorService,
	related *service.RelatedService,
	songs *service.SongService,
	comments *service.CommentService,
	limits PageLimits,
) *SongHandlers {
	return &SongHandlers{
		resolver:   resolver,
		aggregator: aggregator,
		related:    related,
		songs:      songs,
		comments:   comments,
		limits:     limits,
	}
}

type songPageResponse struct {
	Success         bool                   `json:"success"`
	Song            *models.Song           `json:"song"`
	Slug            string                 `json:"slug"`
	Artists         []models.ArtistSummary `json:"artists"`
	DisplayName     string                 `json:"displayName"`
	IsCollaboration bool                   `json:"isCollaboration"`
	Related         []models.SongListItem  `json:"related"`
	RelatedShown    int                    `json:"relatedShown"`
	AlsoLike        []models.SongListItem  `json:"alsoLike"`
}

// @Summary Song page by slug
// @Description Resolve a "<title>-by-<artist>" slug to a song with its artists and related content. Numeric ids redirect permanently to the canonical slug URL.
// @Tags songs
// @Produce json
// @Param slug path string true "Song slug or numeric id"
// @Param mobile query bool false "Use the mobile related-list cut"
// @Success 200 {object} songPageResponse
// @Success 301 {string} string "Redirect to canonical slug URL"
// @Failure 404 {string} string "Not Found"
// @Failure 500 {string} string "Internal Server Error"
// @Router /songs/{slug} [get]
func (h *SongHandlers) GetSongPageHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	segment := vars["slug"]

	// One canonical URL per song: id-based requests bounce to the slug.
	if id, ok := service.IsNumericID(segment); ok {
		_, canonical, err := h.resolver.ResolveID(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrSongNotFound) {
				response.Error(w, http.StatusNotFound, "Song not found")
				return
			}
			utils.Logger.Error("GetSongPageHandler - resolver.ResolveID failed", zap.Error(err), zap.Int("id", id))
			response.Error(w, http.StatusInternalServerError, "Failed to resolve song")
			return
		}
		response.Redirect(w, r, canonical)
		return
	}

	song, err := h.resolver.ResolveSlug(r.Context(), segment)
	if err != nil {
		if errors.Is(err, storage.ErrSongNotFound) {
			response.Error(w, http.StatusNotFound, "Song not found")
			return
		}
		utils.Logger.Error("GetSongPageHandler - resolver.ResolveSlug failed", zap.Error(err), zap.String("slug", segment))
		response.Error(w, http.StatusInternalServerError, "Failed to resolve song")
		return
	}

	aggregation := h.aggregator.Aggregate(r.Context(), song)
	related := h.related.Related(r.Context(), song, aggregation.ArtistIDs())
	alsoLike := h.related.AlsoLike(r.Context(), song, h.limits.AlsoLikeCount)

	shown := h.limits.RelatedShown
	if r.URL.Query().Get("mobile") == "true" {
		shown = h.limits.RelatedShownMobile
	}
	if shown > len(related) {
		shown = len(related)
	}

	response.JSON(w, http.StatusOK, songPageResponse{
		Success:         true,
		Song:            song,
		Slug:            service.CanonicalSlug(song),
		Artists:         aggregation.Artists,
		DisplayName:     aggregation.DisplayName,
		IsCollaboration: aggregation.IsCollaboration,
		Related:         related,
		RelatedShown:    shown,
		AlsoLike:        alsoLike,
	})
	utils.Logger.Debug("GetSongPageHandler - song page served", zap.Int("song_id", song.ID), zap.String("slug", segment))
}

// @Summary Song data by id
// @Tags songs
// @Produce json
// @Param id path int true "Song ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {string} string "Not Found"
// @Router /api/songs/{id} [get]
func (h *SongHandlers) GetSongDataHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	song, err := h.songs.GetSong(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrSongNotFound) {
			response.Error(w, http.StatusNotFound, "Song not found")
			return
		}
		utils.Logger.Error("GetSongDataHandler - songs.GetSong failed", zap.Error(err), zap.Int("id", id))
		response.Error(w, http.StatusInternalServerError, "Failed to get song")
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{"success": true, "song": song})
}

// @Summary Count a play
// @Tags songs
// @Produce json
// @Param id path int true "Song ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {string} string "Not Found"
// @Router /api/songs/{id}/play [post]
func (h *SongHandlers) UpdatePlayCountHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	plays, err := h.songs.RegisterPlay(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrSongNotFound) {
			response.Error(w, http.StatusNotFound, "Song not found")
			return
		}
		utils.Logger.Error("UpdatePlayCountHandler - songs.RegisterPlay failed", zap.Error(err), zap.Int("id", id))
		response.Error(w, http.StatusInternalServerError, "Failed to update play count")
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{"success": true, "plays": plays})
}

// @Summary Download a song
// @Description Counts the download and redirects to the stored file path.
// @Tags songs
// @Param id path int true "Song ID"
// @Success 302 {string} string "Redirect to file"
// @Failure 404 {string} string "Not Found"
// @Router /api/songs/{id}/download [get]
func (h *SongHandlers) DownloadHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	song, err := h.songs.RegisterDownload(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrSongNotFound) {
			response.Error(w, http.StatusNotFound, "Song not found")
			return
		}
		utils.Logger.Error("DownloadHandler - songs.RegisterDownload failed", zap.Error(err), zap.Int("id", id))
		response.Error(w, http.StatusInternalServerError, "Failed to register download")
		return
	}
	if song.FilePath == nil || *song.FilePath == "" {
		response.Error(w, http.StatusNotFound, "Song has no file")
		return
	}

	http.Redirect(w, r, *song.FilePath, http.StatusFound)
}

// @Summary Delete song by id
// @Description Soft delete: the song disappears from public pages but the row is kept.
// @Tags songs
// @Produce json
// @Param id path int true "Song ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {string} string "Not Found"
// @Router /api/songs/{id} [delete]
func (h *SongHandlers) DeleteSongHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.songs.DeleteSong(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrSongNotFound) {
			response.Error(w, http.StatusNotFound, "Song not found")
			return
		}
		utils.Logger.Error("DeleteSongHandler - songs.DeleteSong failed", zap.Error(err), zap.Int("id", id))
		response.Error(w, http.StatusInternalServerError, "Failed to delete song")
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": "Song deleted"})
}

type commentListResponse struct {
	Success       bool             `json:"success"`
	AverageRating float64          `json:"average_rating"`
	RatingCount   int              `json:"rating_count"`
	Comments      []models.Comment `json:"comments"`
}

// @Summary List comments and ratings for a song
// @Tags comments
// @Produce json
// @Param song_id query int true "Song ID"
// @Param page query int false "Page number for pagination" default(1)
// @Param pageSize query int false "Number of comments per page" default(10)
// @Success 200 {object} commentListResponse
// @Router /api/comments [get]
func (h *SongHandlers) ListCommentsHandler(w http.ResponseWriter, r *http.Request) {
	queryParams := r.URL.Query()
	songID, err := strconv.Atoi(queryParams.Get("song_id"))
	if err != nil || songID <= 0 {
		response.Error(w, http.StatusBadRequest, "Invalid song_id")
		return
	}

	page, _ := strconv.Atoi(queryParams.Get("page"))
	pageSize, _ := strconv.Atoi(queryParams.Get("pageSize"))
	pagination := models.NewPagination(page, pageSize)

	comments, summary, err := h.comments.List(r.Context(), songID, pagination)
	if err != nil {
		utils.Logger.Error("ListCommentsHandler - comments.List failed", zap.Error(err), zap.Int("song_id", songID))
		response.Error(w, http.StatusInternalServerError, "Failed to list comments")
		return
	}
	if comments == nil {
		comments = []models.Comment{}
	}

	response.JSON(w, http.StatusOK, commentListResponse{
		Success:       true,
		AverageRating: summary.Average,
		RatingCount:   summary.Count,
		Comments:      comments,
	})
}

type postCommentRequest struct {
	SongID  int    `json:"song_id"`
	Author  string `json:"author"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

// @Summary Add a comment or a rating
// @Description action=add posts a comment; action=rate records a 1-5 rating.
// @Tags comments
// @Accept json
// @Produce json
// @Param action query string true "add or rate"
// @Param body body postCommentRequest true "Comment or rating"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {string} string "Bad Request"
// @Router /api/comments [post]
func (h *SongHandlers) PostCommentHandler(w http.ResponseWriter, r *http.Request) {
	var req postCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var err error
	switch r.URL.Query().Get("action") {
	case "add":
		_, err = h.comments.AddComment(r.Context(), req.SongID, req.Author, req.Content)
	case "rate":
		err = h.comments.Rate(r.Context(), req.SongID, req.Author, req.Rating)
	default:
		response.Error(w, http.StatusBadRequest, "Unknown action")
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, storage.ErrSongNotFound):
			response.Error(w, http.StatusNotFound, "Song not found")
		case errors.Is(err, service.ErrMissingAuthor),
			errors.Is(err, service.ErrEmptyComment),
			errors.Is(err, service.ErrInvalidRating):
			response.Error(w, http.StatusBadRequest, err.Error())
		default:
			utils.Logger.Error("PostCommentHandler - comment write failed", zap.Error(err), zap.Int("song_id", req.SongID))
			response.Error(w, http.StatusInternalServerError, "Failed to save comment")
		}
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func parseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		response.Error(w, http.StatusBadRequest, "Invalid song ID")
		return 0, false
	}
	return id, true
}
