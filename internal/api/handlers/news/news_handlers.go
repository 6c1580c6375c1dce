// internal/api/handlers/news/news_handlers.go
package news

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"soundhub/internal/lib/logger/utils"
	"soundhub/internal/lib/response"
	"soundhub/internal/service"
	"soundhub/internal/storage"
)

type NewsHandlers struct {
	news *service.NewsService
}

func NewNewsHandlers(news *service.NewsService) *NewsHandlers {
	return &NewsHandlers{news: news}
}

// @Summary News article by slug
// @Description Published articles only. Numeric ids redirect permanently to the slug URL.
// @Tags news
// @Produce json
// @Param slug path string true "Article slug or numeric id"
// @Success 200 {object} map[string]interface{}
// @Success 301 {string} string "Redirect to canonical slug URL"
// @Failure 404 {string} string "Not Found"
// @Router /news/{slug} [get]
func (h *NewsHandlers) GetArticleHandler(w http.ResponseWriter, r *http.Request) {
	segment := mux.Vars(r)["slug"]

	article, redirect, err := h.news.GetArticle(r.Context(), segment)
	if err != nil {
		if errors.Is(err, storage.ErrNewsNotFound) {
			response.Error(w, http.StatusNotFound, "Article not found")
			return
		}
		utils.Logger.Error("GetArticleHandler - news.GetArticle failed", zap.Error(err), zap.String("segment", segment))
		response.Error(w, http.StatusInternalServerError, "Failed to load article")
		return
	}
	if redirect != "" {
		response.Redirect(w, r, redirect)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{"success": true, "article": article})
}
