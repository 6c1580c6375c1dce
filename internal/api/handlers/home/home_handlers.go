// internal/api/handlers/home/home_handlers.go
package home

import (
	"net/http"

	"soundhub/internal/lib/response"
	"soundhub/internal/service"
)

type HomeHandlers struct {
	homepage *service.HomepageService
}

func NewHomeHandlers(homepage *service.HomepageService) *HomeHandlers {
	return &HomeHandlers{homepage: homepage}
}

// @Summary Homepage feeds
// @Description Charts, trending, new releases, news sections and ticker. Sections degrade independently; the page never fails outright.
// @Tags home
// @Produce json
// @Success 200 {object} models.Homepage
// @Router / [get]
func (h *HomeHandlers) GetHomepageHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.homepage.Build(r.Context()))
}

func (h *HomeHandlers) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
