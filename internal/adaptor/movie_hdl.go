package adaptor

import (
	"net/http"

	"movietime/internal/usecase"
	"movietime/pkg/utils"

	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.CatalogService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log,
	}
}

// GetMovies handles GET /movies. The response is the plain movie array, not
// the success/message envelope.
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.ListMovies(r.Context())
	if err != nil {
		h.log.Error("List movies failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, movies)
}
