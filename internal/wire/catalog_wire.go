package wire

import (
	"movietime/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, movieHandler *adaptor.MovieHandler) {
	// GET /movies - full catalog, no server-side filtering or pagination
	r.Get("/movies", movieHandler.GetMovies)
}
