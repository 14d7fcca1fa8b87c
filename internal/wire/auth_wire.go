package wire

import (
	"movietime/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// Identity endpoints. No sessions or tokens: the client keeps the
	// returned projection and treats its presence as "logged in".
	r.Post("/signup", authHandler.Signup)
	r.Post("/login", authHandler.Login)
}
