package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"movietime/internal/dto/request"
	"movietime/internal/dto/response"
	"movietime/internal/usecase"
	"movietime/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.IdentityService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.IdentityService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// Signup handles POST /signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req request.SignupRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if err := h.service.Register(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailTaken):
			utils.ResponseFailure(w, "User already exists")
		case strings.Contains(err.Error(), "validation failed"):
			utils.ResponseBadRequest(w, err.Error())
		default:
			h.log.Error("Signup failed", zap.Error(err))
			utils.ResponseInternalError(w, "Internal server error")
		}
		return
	}

	utils.ResponseSuccess(w, "Signup successful")
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	user, err := h.service.Authenticate(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			utils.ResponseJSON(w, http.StatusOK, response.AuthResponse{
				Success: false, Message: "User not found",
			})
		case errors.Is(err, usecase.ErrInvalidPassword):
			utils.ResponseJSON(w, http.StatusOK, response.AuthResponse{
				Success: false, Message: "Invalid password",
			})
		case strings.Contains(err.Error(), "validation failed"):
			utils.ResponseBadRequest(w, err.Error())
		default:
			h.log.Error("Login failed", zap.Error(err))
			utils.ResponseInternalError(w, "Internal server error")
		}
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.AuthResponse{
		Success: true,
		Message: "Login successful",
		User:    user,
	})
}
