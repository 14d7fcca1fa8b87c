package utils

import (
	"encoding/json"
	"net/http"
)

// Response is the success/message envelope used by the mutation endpoints.
// Domain failures (duplicate email, bad password, ...) keep HTTP 200 and set
// Success=false; status codes other than 200 are reserved for malformed
// requests and infrastructure errors.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ResponseJSON writes any payload as JSON with the given status code.
func ResponseJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// ------------- Envelope helpers -------------

// ResponseSuccess writes 200 with success=true
func ResponseSuccess(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusOK, Response{Success: true, Message: message})
}

// ResponseFailure writes 200 with success=false
func ResponseFailure(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusOK, Response{Success: false, Message: message})
}

// ResponseBadRequest writes 400
func ResponseBadRequest(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusBadRequest, Response{Success: false, Message: message})
}

// ResponseInternalError writes 500
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusInternalServerError, Response{Success: false, Message: message})
}
