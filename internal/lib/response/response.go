package response

import (
	"encoding/json"
	"net/http"
)

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode JSON response", http.StatusInternalServerError)
		return
	}
}

func Error(w http.ResponseWriter, statusCode int, message string) {
	type errResponse struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	JSON(w, statusCode, errResponse{Success: false, Error: message})
}

// Redirect issues a permanent redirect to the canonical content URL.
// Used when a song or article is requested by numeric id instead of slug.
func Redirect(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, http.StatusMovedPermanently)
}
