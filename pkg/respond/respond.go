package respond

import (
	"encoding/json"
	"net/http"
)

// Envelope is the body of every API response.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func JSON(w http.ResponseWriter, r *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, r *http.Request, code int, message string, data any) {
	JSON(w, r, code, Envelope{Success: true, Message: message, Data: data})
}

func Error(w http.ResponseWriter, r *http.Request, code int, message string) {
	Fail(w, r, code, message, nil)
}

// Fail writes an unsuccessful envelope that still carries data, e.g.
// per-field validation messages.
func Fail(w http.ResponseWriter, r *http.Request, code int, message string, data any) {
	JSON(w, r, code, Envelope{Success: false, Message: message, Data: data})
}
