package http

import (
	"encoding/json"
	"log"
	"net/http"
)

// errorBody is the error half of the response envelope.
type errorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type errorEnvelope struct {
	OK    bool      `json:"ok"`
	Error errorBody `json:"error"`
}

// writeJSON renders the payload with the given status. Encoding failures
// are logged; at that point headers are already gone out.
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("http: encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string, fields map[string]string) {
	writeJSON(w, status, errorEnvelope{
		OK: false,
		Error: errorBody{
			Code:    code,
			Message: message,
			Fields:  fields,
		},
	})
}
