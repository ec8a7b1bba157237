package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type errorResponse struct {
	Error string `json:"error"`
}

const internalServerError = "Internal server error"

func replyJSON(w http.ResponseWriter, statusCode int, output any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(output)
	if err != nil {
		slog.Error("encode json response failed", "error", err)
	}
}

func replyRawJSON(w http.ResponseWriter, statusCode int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, err := w.Write(body)
	if err != nil {
		slog.Error("write json response failed", "error", err)
	}
}

func replyInternalError(w http.ResponseWriter) {
	replyJSON(w, http.StatusInternalServerError, errorResponse{Error: internalServerError})
}
