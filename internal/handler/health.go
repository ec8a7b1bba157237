package handler

import "net/http"

type healthResponse struct {
	Status string `json:"status"`
}

func Health(w http.ResponseWriter, r *http.Request) {
	replyJSON(w, http.StatusOK, healthResponse{Status: "success"})
}
