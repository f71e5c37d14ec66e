package handlers

import (
	"net/http"

	"github.com/grvbrk/tubelink-server/internal/utils"
)

func HandlerHealth(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, utils.Envelope{
		"success": true,
		"status":  http.StatusOK,
		"message": "ok",
	})
}
