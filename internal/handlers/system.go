package handlers

import (
	"net/http"

	"blogger/internal/utils/helpers"
)

// Ping
// @Summary      Liveness probe
// @Tags         system
// @Produce      json
// @Success      200  {object}  helpers.MessageBody
// @Router       /ping [get]
func Ping(w http.ResponseWriter, _ *http.Request) {
	helpers.Message(w, http.StatusOK, "Server is running")
}

func NotFound(w http.ResponseWriter, _ *http.Request) {
	helpers.JSON(w, http.StatusNotFound, helpers.ErrorBody{
		Error:   "Not found",
		Details: "The requested resource was not found",
	})
}

func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	helpers.JSON(w, http.StatusMethodNotAllowed, helpers.ErrorBody{Error: "Method not allowed"})
}
