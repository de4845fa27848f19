package handlers

import (
	"context"
	"net/http"

	"blogger/internal/apperr"
	"blogger/internal/logger"
	"blogger/internal/models"
	"blogger/internal/utils/helpers"

	"go.uber.org/zap"
)

type loginService interface {
	Login(ctx context.Context, username, password string) (*models.LoginResponse, error)
}

type AuthHandler struct {
	authService loginService
}

func NewAuthHandler(authService loginService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login
// @Summary      Log in
// @Description  Checks username and password and returns the access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      models.LoginRequest  true  "Credentials"
// @Success      200   {object}  models.LoginResponse
// @Failure      401   {object}  helpers.MessageBody
// @Failure      500   {object}  helpers.ErrorBody
// @Router       /api/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.Error(w, err)
		return
	}

	res, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if apperr.IsKind(err, apperr.KindUnauthenticated) {
			helpers.Message(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		logger.WithCtx(r.Context()).Error("login failed", zap.Error(err))
		helpers.Error(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, res)
}
