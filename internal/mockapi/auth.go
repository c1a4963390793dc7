package mockapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/appybrain-client/internal/app"
	"github.com/MKhiriev/appybrain-client/internal/logger"
	"github.com/MKhiriev/appybrain-client/internal/utils"
	"github.com/MKhiriev/appybrain-client/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("invalid JSON was passed")
		utils.WriteJSONError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	u, err := h.users.authenticate(req.Email, req.Password)
	if err != nil {
		log.Info().Str("func", "*Handler.login").Str("email", req.Email).Msg("wrong credentials")
		_, _ = utils.WriteJSON(w, models.LoginResponse{Success: false, Message: app.MsgInvalidLoginPassword}, http.StatusOK)
		return
	}

	accessToken, expiresAt, err := h.issueAccessToken(u.email)
	if err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("error issuing access token")
		utils.WriteJSONError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, models.LoginResponse{
		Success:       true,
		AccessToken:   accessToken,
		RefreshToken:  h.tokens.issueRefresh(u.email),
		ExpiresAt:     expiresAt,
		ResetPassword: u.resetPassword,
	}, http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		log.Info().Str("func", "*Handler.refresh").Msg("refresh token missing")
		utils.WriteJSONError(w, app.MsgRefreshTokenRequired, http.StatusBadRequest)
		return
	}

	email, ok := h.tokens.refreshOwner(req.RefreshToken)
	if !ok {
		log.Info().Str("func", "*Handler.refresh").Msg("unknown refresh token")
		utils.WriteJSONError(w, app.MsgUnauthorized, http.StatusUnauthorized)
		return
	}

	accessToken, expiresAt, err := h.issueAccessToken(email)
	if err != nil {
		log.Err(err).Str("func", "*Handler.refresh").Msg("error issuing access token")
		utils.WriteJSONError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, models.RefreshResponse{AccessToken: accessToken, ExpiresAt: expiresAt}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	email, _ := utils.GetAccountFromContext(r.Context())
	h.tokens.revokeAll(email)

	logger.FromRequest(r).Info().Str("func", "*Handler.logout").Str("email", email).Msg("logged out")
	_, _ = utils.WriteJSON(w, map[string]bool{"success": true}, http.StatusOK)
}

func (h *Handler) logonUser(w http.ResponseWriter, r *http.Request) {
	email, _ := utils.GetAccountFromContext(r.Context())

	u, ok := h.users.get(email)
	if !ok {
		utils.WriteJSONError(w, app.MsgUnauthorized, http.StatusUnauthorized)
		return
	}

	_, _ = utils.WriteJSON(w, models.LogonUserResponse{
		Success: true,
		User:    &models.AccountInfo{ID: u.id, Email: u.email, Name: u.name},
	}, http.StatusOK)
}

func (h *Handler) issueAccessToken(email string) (string, int64, error) {
	if h.cfg.TokenDuration <= 0 {
		return "", 0, errors.New("token duration is not configured")
	}

	token, expiresAt, err := utils.GenerateJWTToken(h.cfg.TokenIssuer, email, h.cfg.TokenDuration, h.cfg.TokenSignKey)
	if err != nil {
		return "", 0, err
	}
	h.tokens.addAccess(token, email)

	return token, expiresAt.UnixMilli(), nil
}
