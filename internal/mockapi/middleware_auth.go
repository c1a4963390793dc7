package mockapi

import (
	"context"
	"net/http"

	"github.com/MKhiriev/appybrain-client/internal/app"
	"github.com/MKhiriev/appybrain-client/internal/logger"
	"github.com/MKhiriev/appybrain-client/internal/utils"
)

// auth accepts a request only when it carries a bearer access token that is
// correctly signed, unexpired and not revoked. The account is stored in the
// request context under [utils.AccountCtxKey]. Rejections are 401 with an
// "Unauthorized" message.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Send()
			utils.WriteJSONError(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		email, err := utils.ValidateAndParseJWTToken(tokenString, h.cfg.TokenSignKey, h.cfg.TokenIssuer)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteJSONError(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		if owner, ok := h.tokens.accessOwner(tokenString); !ok || owner != email {
			log.Info().Str("email", email).Msg("access token was revoked")
			utils.WriteJSONError(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.AccountCtxKey, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
