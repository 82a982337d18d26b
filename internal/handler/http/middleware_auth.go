package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-food-keeper/internal/logger"
	"github.com/MKhiriev/go-food-keeper/internal/service"
	"github.com/MKhiriev/go-food-keeper/internal/utils"
)

// auth enforces bearer JWT authentication. On success the token subject is
// stored with [utils.ContextWithUserID]; every rejection is a 401 with a JSON
// error body and a WWW-Authenticate challenge.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Str("func", "*Handler.auth").Send()
			unauthorized(w, r, ErrEmptyAuthorizationHeader.Error())
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Warn().Err(err).Str("func", "*Handler.auth").Send()
			unauthorized(w, r, ErrInvalidAuthorizationHeader.Error())
			return
		}

		token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenIsExpiredOrInvalid) {
				log.Warn().Err(err).Str("func", "*Handler.auth").Msg("token expired or invalid")
				unauthorized(w, r, service.ErrTokenIsExpiredOrInvalid.Error())
				return
			}
			log.Err(err).Str("func", "*Handler.auth").Msg("error occurred during parsing token")
			unauthorized(w, r, http.StatusText(http.StatusUnauthorized))
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.ContextWithUserID(r.Context(), token.UserID)))
	})
}

func unauthorized(w http.ResponseWriter, r *http.Request, message string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
	writeJSONError(w, r, message, http.StatusUnauthorized, nil)
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: Bearer <token>
//
// Any other scheme, a missing token or extra parts yield
// [ErrInvalidAuthorizationHeader].
func getTokenFromAuthHeader(authHeader string) (string, error) {
	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)
	}

	return tokenString, nil
}
