package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-library-catalog/internal/app"
	"github.com/MKhiriev/go-library-catalog/internal/logger"
	"github.com/MKhiriev/go-library-catalog/internal/utils"
	"github.com/MKhiriev/go-library-catalog/models"
	"github.com/rs/zerolog"
)

// adminOnly guards the catalog write routes.
//
// It extracts the bearer token from the "Authorization" header, verifies it
// via [service.AuthService.ParseToken] and looks up the caller's stored role.
// The role in the store is authoritative, never a claim in the token.
//
// Responses:
//   - no token in the header: 403 [app.MsgTokenRequired].
//   - token fails verification (signature, issuer, expiry, format): 401 [app.MsgInvalidToken].
//   - role lookup fails or the user no longer exists: 500 [app.MsgFailedToAuth].
//   - stored role is not admin: 403 [app.MsgAdminRoleRequired].
//
// On success the decoded identity is stored in the request context with
// [utils.WithIdentity].
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Msg("no token provided")
			utils.WriteMessage(w, app.MsgTokenRequired, http.StatusForbidden)
			return
		}

		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("token rejected")
			utils.WriteMessage(w, app.MsgInvalidToken, http.StatusUnauthorized)
			return
		}

		zerolog.Ctx(ctx).UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Int64("user_id", token.UserID)
		})
		log = logger.FromContext(ctx)

		role, err := h.services.AuthService.GetUserRole(ctx, token.UserID)
		if err != nil {
			log.Err(err).Msg("role lookup failed")
			utils.WriteMessage(w, app.MsgFailedToAuth, http.StatusInternalServerError)
			return
		}

		if role != models.RoleAdmin {
			log.Info().Str("role", string(role)).Msg("admin role required")
			utils.WriteMessage(w, app.MsgAdminRoleRequired, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, token)))
	})
}

// getTokenFromAuthHeader extracts the token from a raw "Authorization"
// header value of the form "<scheme> <token>". The scheme itself is not
// checked.
//
// It returns the following sentinel errors:
//   - [ErrEmptyAuthorizationHeader] if the header is empty.
//   - [ErrInvalidAuthorizationHeader] if there is no second space-separated part.
//   - [ErrEmptyToken] if the second part is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
