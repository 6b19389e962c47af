package http

import (
	"net/http"

	"github.com/MKhiriev/go-library-catalog/internal/app"
	"github.com/MKhiriev/go-library-catalog/internal/logger"
	"github.com/MKhiriev/go-library-catalog/internal/utils"
	"github.com/MKhiriev/go-library-catalog/models"
)

var signupMessages = routeMessages{invalid: app.MsgUsernameAndPasswordRequired, internal: app.MsgDatabaseError}

var loginMessages = routeMessages{invalid: app.MsgUsernameAndPasswordRequired, internal: app.MsgDatabaseError}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SignupRequest
	if err := decodeJSON(r, &request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		writeError(w, r, err, signupMessages)
		return
	}

	log.Info().Int64("id", user.UserID).Str("username", user.Username).Msg("user registered")

	utils.WriteJSON(w, models.SignupResponse{Message: app.MsgUserCreated, UserID: user.UserID}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := decodeJSON(r, &request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		writeError(w, r, err, loginMessages)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeError(w, r, err, routeMessages{internal: app.MsgInternalServerError})
		return
	}

	log.Debug().Int64("id", user.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{Message: app.MsgLoginSuccessful, Token: token.SignedString}, http.StatusOK)
}
