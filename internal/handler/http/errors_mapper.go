package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-library-catalog/internal/app"
	"github.com/MKhiriev/go-library-catalog/internal/logger"
	"github.com/MKhiriev/go-library-catalog/internal/service"
	"github.com/MKhiriev/go-library-catalog/internal/store"
	"github.com/MKhiriev/go-library-catalog/internal/utils"
	"github.com/MKhiriev/go-library-catalog/internal/validators"
)

// routeMessages are the client messages a route uses for errors that carry
// no message of their own.
type routeMessages struct {
	// invalid is sent with 400 when validation failed on something other
	// than a named request field (e.g. a missing query parameter).
	invalid string

	// internal is sent with 500 for store and other unexpected failures.
	internal string
}

type errorResponse struct {
	status  int
	message string
}

var validationMessages = map[error]string{
	validators.ErrUsernameRequired:   app.MsgUsernameAndPasswordRequired,
	validators.ErrPasswordRequired:   app.MsgUsernameAndPasswordRequired,
	validators.ErrPasswordTooLong:    app.MsgPasswordTooLong,
	validators.ErrFirstNameRequired:  app.MsgAuthorNamesRequired,
	validators.ErrLastNameRequired:   app.MsgAuthorNamesRequired,
	validators.ErrPublisherNameEmpty: app.MsgPublisherNameRequired,
	validators.ErrTitleRequired:      app.MsgBookFieldsRequired,
	validators.ErrPublisherIDInvalid: app.MsgBookFieldsRequired,
	validators.ErrAuthorIDInvalid:    app.MsgBookFieldsRequired,
}

var errorStatusMap = map[error]errorResponse{
	store.ErrUsernameAlreadyExists: {http.StatusConflict, app.MsgUsernameAlreadyExists},
	store.ErrUserNotFound:          {http.StatusUnauthorized, app.MsgInvalidUsernameOrPassword},
	service.ErrWrongPassword:       {http.StatusUnauthorized, app.MsgInvalidUsernameOrPassword},
	store.ErrBookNotFound:          {http.StatusNotFound, app.MsgBookNotFound},

	service.ErrPasswordHashingFailed: {http.StatusInternalServerError, app.MsgInternalServerError},
	service.ErrTokenCreationFailed:   {http.StatusInternalServerError, app.MsgInternalServerError},
}

// responseFromError picks the status code and client message for err.
// Anything unrecognised is a 500 with the route's internal message.
func responseFromError(err error, msgs routeMessages) (int, string) {
	if errors.Is(err, service.ErrInvalidDataProvided) || errors.Is(err, ErrInvalidPathID) {
		for target, message := range validationMessages {
			if errors.Is(err, target) {
				return http.StatusBadRequest, message
			}
		}
		if errors.Is(err, ErrInvalidPathID) {
			return http.StatusBadRequest, app.MsgInvalidID
		}
		return http.StatusBadRequest, msgs.invalid
	}

	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp.status, resp.message
		}
	}

	return http.StatusInternalServerError, msgs.internal
}

// writeError logs err and answers with the mapped {"message": ...} body.
// Internal details never reach the client.
func writeError(w http.ResponseWriter, r *http.Request, err error, msgs routeMessages) {
	status, message := responseFromError(err, msgs)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteMessage(w, message, status)
}
