package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-book-keeper/internal/app"
	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/internal/service"
	"github.com/MKhiriev/go-book-keeper/internal/store"
	"github.com/MKhiriev/go-book-keeper/internal/utils"
	"github.com/MKhiriev/go-book-keeper/internal/validators"
	"github.com/MKhiriev/go-book-keeper/models"
)

// apiError pairs an HTTP status with the fixed response text for one of the
// domain sentinels.
type apiError struct {
	status  int
	message string
}

var errorResponseMap = map[error]apiError{
	service.ErrInvalidDataProvided: {http.StatusBadRequest, "invalid data provided"},

	validators.ErrCredentialsRequired: {http.StatusBadRequest, app.MsgUsernameAndPasswordRequired},
	validators.ErrTitleRequired:       {http.StatusBadRequest, app.MsgTitleRequired},
	validators.ErrAuthorRequired:      {http.StatusBadRequest, app.MsgAuthorRequired},
	validators.ErrReviewTooLong:       {http.StatusBadRequest, app.MsgReviewTooLong},

	store.ErrUsernameTaken: {http.StatusConflict, app.MsgUsernameTaken},
	store.ErrTitleTaken:    {http.StatusConflict, app.MsgTitleTaken},
	store.ErrUserNotFound:  {http.StatusNotFound, app.MsgUserNotFound},
	store.ErrBookNotFound:  {http.StatusNotFound, app.MsgBookNotFound},
}

// respondError translates err into the API's JSON error envelope. Sentinels
// not present in the map fall back to a generic 500.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	for target, response := range errorResponseMap {
		if errors.Is(err, target) {
			utils.WriteJSON(w, models.ErrorResponse{Error: response.message}, response.status)
			return
		}
	}

	logger.FromRequest(r).Err(err).Msg("unexpected error")
	utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInternalServerError}, http.StatusInternalServerError)
}
