package http

import (
	"mime"
	"net/http"

	"github.com/MKhiriev/go-book-keeper/internal/app"
	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/internal/utils"
	"github.com/MKhiriev/go-book-keeper/models"
)

// requireJSON rejects mutating requests whose Content-Type is not
// application/json. Media type parameters (charset) are tolerated.
func requireJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "application/json" {
			logger.FromRequest(r).Error().
				Str("content_type", r.Header.Get("Content-Type")).
				Msg("request content type is not json")
			utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgDataMustBeJSON}, http.StatusUnsupportedMediaType)
			return
		}

		next.ServeHTTP(w, r)
	})
}
