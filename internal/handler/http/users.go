package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-book-keeper/internal/app"
	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/internal/service"
	"github.com/MKhiriev/go-book-keeper/internal/utils"
	"github.com/MKhiriev/go-book-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) addUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	if _, err := h.services.UserService.AddUser(ctx, user); err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgSignedUp}, http.StatusOK)
}

func (h *Handler) verifyUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	if err := h.services.UserService.VerifyUser(ctx, user); err != nil {
		// A failed verification is a regular outcome, not an error response.
		// The unknown-username and wrong-password cases share one message.
		if errors.Is(err, service.ErrNotVerified) {
			utils.WriteJSON(w, models.MessageResponse{Message: app.MsgUserNotVerified}, http.StatusOK)
			return
		}
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgUserVerified}, http.StatusOK)
}

func (h *Handler) getUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	if users == nil {
		users = []models.User{}
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) deleteAllUsers(w http.ResponseWriter, r *http.Request) {
	if err := h.services.UserService.DeleteAllUsers(r.Context()); err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgAllUsersDeleted}, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("non-numeric user id")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgUserNotFound}, http.StatusNotFound)
		return
	}

	deletedUser, err := h.services.UserService.DeleteUser(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	message := fmt.Sprintf(app.MsgUserDeletedFmt, deletedUser.Username)
	utils.WriteJSON(w, models.MessageResponse{Message: message}, http.StatusOK)
}
