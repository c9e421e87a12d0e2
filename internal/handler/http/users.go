package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/utils"
	"github.com/MKhiriev/go-storefront/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) indexUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.UserService.Index(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, writeErr := utils.WriteJSON(w, users, http.StatusOK); writeErr != nil {
		log.Err(writeErr).Str("func", "*Handler.indexUsers").Msg("failed to write response")
	}
}

func (h *Handler) showUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID := chi.URLParam(r, "userId")

	foundUser, err := h.services.UserService.Show(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, writeErr := utils.WriteJSON(w, foundUser, http.StatusOK); writeErr != nil {
		log.Err(writeErr).Str("func", "*Handler.showUser").Msg("failed to write response")
	}
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Msg("Invalid JSON was passed")
		writeError(w, r, ErrInvalidJSONBody)
		return
	}

	createdUser, err := h.services.UserService.Create(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", createdUser.ID).Msg("user successfully registered")

	if _, writeErr := utils.WriteJSON(w, createdUser, http.StatusOK); writeErr != nil {
		log.Err(writeErr).Str("func", "*Handler.createUser").Msg("failed to write response")
	}
}

func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.User
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Str("func", "*Handler.authenticate").Msg("Invalid JSON was passed")
		writeError(w, r, ErrInvalidJSONBody)
		return
	}

	token, err := h.services.UserService.Authenticate(ctx, credentials.ID, credentials.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", credentials.ID).Msg("user successfully authenticated")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	if _, writeErr := utils.WriteJSON(w, token.SignedString, http.StatusOK); writeErr != nil {
		log.Err(writeErr).Str("func", "*Handler.authenticate").Msg("failed to write response")
	}
}
