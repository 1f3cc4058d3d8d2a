package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/sociogram/backend/internal/domain"
	"github.com/sociogram/backend/internal/service"
	"github.com/sociogram/backend/internal/transport/http/middleware"
)

type UserHandler struct {
	accounts *service.AccountService
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewUserHandler(accounts *service.AccountService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		accounts: accounts,
		validate: validator.New(),
		logger:   logger,
	}
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.accounts.Profile(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			writeError(w, http.StatusUnauthorized, "User doesn't exist")
			return
		}
		h.logger.Error().Err(err).Msg("profile fetch failed")
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, response{Success: true, User: profileView(user)})
}

// updateProfileRequest carries the fields to change; absent fields keep
// their stored values.
type updateProfileRequest struct {
	Name     *string `json:"name"     validate:"omitempty"`
	Username *string `json:"username" validate:"omitempty,min=1"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Bio      *string `json:"bio"      validate:"omitempty"`
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	update := domain.UserUpdate{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Bio:      req.Bio,
	}

	err := h.accounts.UpdateProfile(r.Context(), middleware.UserID(r.Context()), update)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateUser):
			writeError(w, http.StatusNotFound, "User Already Exists")
		case errors.Is(err, domain.ErrUserNotFound):
			writeError(w, http.StatusUnauthorized, "User doesn't exist")
		default:
			h.logger.Error().Err(err).Msg("profile update failed")
			writeError(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, response{Success: true})
}
