package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/sociogram/backend/internal/domain"
	"github.com/sociogram/backend/internal/service"
	"github.com/sociogram/backend/internal/transport/http/middleware"
)

type AuthHandler struct {
	accounts *service.AccountService
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewAuthHandler(accounts *service.AccountService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		accounts: accounts,
		validate: validator.New(),
		logger:   logger,
	}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var input service.SignupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	user, err := h.accounts.Signup(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUsernameTaken):
			writeError(w, http.StatusUnauthorized, "Username already exists")
		case errors.Is(err, domain.ErrEmailTaken):
			writeError(w, http.StatusUnauthorized, "Email already exists")
		default:
			h.logger.Error().Err(err).Msg("signup failed")
			writeError(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, response{Success: true, User: authView(user)})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	user, tokenStr, err := h.accounts.Login(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			writeError(w, http.StatusUnauthorized, "User doesn't exist")
		case errors.Is(err, domain.ErrPasswordMismatch):
			writeError(w, http.StatusUnauthorized, "Password doesn't match")
		default:
			h.logger.Error().Err(err).Msg("login failed")
			writeError(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    tokenStr,
		Path:     "/",
		Expires:  time.Now().Add(h.accounts.TokenTTL()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusCreated, response{Success: true, User: authView(user)})
}
