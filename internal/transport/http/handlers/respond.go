package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/sociogram/backend/internal/domain"
)

type response struct {
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
	User    *userView `json:"user,omitempty"`
}

// userView shadows the record's hidden hash with an opaque password field.
// The hash appears only in signup/login responses, never the plaintext.
type userView struct {
	*domain.User
	Password string `json:"password,omitempty"`
}

// authView is returned from signup and login; the historical contract
// includes the stored hash as an opaque string.
func authView(u *domain.User) *userView {
	return &userView{User: u, Password: u.PasswordHash}
}

// profileView omits the password entirely.
func profileView(u *domain.User) *userView {
	return &userView{User: u}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, response{Success: false, Message: message})
}

func validationMessage(err error) string {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		fe := errs[0]
		if fe.Tag() == "required" {
			return fe.Field() + " is required"
		}
		return fe.Field() + " is invalid"
	}
	return "Invalid request body"
}
