package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sociogram/backend/internal/token"
)

type contextKey string

const UserIDKey contextKey = "user_id"

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "token"

// Auth guards protected routes. A missing cookie is a 401. A cookie that is
// present but fails verification (bad signature, malformed, expired) is
// reported as a 500; clients depend on that asymmetry.
func Auth(tokens *token.Maker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil {
				writeFailure(w, http.StatusUnauthorized, "Please Login to Access")
				return
			}

			userID, err := tokens.Verify(cookie.Value)
			if err != nil {
				writeFailure(w, http.StatusInternalServerError, "Something went wrong")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID extracts the authenticated user id from the request context. Only
// valid below the Auth middleware.
func UserID(ctx context.Context) uuid.UUID {
	return ctx.Value(UserIDKey).(uuid.UUID)
}

func writeFailure(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"success":false,"message":"` + message + `"}`))
}
