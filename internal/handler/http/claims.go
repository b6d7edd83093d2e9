package http

import (
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/andresaoe/mi-jornada-calculada/internal/domain/auth"
	"github.com/andresaoe/mi-jornada-calculada/internal/pkg/validator"
)

// userIDFromRequest extracts the authenticated user's ID from the JWT
// claims. AuthRequired already guaranteed the claim is present.
func userIDFromRequest(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}
	return userID, nil
}

// monthFromQuery parses the required ?month=YYYY-MM query parameter.
func monthFromQuery(r *http.Request) (time.Time, bool) {
	return validator.IsValidMonth(r.URL.Query().Get("month"))
}
