package validators

import (
	"net/http"
	"strings"

	pkgerrors "github.com/voicebite/voicebite-backend/pkg/errors"
)

// QueryString returns the trimmed value of a query parameter, empty when
// absent.
func QueryString(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

// RequireQueryString is QueryString for parameters that must be present.
func RequireQueryString(r *http.Request, key string) (string, error) {
	value := QueryString(r, key)
	if value == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "query parameter is required").WithDetails(map[string]any{"field": key})
	}
	return value, nil
}
