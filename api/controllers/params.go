package controllers

import (
	"net/http"
	"strings"
	"time"

	pkgerrors "github.com/lizzumiko/storefront-reports/pkg/errors"
)

var timeNowUTC = func() time.Time {
	return time.Now().UTC()
}

// resolveAsOf reads the optional as_of query parameter, defaulting to now.
func resolveAsOf(r *http.Request, now time.Time) (time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("as_of"))
	if raw == "" {
		return now, nil
	}
	asOf, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid as_of timestamp").
			WithDetails(map[string]string{"as_of": raw})
	}
	return asOf.UTC(), nil
}
