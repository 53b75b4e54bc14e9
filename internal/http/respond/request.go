package respond

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ID parses the {id} path parameter, writing a 400 when it is not a uuid.
func ID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		BadRequest(w, r, "invalid id")
		return uuid.Nil, false
	}

	return id, true
}

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02T15:04", time.DateOnly}

// ParseDate accepts an RFC 3339 timestamp or a plain date. Values without a
// zone are taken as UTC. It returns the zero time for anything else.
func ParseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}

	return time.Time{}
}
