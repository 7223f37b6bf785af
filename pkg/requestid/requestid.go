package requestid

import (
	"context"
	"regexp"

	"github.com/google/uuid"
)

const (
	Header      = "X-Request-ID"
	maxIDLength = 128
	idPattern   = "^[a-zA-Z0-9_-]+$"
)

var validIDRegex = regexp.MustCompile(idPattern)

// Ensure returns ctx and its request ID when ctx carries a valid one.
// Otherwise it generates a new ID and returns a derived context holding it.
func Ensure(ctx context.Context) (context.Context, string) {
	if id := FromContext(ctx); IsValid(id) {
		return ctx, id
	}
	id := uuid.New().String()
	return WithContext(ctx, id), id
}

// IsValid reports whether id may be sent as a request ID header.
func IsValid(id string) bool {
	if len(id) == 0 || len(id) > maxIDLength {
		return false
	}
	return validIDRegex.MatchString(id)
}
