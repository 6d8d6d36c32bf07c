package utils

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseID validates a raw external identifier and converts it into an
// ObjectID. It never panics: empty, malformed, or non-hex input reports
// ok=false. Every service goes through this before touching a repository.
func ParseID(raw string) (primitive.ObjectID, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}
