// Package uuid generates and checks the opaque identifiers used for every
// persisted record.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a time-ordered UUIDv7 string, which keeps primary key indexes
// append-mostly. It falls back to a random v4 if the v7 generator fails.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.New().String()
	}
	return id.String()
}

// IsValid checks if a string is a valid UUID.
func IsValid(s string) bool {
	return googleuuid.Validate(s) == nil
}
