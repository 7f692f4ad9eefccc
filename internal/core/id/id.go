// Package id provides the numeric identifier type shared by all entities.
// Ids are assigned by the database (BIGSERIAL) and are always positive.
package id

import (
	"fmt"
	"strconv"
)

// ID is a database-assigned identifier.
type ID = int64

// Parse converts a path segment to ID with validation.
func Parse(s string) (ID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	if v <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be positive", s)
	}
	return v, nil
}

// Nil returns the zero-value ID.
func Nil() ID {
	return 0
}

// IsNil checks if ID is the zero value.
func IsNil(v ID) bool {
	return v <= 0
}
