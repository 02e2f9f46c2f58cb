// Package repository contains data access logic separated from HTTP handlers.
// This file defines error values that are reused across both repositories.
// These sentinel values allow handlers to distinguish between failure
// scenarios without inspecting driver errors, for example mapping
// ErrDuplicate to an HTTP 409 response.
package repository

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// ErrDuplicate is returned when an insert clashes with an existing row on a
// unique column (movie title, cafe name). The second record is not persisted.
var ErrDuplicate = errors.New("duplicate record")

// isUniqueViolation reports whether err is a sqlite unique constraint failure.
func isUniqueViolation(err error) bool {
	var serr sqlite3.Error
	if errors.As(err, &serr) {
		return serr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
