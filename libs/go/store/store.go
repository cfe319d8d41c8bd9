// Package store persists wallet connections of dashboard sessions.
package store

import "errors"

// ErrConnectionNotFound is returned when a session has no wallet connection.
var ErrConnectionNotFound = errors.New("wallet connection not found")
