package models

import "errors"

// ErrInvalidInput marks malformed or out-of-range caller input.
// Requests carrying it are rejected at the HTTP boundary before any
// computation runs.
var ErrInvalidInput = errors.New("invalid input")
