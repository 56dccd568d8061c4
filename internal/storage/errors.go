package storage

import "errors"

var (
	ErrNotConnected     = errors.New("not connected to storage")
	ErrAlreadyConnected = errors.New("already connected to storage")
	ErrInvalidID        = errors.New("invalid identifier")
	ErrNotFound         = errors.New("entry not found")
)
