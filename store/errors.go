package store

import "errors"

var (
	// ErrMissingStoreDirectory is returned when the configuration has no
	// usable store_directory value.
	ErrMissingStoreDirectory = errors.New("configuration is missing store_directory")
)
