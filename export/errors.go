package export

import "errors"

var (
	// ErrShortRecord is returned for a line with fewer than MinFields fields.
	ErrShortRecord = errors.New("export record has fewer than 3 fields")
)
