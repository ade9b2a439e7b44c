package report

import "errors"

// Report domain errors
var (
	ErrInvalidDateRange = errors.New("end date must not be before start date")
	ErrInvalidKind      = errors.New("invalid report kind")
	ErrInvalidGroupBy   = errors.New("invalid grouping dimension")
	ErrInvalidFormat    = errors.New("invalid report format")
)
