package rate

import "errors"

// Rate domain errors
var (
	ErrRateNotFound           = errors.New("hourly rate not found")
	ErrRateNotDraft           = errors.New("only draft rates can be activated")
	ErrMultiplierNotFound     = errors.New("overtime multiplier not found")
	ErrMultiplierNotCompliant = errors.New("overtime multiplier is below the legal minimum")
)
