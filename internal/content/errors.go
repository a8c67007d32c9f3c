package content

import "errors"

var (
	ErrEmptyScript    = errors.New("scan script must contain at least one step")
	ErrEmptyStepLabel = errors.New("scan step label must not be empty")
	ErrNegativeDelay  = errors.New("scan delays must not be negative")
	ErrInvalidIssue   = errors.New("scan issue must have a type, a non-negative count and a valid severity")
	ErrNegativeValue  = errors.New("scan result values must not be negative")
)
