package metrics

import "errors"

// ErrInvalidConfiguration is returned when the metrics configuration is invalid.
var ErrInvalidConfiguration = errors.New("invalid metrics configuration")
