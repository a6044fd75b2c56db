package analysis

import "errors"

// ErrInsufficientData marks a series that cannot be analyzed at all
// (empty input). Short-but-non-empty series are not an error: windowed
// indicators simply stay undefined until they warm up.
var ErrInsufficientData = errors.New("insufficient data")

// ErrMalformedBar marks a series whose bars violate their structural
// invariants (bad OHLC envelope, non-positive price, out-of-order
// timestamps). Malformed input is rejected, never repaired.
var ErrMalformedBar = errors.New("malformed bar")
