package artifact

import "errors"

var (
	ErrEmpty             = errors.New("artifact has no rows")
	ErrLengthMismatch    = errors.New("artifact arrays differ in length")
	ErrDimensionMismatch = errors.New("artifact embedding dimension mismatch")
	ErrMissingModel      = errors.New("artifact does not name its embedding model")
)
