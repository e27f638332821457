package matcher

import "errors"

var (
	ErrModelMismatch     = errors.New("artifact was built with a different embedding model")
	ErrDimensionMismatch = errors.New("query embedding dimension does not match artifact")
	ErrEmptyIndex        = errors.New("pattern index is empty")
	ErrUnknownIndex      = errors.New("unknown pattern index")
)
