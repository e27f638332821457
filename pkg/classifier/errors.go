package classifier

import "errors"

var (
	ErrNoSamples       = errors.New("classifier: no training samples")
	ErrLabelMismatch   = errors.New("classifier: texts and labels differ in length")
	ErrSingleClass     = errors.New("classifier: at least two classes are required")
	ErrEmptyVocabulary = errors.New("classifier: empty vocabulary, every pattern is stop words")
	ErrInvalidModel    = errors.New("classifier: invalid model")
)
