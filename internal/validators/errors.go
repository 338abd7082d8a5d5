package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidBatchSize = errors.New("invalid batch size")
	ErrInvalidMaxImages = errors.New("invalid max images")
	ErrInvalidDatasetID = errors.New("invalid dataset id")
)
