package simlab

import "errors"

var (
	// ErrInvalidInput is returned when a query or document is not valid UTF-8 text.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownMethodKind is returned when an unknown method kind is provided to NewMethod.
	ErrUnknownMethodKind = errors.New("unknown method kind")

	// ErrUnknownFusionKind is returned when an unknown fusion kind is provided to NewFusion.
	ErrUnknownFusionKind = errors.New("unknown fusion kind")

	// ErrScoreOutOfRange is reported on a ranking whose method produced a score
	// that is NaN, infinite, or outside [0, 1].
	ErrScoreOutOfRange = errors.New("score out of range")

	// ErrMethodFailed is reported on a ranking whose method panicked while scoring.
	ErrMethodFailed = errors.New("method failed")
)
