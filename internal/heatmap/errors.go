package heatmap

import (
	"errors"
	"fmt"
)

// Stage identifies the pipeline stage that rejected its input.
type Stage string

const (
	StageNormalize Stage = "normalize"
	StageBucketize Stage = "bucketize"
	StageGrid      Stage = "grid"
	StageAssemble  Stage = "assemble"
)

// Kind classifies a pipeline failure. The pipeline is pure, so none of
// these are retryable; they always indicate bad input or configuration.
type Kind string

const (
	KindInvalidTimestamp     Kind = "invalid_timestamp"
	KindInvalidRange         Kind = "invalid_range"
	KindRangeTooLarge        Kind = "range_too_large"
	KindInvalidConfiguration Kind = "invalid_configuration"
)

// Error is a stage-tagged pipeline failure.
type Error struct {
	Stage  Stage
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Stage, e.Kind, e.Detail)
}

func newError(stage Stage, kind Kind, format string, args ...interface{}) error {
	return &Error{Stage: stage, Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is a pipeline Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.Kind == kind
}
