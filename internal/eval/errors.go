package eval

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrClassifierFailure = errors.New("classifier failure")
	ErrPredictionLength  = errors.New("prediction count does not match test rows")
)

// Stage names the step of a fold that failed.
type Stage string

// Fold stages.
const (
	StageTrain   Stage = "train"
	StagePredict Stage = "predict"
	StageScore   Stage = "score"
)

// FoldError reports the fold and stage at which a run was aborted.
type FoldError struct {
	Fold  int // zero-based
	Stage Stage
	Err   error
}

// Error implements the error interface.
func (e *FoldError) Error() string {
	return fmt.Sprintf("fold %d (%s): %v", e.Fold, e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *FoldError) Unwrap() error {
	return e.Err
}
