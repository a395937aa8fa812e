package split

import (
	"fmt"

	"github.com/born-ml/crossval/internal/frame"
)

// Params carries the settings of every built-in strategy. Fields a strategy
// does not use are ignored.
type Params struct {
	Folds         int
	Repeats       int
	TrainFraction float64
	Target        string
}

// New builds a built-in strategy by name: "kfold", "loo", "subsample",
// "bootstrap" or "stratified".
func New(kind string, p Params) (Strategy, error) {
	switch kind {
	case "kfold":
		return KFold{Folds: p.Folds}, nil
	case "loo":
		return LeaveOneOut{}, nil
	case "subsample":
		return RandomSubsampling{Repeats: p.Repeats, TrainFraction: p.TrainFraction}, nil
	case "bootstrap":
		return Bootstrap{Repeats: p.Repeats}, nil
	case "stratified":
		return StratifiedKFold{Folds: p.Folds, Target: p.Target}, nil
	default:
		return nil, fmt.Errorf("%w: unknown split strategy %q", frame.ErrInvalidArgument, kind)
	}
}
