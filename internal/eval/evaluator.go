package eval

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/born-ml/crossval/internal/frame"
	"github.com/born-ml/crossval/internal/parallel"
	"github.com/born-ml/crossval/internal/split"
)

// Config configures an Evaluator.
type Config struct {
	Strategy split.Strategy
	Factory  ClassifierFactory

	// Weights are passed to the strategy; nil for unweighted rows.
	Weights []float64

	// Workers is the number of folds evaluated concurrently. Values <= 1 run
	// folds sequentially in order. The factory must return independent
	// classifiers when Workers > 1.
	Workers int

	Reporter Reporter     // nil discards report lines
	Logger   *slog.Logger // nil uses slog.Default()
}

// Evaluator runs cross-validation. It is safe for concurrent use as long as
// each Run receives its own random source.
type Evaluator struct {
	cfg Config
}

// New validates cfg and returns an Evaluator.
func New(cfg Config) (*Evaluator, error) {
	if cfg.Strategy == nil {
		return nil, fmt.Errorf("%w: nil split strategy", frame.ErrInvalidArgument)
	}
	if cfg.Factory == nil {
		return nil, fmt.Errorf("%w: nil classifier factory", frame.ErrInvalidArgument)
	}
	if cfg.Reporter == nil {
		cfg.Reporter = nopReporter{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Evaluator{cfg: cfg}, nil
}

// CrossValidate runs k-fold cross-validation with a sequential evaluator.
func CrossValidate(ctx context.Context, t frame.Table, target string, factory ClassifierFactory, folds int, rng frame.Rand) (*Result, error) {
	ev, err := New(Config{Strategy: split.KFold{Folds: folds}, Factory: factory})
	if err != nil {
		return nil, err
	}
	return ev.Run(ctx, t, target, rng)
}

// Run splits t, evaluates every fold and aggregates the accuracies. rng is
// only used while generating splits, before any fold starts.
func (e *Evaluator) Run(ctx context.Context, t frame.Table, target string, rng frame.Rand) (res *Result, err error) {
	strategy := e.cfg.Strategy.Name()
	defer func() { runsTotal.WithLabelValues(strategy, outcome(err)).Inc() }()

	col, err := targetColumn(t, target)
	if err != nil {
		return nil, err
	}

	ctx, span := startRunSpan(ctx, strategy, target, t.RowCount())
	defer func() { endSpan(span, err) }()

	start := time.Now()
	res = &Result{
		RunID:    uuid.New(),
		Strategy: strategy,
		Target:   target,
		Levels:   t.Schema()[col].Levels,
	}
	log := e.cfg.Logger.With("run_id", res.RunID.String(), "strategy", strategy)

	splits, err := e.cfg.Strategy.Splits(t, e.cfg.Weights, rng)
	if err != nil {
		return nil, fmt.Errorf("generate splits: %w", err)
	}
	log.Info("cross-validation started", "rows", t.RowCount(), "folds", len(splits), "target", target)

	res.Folds = make([]FoldResult, len(splits))
	res.Confusion = newConfusion(len(res.Levels))
	var mu sync.Mutex

	err = parallel.Run(ctx, len(splits), e.cfg.Workers, func(ctx context.Context, i int) error {
		fr, confusion, err := e.runFold(ctx, i, splits[i], target, col, len(res.Levels))
		foldsTotal.WithLabelValues(strategy, outcome(err)).Inc()
		if err != nil {
			log.Error("fold failed", "fold", i, "error", err)
			return err
		}
		foldAccuracy.Observe(fr.Accuracy)
		log.Debug("fold done", "fold", i, "accuracy", fr.Accuracy, "duration", fr.Duration)

		mu.Lock()
		res.Folds[i] = fr
		addConfusion(res.Confusion, confusion)
		mu.Unlock()

		e.cfg.Reporter.Line(FoldLine(fr, len(splits)))
		return nil
	})
	if err != nil {
		return nil, err
	}

	res.aggregate()
	res.Duration = time.Since(start)
	e.cfg.Reporter.Line(SummaryLine(res))
	log.Info("cross-validation finished", "mean_accuracy", res.Mean, "stddev", res.StdDev, "duration", res.Duration)
	return res, nil
}

func (e *Evaluator) runFold(ctx context.Context, i int, s split.Split, target string, col, levels int) (fr FoldResult, confusion [][]int, err error) {
	_, span := startFoldSpan(ctx, i, s.Train.RowCount(), s.Test.RowCount())
	defer func() { endSpan(span, err) }()

	start := time.Now()
	clf := e.cfg.Factory()

	stageStart := time.Now()
	if err := clf.Train(s.Train, target); err != nil {
		return fr, nil, &FoldError{Fold: i, Stage: StageTrain, Err: fmt.Errorf("%w: %w", ErrClassifierFailure, err)}
	}
	observeStage(StageTrain, stageStart)

	stageStart = time.Now()
	classes, err := clf.Predict(s.Test)
	if err != nil {
		return fr, nil, &FoldError{Fold: i, Stage: StagePredict, Err: fmt.Errorf("%w: %w", ErrClassifierFailure, err)}
	}
	observeStage(StagePredict, stageStart)

	pred, err := NewPrediction(s.Test, classes)
	if err != nil {
		return fr, nil, &FoldError{Fold: i, Stage: StagePredict, Err: err}
	}

	confusion = newConfusion(levels)
	correct, acc, err := Score(pred, col, confusion)
	if err != nil {
		return fr, nil, &FoldError{Fold: i, Stage: StageScore, Err: err}
	}

	return FoldResult{
		Fold:       i,
		TrainRows:  s.Train.RowCount(),
		TestRows:   s.Test.RowCount(),
		Correct:    correct,
		Accuracy:   acc,
		Duration:   time.Since(start),
		Prediction: pred,
	}, confusion, nil
}
