// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package eval provides the public API for cross-validating classifiers.
//
// Example:
//
//	factory, _ := classifier.New("knn", classifier.Options{K: 3})
//	res, err := eval.CrossValidate(ctx, table, "class", factory, 10, rand.New(rand.NewSource(1)))
//	if err != nil {
//	    var fe *eval.FoldError
//	    if errors.As(err, &fe) {
//	        log.Printf("fold %d failed during %s", fe.Fold, fe.Stage)
//	    }
//	    return err
//	}
//	fmt.Printf("accuracy %.3f ± %.3f\n", res.Mean, res.StdDev)
package eval

import (
	"context"

	"github.com/born-ml/crossval/internal/eval"
	"github.com/born-ml/crossval/internal/frame"
)

// Type aliases for public API
type (
	Classifier        = eval.Classifier
	ClassifierFactory = eval.ClassifierFactory
	Config            = eval.Config
	Evaluator         = eval.Evaluator
	Result            = eval.Result
	FoldResult        = eval.FoldResult
	Prediction        = eval.Prediction
	FoldError         = eval.FoldError
	Stage             = eval.Stage
	Reporter          = eval.Reporter
	ReporterFunc      = eval.ReporterFunc
	TextReporter      = eval.TextReporter
)

// Fold stages.
const (
	StageTrain   Stage = eval.StageTrain
	StagePredict Stage = eval.StagePredict
	StageScore   Stage = eval.StageScore
)

// Errors.
var (
	ErrClassifierFailure = eval.ErrClassifierFailure
	ErrPredictionLength  = eval.ErrPredictionLength
)

// New validates cfg and returns an Evaluator.
func New(cfg Config) (*Evaluator, error) { return eval.New(cfg) }

// CrossValidate runs sequential k-fold cross-validation.
func CrossValidate(ctx context.Context, t frame.Table, target string, factory ClassifierFactory, folds int, rng frame.Rand) (*Result, error) {
	return eval.CrossValidate(ctx, t, target, factory, folds, rng)
}

// NewTextReporter returns a reporter writing lines to w.
var NewTextReporter = eval.NewTextReporter
