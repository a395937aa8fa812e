// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package classifier provides the bundled classifiers for nominal targets.
//
// Example:
//
//	factory, err := classifier.New("naivebayes", classifier.Options{})
//	ev, err := eval.New(eval.Config{Strategy: split.KFold{Folds: 10}, Factory: factory})
package classifier

import (
	"github.com/born-ml/crossval/internal/classifier"
	"github.com/born-ml/crossval/internal/eval"
)

// Classifiers.
type (
	ZeroR      = classifier.ZeroR
	KNN        = classifier.KNN
	NaiveBayes = classifier.NaiveBayes
	Options    = classifier.Options
)

// Errors.
var (
	ErrNotTrained     = classifier.ErrNotTrained
	ErrNoTrainingData = classifier.ErrNoTrainingData
	ErrSchemaMismatch = classifier.ErrSchemaMismatch
)

// New returns a factory for "zeror", "knn" or "naivebayes".
func New(name string, opts Options) (eval.ClassifierFactory, error) {
	return classifier.New(name, opts)
}

// NewZeroR returns an untrained majority-class classifier.
func NewZeroR() *ZeroR { return classifier.NewZeroR() }

// NewKNN returns an untrained k-nearest-neighbour classifier.
func NewKNN(k int) *KNN { return classifier.NewKNN(k) }

// NewNaiveBayes returns an untrained naive Bayes classifier.
func NewNaiveBayes() *NaiveBayes { return classifier.NewNaiveBayes() }
