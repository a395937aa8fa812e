// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package split provides the public API for train/test partition strategies.
//
// Built-in strategies:
//   - KFold: round-robin folds over a shuffled order
//   - StratifiedKFold: KFold dealt per class of a nominal column
//   - LeaveOneOut: one single-row test set per row
//   - RandomSubsampling: repeated shuffled holdout
//   - Bootstrap: sampling with replacement, out-of-bag test sets
//
// Example:
//
//	rng := rand.New(rand.NewSource(1))
//	splits, err := split.KFold{Folds: 10}.Splits(table, nil, rng)
package split

import (
	"github.com/born-ml/crossval/internal/split"
)

// Split is one train/test partition.
type Split = split.Split

// Strategy produces an ordered sequence of splits.
type Strategy = split.Strategy

// Params carries the settings of every built-in strategy.
type Params = split.Params

// Built-in strategies.
type (
	KFold             = split.KFold
	StratifiedKFold   = split.StratifiedKFold
	LeaveOneOut       = split.LeaveOneOut
	RandomSubsampling = split.RandomSubsampling
	Bootstrap         = split.Bootstrap
)

// ErrEmptyTestSet is returned when a sampling strategy leaves no row for testing.
var ErrEmptyTestSet = split.ErrEmptyTestSet

// New builds a built-in strategy by name.
func New(kind string, p Params) (Strategy, error) { return split.New(kind, p) }
