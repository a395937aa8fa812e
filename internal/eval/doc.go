// Package eval runs cross-validation of a classifier over a table.
//
// An Evaluator asks its split.Strategy for train/test views, trains a fresh
// Classifier on each train view, predicts the matching test view and scores
// the predictions against the target column read through that same test view.
// Fold accuracies are aggregated into a Result.
//
// Runs fail fast: the first training, prediction or scoring error aborts the
// run and is returned as a *FoldError naming the fold.
//
// Example:
//
//	ev, err := eval.New(eval.Config{
//	    Strategy: split.KFold{Folds: 10},
//	    Factory:  func() eval.Classifier { return classifier.NewZeroR() },
//	})
//	if err != nil {
//	    return err
//	}
//	res, err := ev.Run(ctx, table, "class", rand.New(rand.NewSource(1)))
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("mean accuracy %.4f\n", res.Mean)
package eval
