package classifier

import (
	"math"

	"github.com/born-ml/crossval/internal/frame"
)

// minVariance keeps Gaussian likelihoods finite for constant attributes.
const minVariance = 1e-9

// NaiveBayes assumes conditionally independent attributes: numeric ones are
// modelled as per-class Gaussians, nominal ones by Laplace-smoothed level
// frequencies. Missing attribute values are ignored in training and
// prediction.
type NaiveBayes struct {
	schema  frame.Schema
	col     int
	prior   []float64   // log P(class)
	mean    [][]float64 // [attr][class]
	vari    [][]float64 // [attr][class]
	nominal [][][]float64
	trained bool
}

// NewNaiveBayes returns an untrained NaiveBayes.
func NewNaiveBayes() *NaiveBayes {
	return &NaiveBayes{}
}

// Train estimates class priors and per-class attribute distributions.
func (nb *NaiveBayes) Train(train frame.Table, targetName string) error {
	col, levels, err := target(train, targetName)
	if err != nil {
		return err
	}
	schema := train.Schema()
	n := train.RowCount()

	classCount := make([]float64, levels)
	total := 0.0
	for i := 0; i < n; i++ {
		if class, ok := frame.Nominal(train, i, col); ok {
			classCount[class]++
			total++
		}
	}
	if total == 0 {
		return ErrNoTrainingData
	}

	nb.prior = make([]float64, levels)
	for k := range classCount {
		nb.prior[k] = math.Log((classCount[k] + 1) / (total + float64(levels)))
	}

	nb.mean = make([][]float64, len(schema))
	nb.vari = make([][]float64, len(schema))
	nb.nominal = make([][][]float64, len(schema))
	for c, f := range schema {
		if c == col {
			continue
		}
		if f.Kind == frame.Nominal {
			nb.nominal[c] = nb.fitNominal(train, c, col, levels, len(f.Levels))
		} else {
			nb.mean[c], nb.vari[c] = nb.fitNumeric(train, c, col, levels)
		}
	}

	nb.schema, nb.col = schema, col
	nb.trained = true
	return nil
}

func (nb *NaiveBayes) fitNumeric(train frame.Table, c, col, levels int) (mean, vari []float64) {
	mean = make([]float64, levels)
	vari = make([]float64, levels)
	count := make([]float64, levels)
	for i := 0; i < train.RowCount(); i++ {
		class, ok := frame.Nominal(train, i, col)
		v := train.Value(i, c)
		if !ok || frame.IsMissing(v) {
			continue
		}
		count[class]++
		mean[class] += v
	}
	for k := range mean {
		if count[k] > 0 {
			mean[k] /= count[k]
		}
	}
	for i := 0; i < train.RowCount(); i++ {
		class, ok := frame.Nominal(train, i, col)
		v := train.Value(i, c)
		if !ok || frame.IsMissing(v) {
			continue
		}
		d := v - mean[class]
		vari[class] += d * d
	}
	for k := range vari {
		if count[k] > 0 {
			vari[k] /= count[k]
		}
		vari[k] = math.Max(vari[k], minVariance)
	}
	return mean, vari
}

func (nb *NaiveBayes) fitNominal(train frame.Table, c, col, levels, values int) [][]float64 {
	counts := make([][]float64, levels)
	totals := make([]float64, levels)
	for k := range counts {
		counts[k] = make([]float64, values)
	}
	for i := 0; i < train.RowCount(); i++ {
		class, ok := frame.Nominal(train, i, col)
		v, vok := frame.Nominal(train, i, c)
		if !ok || !vok || v >= values {
			continue
		}
		counts[class][v]++
		totals[class]++
	}
	for k := range counts {
		for v := range counts[k] {
			counts[k][v] = math.Log((counts[k][v] + 1) / (totals[k] + float64(values)))
		}
	}
	return counts
}

// Predict returns the class with the highest posterior for each row.
func (nb *NaiveBayes) Predict(test frame.Table) ([]int, error) {
	if !nb.trained {
		return nil, ErrNotTrained
	}
	if !sameSchema(nb.schema, test.Schema()) {
		return nil, ErrSchemaMismatch
	}
	out := make([]int, test.RowCount())
	score := make([]float64, len(nb.prior))
	for i := range out {
		copy(score, nb.prior)
		for c, f := range nb.schema {
			if c == nb.col {
				continue
			}
			v := test.Value(i, c)
			if frame.IsMissing(v) {
				continue
			}
			for k := range score {
				if f.Kind == frame.Nominal {
					if lv := int(v); lv < len(nb.nominal[c][k]) {
						score[k] += nb.nominal[c][k][lv]
					}
				} else {
					score[k] += logGaussian(v, nb.mean[c][k], nb.vari[c][k])
				}
			}
		}
		out[i] = argmax(score)
	}
	return out, nil
}

func logGaussian(x, mean, vari float64) float64 {
	d := x - mean
	return -0.5*math.Log(2*math.Pi*vari) - d*d/(2*vari)
}
