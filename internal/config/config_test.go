package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("data:\n  path: iris.csv\ntarget: species\n"))
	require.NoError(t, err)

	assert.Equal(t, "iris.csv", cfg.Data.Path)
	assert.Equal(t, "species", cfg.Target)
	assert.Equal(t, "kfold", cfg.Strategy.Kind)
	assert.Equal(t, 10, cfg.Strategy.Folds)
	assert.Equal(t, int64(1), cfg.Strategy.Seed)
	assert.Equal(t, "zeror", cfg.Classifier.Name)
	assert.Equal(t, 1, cfg.Workers)

	s, err := cfg.SplitStrategy()
	require.NoError(t, err)
	assert.Equal(t, "kfold", s.Name())
}

func TestParse_Full(t *testing.T) {
	cfg, err := Parse([]byte(`
data:
  query: SELECT * FROM churn
  dsn_env: CHURN_DB
  nominal: [churned]
target: churned
strategy:
  kind: stratified
  folds: 5
  seed: 42
classifier:
  name: knn
  k: 7
workers: 4
logging:
  level: debug
  format: json
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"churned"}, cfg.Data.Nominal)
	assert.Equal(t, 7, cfg.Classifier.K)
	assert.Equal(t, "json", cfg.Logging.Format)

	s, err := cfg.SplitStrategy()
	require.NoError(t, err)
	assert.Equal(t, "stratified", s.Name())

	t.Setenv("CHURN_DB", "postgres://localhost/churn")
	dsn, err := cfg.ConnString()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/churn", dsn)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{"missing target", "data:\n  path: a.csv\n", "Config.Target"},
		{"missing source", "target: y\n", "Config.Data.Path"},
		{"unknown strategy", "data: {path: a.csv}\ntarget: y\nstrategy: {kind: timeseries}\n", "Config.Strategy.Kind"},
		{"zero folds", "data: {path: a.csv}\ntarget: y\nstrategy: {kind: kfold, folds: 0}\n", "Config.Strategy.Folds"},
		{"unknown classifier", "data: {path: a.csv}\ntarget: y\nclassifier: {name: svm}\n", "Config.Classifier.Name"},
		{"bad fraction", "data: {path: a.csv}\ntarget: y\nstrategy: {kind: subsample, repeats: 3, train_fraction: 1.5}\n", "Config.Strategy.TrainFraction"},
		{"bad log format", "data: {path: a.csv}\ntarget: y\nlogging: {format: xml}\n", "Config.Logging.Format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Contains(t, ve.Error(), tt.field)
		})
	}

	_, err := Parse([]byte("target: [unclosed"))
	assert.ErrorContains(t, err, "parse YAML config")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data: {path: w.csv}\ntarget: play\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "play", cfg.Target)

	_, err = Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "read config file")
}

func TestConnString(t *testing.T) {
	cfg := Default()
	cfg.Data.DSN = "postgres://explicit"
	dsn, err := cfg.ConnString()
	require.NoError(t, err)
	assert.Equal(t, "postgres://explicit", dsn)

	cfg = Default()
	t.Setenv("DATABASE_URL", "")
	_, err = cfg.ConnString()
	assert.ErrorContains(t, err, "DATABASE_URL")
}
