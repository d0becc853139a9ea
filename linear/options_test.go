package linear

import (
	"testing"

	"github.com/YuminosukeSato/neptunelearn/pkg/errors"
	"github.com/YuminosukeSato/neptunelearn/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1, cfg.Degree)
	assert.True(t, cfg.Bias)
	assert.Equal(t, 1e-6, cfg.Tol)
	assert.Equal(t, 0.01, cfg.Eta)
	assert.Equal(t, 50, cfg.NIter)
	assert.Equal(t, 1000, cfg.MaxEpochs)
}

func TestOptions(t *testing.T) {
	logger, _ := log.NewTestLogger(log.LevelDebug)
	m := NewAdaline(
		WithDegree(2),
		WithBias(false),
		WithTol(1e-3),
		WithEta(0.5),
		WithNIter(7),
		WithMaxEpochs(9),
		WithLogger(logger),
	)

	assert.Equal(t, map[string]interface{}{
		"degree":     2,
		"bias":       false,
		"tol":        1e-3,
		"eta":        0.5,
		"niter":      7,
		"max_epochs": 9,
	}, m.GetParams())

	cfg := m.Config()
	cfg.Degree = 5
	assert.Equal(t, 2, m.Config().Degree, "Config must return a copy")

	replaced := NewAdaline(WithConfig(Config{Degree: 3, Eta: 1, NIter: 1, MaxEpochs: 1}))
	assert.Equal(t, 3, replaced.Config().Degree)
	assert.False(t, replaced.Config().Bias)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name  string
		opt   Option
		param string
	}{
		{"degree", WithDegree(0), "degree"},
		{"tol", WithTol(-1), "tol"},
		{"eta", WithEta(0), "eta"},
		{"niter", WithNIter(0), "niter"},
		{"max_epochs", WithMaxEpochs(0), "max_epochs"},
	}
	X := mat.NewDense(2, 1, []float64{1, 2})
	y := mat.NewDense(2, 1, []float64{-1, 1})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewPerceptron(tt.opt)
			err := m.Fit(X, y)

			var valErr *errors.ValidationError
			require.True(t, errors.As(err, &valErr), "got %v", err)
			assert.Equal(t, tt.param, valErr.ParamName)
			assert.False(t, m.IsFitted())
		})
	}
}
