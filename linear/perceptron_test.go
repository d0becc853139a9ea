package linear

import (
	"testing"

	"github.com/YuminosukeSato/neptunelearn/pkg/errors"
	"github.com/YuminosukeSato/neptunelearn/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// andData is the logical AND with ±1 labels.
func andData() (*mat.Dense, *mat.Dense) {
	X := mat.NewDense(4, 2, []float64{
		0, 0,
		0, 1,
		1, 0,
		1, 1,
	})
	y := mat.NewDense(4, 1, []float64{-1, -1, -1, 1})
	return X, y
}

func xorData() (*mat.Dense, *mat.Dense) {
	X := mat.NewDense(4, 2, []float64{
		0, 0,
		0, 1,
		1, 0,
		1, 1,
	})
	y := mat.NewDense(4, 1, []float64{-1, 1, 1, -1})
	return X, y
}

func TestPerceptron_AND(t *testing.T) {
	X, y := andData()
	p := NewPerceptron()

	require.NoError(t, p.Fit(X, y))
	assert.True(t, p.IsFitted())

	thetas, err := p.Thetas()
	require.NoError(t, err)
	assert.Equal(t, []float64{-3, 2, 1}, thetas)

	assert.Equal(t, "mistakes", p.History().Metric())
	assert.Equal(t, []float64{2, 3, 3, 2, 1, 0}, p.History().Values())

	traj := p.Trajectory()
	require.Len(t, traj, 6)
	assert.Equal(t, []float64{0, 1, 1}, traj[0])
	assert.Equal(t, thetas, traj[len(traj)-1])

	pred, err := p.Predict(mat.NewDense(2, 2, []float64{1, 1, 0, 0}))
	require.NoError(t, err)
	assert.Equal(t, 1.0, pred.At(0, 0))
	assert.Equal(t, -1.0, pred.At(1, 0))

	slope, intercept, err := DecisionBoundary(thetas)
	require.NoError(t, err)
	assert.Equal(t, -2.0, slope)
	assert.Equal(t, 3.0, intercept)
}

func TestPerceptron_SeparableRoundTrip(t *testing.T) {
	X := mat.NewDense(8, 2, []float64{
		2, 3,
		1, 4,
		3, 5,
		2.5, 4.5,
		-1, -2,
		-2, -1,
		-1.5, -3,
		0.5, -2,
	})
	y := mat.NewDense(8, 1, []float64{1, 1, 1, 1, -1, -1, -1, -1})

	p := NewPerceptron()
	require.NoError(t, p.Fit(X, y))

	last, ok := p.History().Last()
	require.True(t, ok)
	assert.Equal(t, 0.0, last, "converged epoch makes no mistakes")

	pred, err := p.Predict(X)
	require.NoError(t, err)
	assert.True(t, mat.Equal(y, pred), "training labels must be reproduced exactly")

	score, err := p.Score(X, y)
	require.NoError(t, err)
	assert.Equal(t, 1.0, score)
	assert.Equal(t, []float64{-1, 1}, p.Classes())
}

func TestPerceptron_Deterministic(t *testing.T) {
	X, y := andData()
	a, b := NewPerceptron(WithDegree(2)), NewPerceptron(WithDegree(2))
	require.NoError(t, a.Fit(X, y))
	require.NoError(t, b.Fit(X, y))

	ta, _ := a.Thetas()
	tb, _ := b.Thetas()
	assert.Equal(t, ta, tb)
	assert.Len(t, ta, 6)
	assert.Equal(t, a.History().Values(), b.History().Values())
}

func TestPerceptron_LargeTolStopsEarly(t *testing.T) {
	X, y := andData()
	p := NewPerceptron(WithTol(10))

	// the first epoch moves the weights by sqrt(2)
	require.NoError(t, p.Fit(X, y))
	assert.True(t, p.IsFitted())
	assert.Equal(t, []float64{2}, p.History().Values())
	assert.Equal(t, [][]float64{{0, 1, 1}}, p.Trajectory())

	thetas, err := p.Thetas()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 1}, thetas)
}

func TestPerceptron_TolBetweenEpochDeltas(t *testing.T) {
	X, y := andData()

	// epoch deltas on AND are sqrt(2), sqrt(2), 1, 1, sqrt(2), 0
	p := NewPerceptron(WithTol(1))
	require.NoError(t, p.Fit(X, y))
	assert.Equal(t, []float64{2, 3, 3}, p.History().Values())
	thetas, err := p.Thetas()
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, 2, 1}, thetas)

	p = NewPerceptron(WithTol(0.5))
	require.NoError(t, p.Fit(X, y))
	assert.Equal(t, []float64{2, 3, 3, 2, 1, 0}, p.History().Values())
}

func TestPerceptron_EtaHasNoEffect(t *testing.T) {
	X, y := andData()
	small, large := NewPerceptron(WithEta(0.01)), NewPerceptron(WithEta(10))
	require.NoError(t, small.Fit(X, y))
	require.NoError(t, large.Fit(X, y))

	ts, err := small.Thetas()
	require.NoError(t, err)
	tl, err := large.Thetas()
	require.NoError(t, err)
	assert.Equal(t, ts, tl)
	assert.Equal(t, small.History().Values(), large.History().Values())
	assert.Equal(t, small.Trajectory(), large.Trajectory())
}

func TestPerceptron_XORDoesNotConverge(t *testing.T) {
	X, y := xorData()
	p := NewPerceptron(WithMaxEpochs(50))

	err := p.Fit(X, y)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotConverged))

	var convErr *errors.ConvergenceError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, "Perceptron", convErr.Algorithm)
	assert.Equal(t, 50, convErr.Iterations)

	assert.False(t, p.IsFitted())
	assert.Equal(t, 50, p.History().Len(), "history of the failed run stays inspectable")
	assert.Len(t, p.Trajectory(), 50)

	// from epoch 3 on every epoch returns to the same weights with 4 mistakes
	values := p.History().Values()
	assert.Equal(t, 4.0, values[len(values)-1])

	_, err = p.Predict(X)
	var notFitted *errors.NotFittedError
	assert.True(t, errors.As(err, &notFitted))
}

func TestPerceptron_XORSeparableWithDegreeTwo(t *testing.T) {
	// x1*x2 makes XOR linearly separable
	X, y := xorData()
	p := NewPerceptron(WithDegree(2))

	require.NoError(t, p.Fit(X, y))
	score, err := p.Score(X, y)
	require.NoError(t, err)
	assert.Equal(t, 1.0, score)
}

func TestPerceptron_InvalidLabels(t *testing.T) {
	X, _ := andData()
	y := mat.NewDense(4, 1, []float64{0, 0, 0, 1})

	p := NewPerceptron()
	err := p.Fit(X, y)
	var valErr *errors.ValueError
	require.True(t, errors.As(err, &valErr))
	assert.Contains(t, err.Error(), "label at row 0")
	assert.False(t, p.IsFitted())
}

func TestPerceptron_NotFittedAndStaleDimensions(t *testing.T) {
	p := NewPerceptron()
	X, y := andData()

	_, err := p.Predict(X)
	var notFitted *errors.NotFittedError
	require.True(t, errors.As(err, &notFitted))
	_, err = p.Thetas()
	assert.True(t, errors.As(err, &notFitted))

	require.NoError(t, p.Fit(X, y))
	_, err = p.Predict(mat.NewDense(1, 3, nil))
	var dimErr *errors.DimensionError
	require.True(t, errors.As(err, &dimErr))
	assert.Equal(t, 2, dimErr.Expected)
	assert.Equal(t, 3, dimErr.Got)
}

func TestPerceptron_RefitResets(t *testing.T) {
	p := NewPerceptron()
	X, y := andData()
	require.NoError(t, p.Fit(X, y))
	require.Equal(t, 6, p.History().Len())

	// zero weights already classify every sample as +1
	require.NoError(t, p.Fit(mat.NewDense(2, 1, []float64{1, 2}), mat.NewDense(2, 1, []float64{1, 1})))
	assert.Equal(t, []float64{0}, p.History().Values())
	assert.Len(t, p.Trajectory(), 1)

	thetas, err := p.Thetas()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, thetas)
}

func TestPerceptron_FailedRefitClearsFittedState(t *testing.T) {
	p := NewPerceptron(WithMaxEpochs(10))
	X, y := andData()
	require.NoError(t, p.Fit(X, y))

	Xx, yx := xorData()
	require.Error(t, p.Fit(Xx, yx))
	assert.False(t, p.IsFitted())

	_, err := p.Thetas()
	var notFitted *errors.NotFittedError
	assert.True(t, errors.As(err, &notFitted))
}

func TestPerceptron_Logging(t *testing.T) {
	logger, _ := log.NewTestLogger(log.LevelDebug)
	X, y := andData()
	p := NewPerceptron(WithLogger(logger))

	require.NoError(t, p.Fit(X, y))

	assert.Equal(t, 6, logger.CountMessages("epoch"))
	assert.Equal(t, 1, logger.CountMessages("fit completed"))
	assert.True(t, logger.ContainsField(log.ModelNameKey, "Perceptron"))
	assert.True(t, logger.ContainsField(log.OperationKey, log.OperationFit))
	assert.True(t, logger.ContainsField(log.DesignColumnsKey, 3.0))

	logger.Clear()
	Xx, yx := xorData()
	p = NewPerceptron(WithLogger(logger), WithMaxEpochs(5))
	require.Error(t, p.Fit(Xx, yx))
	assert.True(t, logger.ContainsField(log.ErrorCodeKey, log.ErrorConvergence))
}
