package linear

import (
	"time"

	"github.com/YuminosukeSato/neptunelearn/core/model"
	"github.com/YuminosukeSato/neptunelearn/metrics"
	"github.com/YuminosukeSato/neptunelearn/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// LinearRegressionGD fits ordinary least squares by the same full-batch
// gradient descent as Adaline but predicts the continuous activation.
type LinearRegressionGD struct {
	estimator
}

var _ model.Regressor = (*LinearRegressionGD)(nil)

// NewLinearRegressionGD creates a gradient-descent linear regressor.
func NewLinearRegressionGD(opts ...Option) *LinearRegressionGD {
	return &LinearRegressionGD{estimator: newEstimator("LinearRegressionGD", "cost", opts)}
}

// Fit runs NIter iterations of gradient descent on SSE/(2n).
func (m *LinearRegressionGD) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "LinearRegressionGD.Fit")
	start := time.Now()
	m.reset()

	design, target, err := m.prepareFit(X, y)
	if err != nil {
		return err
	}
	thetas, err := runBatch(squaredErrorGD{eta: m.cfg.Eta}, design, target, m.cfg.NIter, m.history, m.logger)
	if err != nil {
		return err
	}
	warnIfCostGrew(m.name, m.history)

	m.finishFit(thetas, design, start)
	return nil
}

// Predict returns the n×1 fitted values.
func (m *LinearRegressionGD) Predict(X mat.Matrix) (mat.Matrix, error) {
	return predictContinuous(&m.estimator, X)
}

// Score returns R² of Predict(X) against y.
func (m *LinearRegressionGD) Score(X, y mat.Matrix) (float64, error) {
	return scoreR2(m, X, y)
}

// predictContinuous returns the identity activation of the net input as n×1.
func predictContinuous(e *estimator, X mat.Matrix) (mat.Matrix, error) {
	net, err := e.netInput("Predict", X)
	if err != nil {
		return nil, err
	}
	return net, nil
}

func scoreR2(p model.Predictor, X, y mat.Matrix) (float64, error) {
	pred, err := p.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.R2ScoreMatrix(y, pred)
}
