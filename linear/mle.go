package linear

import (
	"time"

	"github.com/YuminosukeSato/neptunelearn/core/model"
	"github.com/YuminosukeSato/neptunelearn/metrics"
	"github.com/YuminosukeSato/neptunelearn/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// LinearRegressionMLE fits linear regression by maximising the Gaussian
// likelihood. Each of the NIter iterations takes a full Newton step, so the
// weights reach the least-squares solution after the first one and the
// recorded negative log-likelihood stays flat afterwards.
type LinearRegressionMLE struct {
	estimator

	sigma2 float64
}

var _ model.Regressor = (*LinearRegressionMLE)(nil)

// NewLinearRegressionMLE creates a maximum-likelihood linear regressor.
func NewLinearRegressionMLE(opts ...Option) *LinearRegressionMLE {
	return &LinearRegressionMLE{estimator: newEstimator("LinearRegressionMLE", "negative_log_likelihood", opts)}
}

// Fit estimates the weights and the noise variance. Linearly dependent
// design columns return a ModelError wrapping ErrSingularMatrix.
func (m *LinearRegressionMLE) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "LinearRegressionMLE.Fit")
	start := time.Now()
	m.reset()
	m.sigma2 = 0

	design, target, err := m.prepareFit(X, y)
	if err != nil {
		return err
	}
	thetas, err := runBatch(&gaussianNewton{}, design, target, m.cfg.NIter, m.history, m.logger)
	if err != nil {
		return err
	}

	fitted, err := NetInput(design, thetas)
	if err != nil {
		return err
	}
	n, _ := design.Dims()
	m.sigma2 = metrics.SumSquaredError(target, fitted) / float64(n)

	m.finishFit(thetas, design, start)
	return nil
}

// Sigma2 returns the maximum-likelihood noise variance RSS/n.
func (m *LinearRegressionMLE) Sigma2() (float64, error) {
	if err := m.state.RequireFitted(m.name, "Sigma2"); err != nil {
		return 0, err
	}
	return m.sigma2, nil
}

// Predict returns the n×1 fitted values.
func (m *LinearRegressionMLE) Predict(X mat.Matrix) (mat.Matrix, error) {
	return predictContinuous(&m.estimator, X)
}

// Score returns R² of Predict(X) against y.
func (m *LinearRegressionMLE) Score(X, y mat.Matrix) (float64, error) {
	return scoreR2(m, X, y)
}
