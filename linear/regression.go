package linear

import (
	"time"

	"github.com/YuminosukeSato/neptunelearn/core/model"
	"github.com/YuminosukeSato/neptunelearn/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// LinearRegression solves ordinary least squares in closed form through the
// normal equations XᵀX·thetas = Xᵀy. It serves as the reference solution for
// the iterative regressors.
type LinearRegression struct {
	estimator
}

var _ model.Regressor = (*LinearRegression)(nil)

// NewLinearRegression creates a closed-form linear regressor. Eta, NIter,
// Tol and MaxEpochs are not used.
func NewLinearRegression(opts ...Option) *LinearRegression {
	return &LinearRegression{estimator: newEstimator("LinearRegression", "cost", opts)}
}

// Fit solves the normal equations. History holds the single cost SSE/(2n)
// at the solution.
func (m *LinearRegression) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "LinearRegression.Fit")
	start := time.Now()
	m.reset()

	design, target, err := m.prepareFit(X, y)
	if err != nil {
		return err
	}
	chol, err := normalMatrix(design)
	if err != nil {
		return err
	}

	var xty mat.VecDense
	xty.MulVec(design.T(), target)
	_, c := design.Dims()
	thetas := mat.NewVecDense(c, nil)
	if err := chol.SolveVecTo(thetas, &xty); err != nil {
		return errors.NewModelError("LinearRegression.Fit", "ill-conditioned normal equations", errors.ErrSingularMatrix)
	}

	fitted, err := NetInput(design, thetas)
	if err != nil {
		return err
	}
	cost, err := squaredErrorGD{}.Cost(target, fitted)
	if err != nil {
		return err
	}
	m.history.Append(cost)

	m.finishFit(thetas, design, start)
	return nil
}

// Predict returns the n×1 fitted values.
func (m *LinearRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	return predictContinuous(&m.estimator, X)
}

// Score returns R² of Predict(X) against y.
func (m *LinearRegression) Score(X, y mat.Matrix) (float64, error) {
	return scoreR2(m, X, y)
}
