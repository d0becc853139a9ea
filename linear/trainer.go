package linear

import (
	"context"
	"math"

	"github.com/YuminosukeSato/neptunelearn/core/model"
	"github.com/YuminosukeSato/neptunelearn/metrics"
	"github.com/YuminosukeSato/neptunelearn/pkg/errors"
	"github.com/YuminosukeSato/neptunelearn/pkg/log"
	"gonum.org/v1/gonum/mat"
)

// Algorithm is one batch-trained parameterisation of the linear model. The
// trainer computes the activated output for the current weights, records
// Cost and then lets Update move the weights in place.
type Algorithm interface {
	Name() string
	Activation(z float64) float64
	Cost(y, output *mat.VecDense) (float64, error)
	Update(X *mat.Dense, y, output, thetas *mat.VecDense) error
}

// preparer is implemented by algorithms that precompute something from the
// design matrix before the first iteration.
type preparer interface {
	prepare(X *mat.Dense) error
}

// runBatch runs alg for exactly niter iterations from zero weights and
// appends one cost per iteration to history.
func runBatch(alg Algorithm, X *mat.Dense, y *mat.VecDense, niter int, history *model.History, logger log.Logger) (*mat.VecDense, error) {
	_, c := X.Dims()
	thetas := mat.NewVecDense(c, nil)

	if p, ok := alg.(preparer); ok {
		if err := p.prepare(X); err != nil {
			return nil, err
		}
	}

	debug := logger.Enabled(context.Background(), log.LevelDebug)
	if debug {
		logger.Debug("batch training started", log.AlgorithmKey, alg.Name(), log.IterationKey, niter)
	}
	for it := 0; it < niter; it++ {
		net, err := NetInput(X, thetas)
		if err != nil {
			return nil, err
		}
		output := Activate(net, alg.Activation)

		cost, err := alg.Cost(y, output)
		if err != nil {
			return nil, err
		}
		if err := alg.Update(X, y, output, thetas); err != nil {
			return nil, err
		}
		history.Append(cost)

		if debug {
			logger.Debug("iteration", log.IterationKey, it, log.LossKey, cost)
		}
	}
	return thetas, nil
}

// gradientStep applies thetas += eta * Xᵀ(y - output) / n.
func gradientStep(X *mat.Dense, y, output, thetas *mat.VecDense, eta float64) {
	n, _ := X.Dims()
	var residual, grad mat.VecDense
	residual.SubVec(y, output)
	grad.MulVec(X.T(), &residual)
	thetas.AddScaledVec(thetas, eta/float64(n), &grad)
}

// squaredErrorGD is Adaline: identity activation, cost SSE/(2n).
type squaredErrorGD struct {
	eta float64
}

func (a squaredErrorGD) Name() string { return "squared-error gradient descent" }

func (a squaredErrorGD) Activation(z float64) float64 { return Identity(z) }

func (a squaredErrorGD) Cost(y, output *mat.VecDense) (float64, error) {
	mse, err := metrics.MSE(y, output)
	if err != nil {
		return 0, err
	}
	return mse / 2, nil
}

func (a squaredErrorGD) Update(X *mat.Dense, y, output, thetas *mat.VecDense) error {
	gradientStep(X, y, output, thetas, a.eta)
	return nil
}

// logLikelihoodGD is logistic regression: sigmoid activation, cost is the
// mean negative log-likelihood.
type logLikelihoodGD struct {
	eta float64
}

func (a logLikelihoodGD) Name() string { return "log-likelihood gradient descent" }

func (a logLikelihoodGD) Activation(z float64) float64 { return Sigmoid(z) }

func (a logLikelihoodGD) Cost(y, output *mat.VecDense) (float64, error) {
	return metrics.BinaryLogLoss(y, output)
}

func (a logLikelihoodGD) Update(X *mat.Dense, y, output, thetas *mat.VecDense) error {
	gradientStep(X, y, output, thetas, a.eta)
	return nil
}

// gaussianNewton maximises the Gaussian likelihood. Each update is the full
// Newton step thetas += (XᵀX)⁻¹Xᵀ(y - Xthetas); cost is the negative
// log-likelihood with sigma² = RSS/n.
type gaussianNewton struct {
	chol *mat.Cholesky
}

func (a *gaussianNewton) Name() string { return "gaussian maximum likelihood" }

func (a *gaussianNewton) Activation(z float64) float64 { return Identity(z) }

func (a *gaussianNewton) prepare(X *mat.Dense) error {
	chol, err := normalMatrix(X)
	if err != nil {
		return err
	}
	a.chol = chol
	return nil
}

func (a *gaussianNewton) Cost(y, output *mat.VecDense) (float64, error) {
	n := float64(y.Len())
	return gaussianNLL(n, metrics.SumSquaredError(y, output)), nil
}

func (a *gaussianNewton) Update(X *mat.Dense, y, output, thetas *mat.VecDense) error {
	var residual, xtr mat.VecDense
	residual.SubVec(y, output)
	xtr.MulVec(X.T(), &residual)

	step := mat.NewVecDense(thetas.Len(), nil)
	if err := a.chol.SolveVecTo(step, &xtr); err != nil {
		return errors.NewModelError("LinearRegressionMLE.Fit", "ill-conditioned normal equations", errors.ErrSingularMatrix)
	}
	thetas.AddVec(thetas, step)
	return nil
}

// gaussianNLL is n/2·log(2πσ²) + RSS/(2σ²) with σ² = RSS/n.
func gaussianNLL(n, rss float64) float64 {
	sigma2 := rss / n
	return n/2*errors.StabilizeLog(2*math.Pi*sigma2) + n/2
}

// normalMatrix factorises XᵀX. A matrix that is not positive definite means
// the design columns are linearly dependent.
func normalMatrix(X *mat.Dense) (*mat.Cholesky, error) {
	_, c := X.Dims()
	xtx := mat.NewSymDense(c, nil)
	xtx.SymOuterK(1, X.T())

	var chol mat.Cholesky
	if ok := chol.Factorize(xtx); !ok {
		return nil, errors.NewModelError("normal equations", "XᵀX is singular", errors.ErrSingularMatrix)
	}
	return &chol, nil
}
