package linear

import (
	"context"
	"time"

	"github.com/YuminosukeSato/neptunelearn/core/model"
	"github.com/YuminosukeSato/neptunelearn/metrics"
	"github.com/YuminosukeSato/neptunelearn/pkg/errors"
	"github.com/YuminosukeSato/neptunelearn/pkg/log"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Perceptron is Rosenblatt's online classifier for ±1 labels. Weights start
// at zero and each misclassified sample adds label*x to them; there is no
// learning rate. Training stops once an epoch changes the weights by at most
// Tol (L2 norm), and fails after MaxEpochs epochs. An epoch whose updates
// cancel out exactly while still misclassifying does not count as converged.
//
//	p := linear.NewPerceptron(linear.WithMaxEpochs(100))
//	if err := p.Fit(X, y); err != nil { ... }
//	labels, _ := p.Predict(X)
type Perceptron struct {
	estimator

	trajectory [][]float64
}

var _ model.Classifier = (*Perceptron)(nil)

// NewPerceptron creates a Perceptron. Eta and NIter are not used.
func NewPerceptron(opts ...Option) *Perceptron {
	return &Perceptron{estimator: newEstimator("Perceptron", "mistakes", opts)}
}

// Fit trains on X (n×d) and y (n×1, labels ±1). On non-convergence it returns
// a ConvergenceError and the model stays unfitted, but History and Trajectory
// keep the failed run.
func (p *Perceptron) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "Perceptron.Fit")
	start := time.Now()

	p.reset()
	p.trajectory = nil

	design, labels, err := p.prepareFit(X, y)
	if err != nil {
		return err
	}
	if err := checkLabels("Perceptron.Fit", labels, -1, 1); err != nil {
		return err
	}

	r, c := design.Dims()
	thetas := make([]float64, c)
	prev := make([]float64, c)
	debug := p.logger.Enabled(context.Background(), log.LevelDebug)

	for epoch := 0; ; epoch++ {
		copy(prev, thetas)
		mistakes := 0
		for i := 0; i < r; i++ {
			xi := design.RawRowView(i)
			net, err := NetInputRow(xi, thetas)
			if err != nil {
				return err
			}
			if target := labels.AtVec(i); signLabel(net) != target {
				floats.AddScaled(thetas, target, xi)
				mistakes++
			}
		}
		p.history.Append(float64(mistakes))
		p.trajectory = append(p.trajectory, append([]float64(nil), thetas...))

		delta := floats.Distance(thetas, prev, 2)
		if debug {
			p.logger.Debug("epoch",
				log.EpochKey, epoch,
				log.MistakesKey, mistakes,
				log.WeightDeltaKey, delta,
			)
		}
		// delta == 0 かつ mistakes > 0 は重みが循環しているだけ
		cycling := delta == 0 && mistakes > 0
		if delta <= p.cfg.Tol && !cycling {
			break
		}
		if epoch+1 >= p.cfg.MaxEpochs {
			err := errors.NewConvergenceError("Perceptron", epoch+1, delta, p.cfg.Tol)
			p.logger.Error("fit did not converge", err,
				log.ErrorCodeKey, log.ErrorConvergence,
				log.SuggestionKey, "data may not be linearly separable; raise max_epochs or the degree",
			)
			return err
		}
	}

	p.finishFit(mat.NewVecDense(c, thetas), design, start)
	return nil
}

// Predict returns n×1 labels: +1 where the net input is >= 0, else -1.
func (p *Perceptron) Predict(X mat.Matrix) (mat.Matrix, error) {
	net, err := p.netInput("Predict", X)
	if err != nil {
		return nil, err
	}
	return thresholdLabels(net), nil
}

// Score returns the accuracy of Predict(X) against y.
func (p *Perceptron) Score(X, y mat.Matrix) (float64, error) {
	pred, err := p.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.AccuracyMatrix(y, pred)
}

// Classes returns [-1, 1].
func (p *Perceptron) Classes() []float64 {
	return []float64{-1, 1}
}

// Trajectory returns one copy of the weights per epoch of the last Fit.
func (p *Perceptron) Trajectory() [][]float64 {
	out := make([][]float64, len(p.trajectory))
	for i, t := range p.trajectory {
		out[i] = append([]float64(nil), t...)
	}
	return out
}

// thresholdLabels maps a net input vector to an n×1 matrix of ±1.
func thresholdLabels(net *mat.VecDense) *mat.Dense {
	n := net.Len()
	out := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		out.Set(i, 0, signLabel(net.AtVec(i)))
	}
	return out
}
