package linear

import (
	"fmt"
	"time"

	"github.com/YuminosukeSato/neptunelearn/core/model"
	"github.com/YuminosukeSato/neptunelearn/metrics"
	"github.com/YuminosukeSato/neptunelearn/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Adaline is the ADAptive LInear NEuron: full-batch gradient descent on
// SSE/(2n) with an identity activation, thresholded at zero for prediction.
// It runs exactly NIter iterations with step Eta; a growing cost is reported
// as a ConvergenceWarning, not an error.
type Adaline struct {
	estimator
}

var _ model.Classifier = (*Adaline)(nil)

// NewAdaline creates an Adaline classifier.
func NewAdaline(opts ...Option) *Adaline {
	return &Adaline{estimator: newEstimator("Adaline", "cost", opts)}
}

// Fit trains on X and y. Targets are usually ±1 but any real values are
// accepted, which makes Adaline usable as a plain least-squares fit.
func (a *Adaline) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "Adaline.Fit")
	start := time.Now()
	a.reset()

	design, target, err := a.prepareFit(X, y)
	if err != nil {
		return err
	}
	thetas, err := runBatch(squaredErrorGD{eta: a.cfg.Eta}, design, target, a.cfg.NIter, a.history, a.logger)
	if err != nil {
		return err
	}
	warnIfCostGrew(a.name, a.history)

	a.finishFit(thetas, design, start)
	return nil
}

// DecisionFunction returns the n×1 activation (the raw net input).
func (a *Adaline) DecisionFunction(X mat.Matrix) (mat.Matrix, error) {
	net, err := a.netInput("DecisionFunction", X)
	if err != nil {
		return nil, err
	}
	return Activate(net, Identity), nil
}

// Predict returns n×1 labels: +1 where the activation is >= 0, else -1.
func (a *Adaline) Predict(X mat.Matrix) (mat.Matrix, error) {
	net, err := a.netInput("Predict", X)
	if err != nil {
		return nil, err
	}
	return thresholdLabels(Activate(net, Identity)), nil
}

// Score returns the accuracy of Predict(X) against y.
func (a *Adaline) Score(X, y mat.Matrix) (float64, error) {
	pred, err := a.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.AccuracyMatrix(y, pred)
}

// Classes returns [-1, 1].
func (a *Adaline) Classes() []float64 {
	return []float64{-1, 1}
}

// warnIfCostGrew emits a ConvergenceWarning when the last recorded cost is
// above the first one, the usual symptom of a too large eta.
func warnIfCostGrew(name string, h *model.History) {
	if h.Len() < 2 {
		return
	}
	first, last := h.At(0), h.At(h.Len()-1)
	if last > first || errors.CheckScalar(name+".Fit", last, h.Len()-1) != nil {
		errors.Warn(errors.NewConvergenceWarning(name, h.Len(),
			fmt.Sprintf("cost grew from %g to %g; eta may be too large", first, last)))
	}
}
