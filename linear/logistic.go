package linear

import (
	"time"

	"github.com/YuminosukeSato/neptunelearn/core/model"
	"github.com/YuminosukeSato/neptunelearn/metrics"
	"github.com/YuminosukeSato/neptunelearn/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// LogisticRegression is a binary classifier for {0,1} labels trained by
// full-batch gradient descent on the mean negative log-likelihood.
type LogisticRegression struct {
	estimator
}

var _ model.ProbabilisticClassifier = (*LogisticRegression)(nil)

// NewLogisticRegression creates a logistic regression classifier.
func NewLogisticRegression(opts ...Option) *LogisticRegression {
	return &LogisticRegression{estimator: newEstimator("LogisticRegression", "cost", opts)}
}

// Fit runs NIter iterations of gradient descent. Labels must be 0 or 1.
func (m *LogisticRegression) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "LogisticRegression.Fit")
	start := time.Now()
	m.reset()

	design, labels, err := m.prepareFit(X, y)
	if err != nil {
		return err
	}
	if err := checkLabels("LogisticRegression.Fit", labels, 0, 1); err != nil {
		return err
	}
	thetas, err := runBatch(logLikelihoodGD{eta: m.cfg.Eta}, design, labels, m.cfg.NIter, m.history, m.logger)
	if err != nil {
		return err
	}
	warnIfCostGrew(m.name, m.history)

	m.finishFit(thetas, design, start)
	return nil
}

// probability returns sigmoid(net) for every row of X.
func (m *LogisticRegression) probability(method string, X mat.Matrix) (*mat.VecDense, error) {
	net, err := m.netInput(method, X)
	if err != nil {
		return nil, err
	}
	return Activate(net, Sigmoid), nil
}

// PredictProba returns n×2 [P(y=0), P(y=1)].
func (m *LogisticRegression) PredictProba(X mat.Matrix) (mat.Matrix, error) {
	p, err := m.probability("PredictProba", X)
	if err != nil {
		return nil, err
	}
	n := p.Len()
	out := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		out.Set(i, 0, 1-p.AtVec(i))
		out.Set(i, 1, p.AtVec(i))
	}
	return out, nil
}

// Predict returns n×1 labels: 1 where P(y=1) >= 0.5, else 0.
func (m *LogisticRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	p, err := m.probability("Predict", X)
	if err != nil {
		return nil, err
	}
	n := p.Len()
	out := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		if p.AtVec(i) >= 0.5 {
			out.Set(i, 0, 1)
		}
	}
	return out, nil
}

// Score returns the accuracy of Predict(X) against y.
func (m *LogisticRegression) Score(X, y mat.Matrix) (float64, error) {
	pred, err := m.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.AccuracyMatrix(y, pred)
}

// Classes returns [0, 1].
func (m *LogisticRegression) Classes() []float64 {
	return []float64{0, 1}
}
