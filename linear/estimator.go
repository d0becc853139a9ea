package linear

import (
	"fmt"
	"strings"
	"time"

	"github.com/YuminosukeSato/neptunelearn/core/model"
	"github.com/YuminosukeSato/neptunelearn/metrics"
	"github.com/YuminosukeSato/neptunelearn/pkg/errors"
	"github.com/YuminosukeSato/neptunelearn/pkg/log"
	"github.com/YuminosukeSato/neptunelearn/preprocessing"
	"gonum.org/v1/gonum/mat"
)

// estimator is the state every model in this package shares: the
// hyperparameters, the fitted flag, the weights and the per-iteration history.
type estimator struct {
	name    string
	cfg     Config
	state   *model.StateManager
	thetas  *mat.VecDense
	history *model.History
	logger  log.Logger
}

func newEstimator(name, metric string, opts []Option) estimator {
	cfg := newConfig(opts)
	logger := cfg.Logger
	if logger == nil {
		logger = log.GetLoggerWithName("linear." + strings.ToLower(name))
	}
	return estimator{
		name:    name,
		cfg:     cfg,
		state:   model.NewStateManager(),
		history: model.NewHistory(metric),
		logger:  logger.With(log.ModelNameKey, name),
	}
}

// IsFitted reports whether the last Fit succeeded.
func (e *estimator) IsFitted() bool {
	return e.state.IsFitted()
}

// Thetas returns a copy of the fitted weights, bias first when enabled.
func (e *estimator) Thetas() ([]float64, error) {
	if err := e.state.RequireFitted(e.name, "Thetas"); err != nil {
		return nil, err
	}
	return mat.Col(nil, 0, e.thetas), nil
}

// History returns the diagnostics recorded by the last Fit. It is kept after
// a failed Fit so non-convergence can be inspected.
func (e *estimator) History() *model.History {
	return e.history
}

// GetParams returns the hyperparameters.
func (e *estimator) GetParams() map[string]interface{} {
	return e.cfg.Params()
}

// Config returns a copy of the hyperparameters.
func (e *estimator) Config() Config {
	return e.cfg
}

// reset clears everything the previous Fit produced.
func (e *estimator) reset() {
	e.state.Reset()
	e.history.Reset()
	e.thetas = nil
}

// prepareFit validates the hyperparameters and the training pair, then
// expands X into the design matrix.
func (e *estimator) prepareFit(X, y mat.Matrix) (*mat.Dense, *mat.VecDense, error) {
	if err := e.cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if X == nil || y == nil {
		return nil, nil, errors.NewInputShapeErrorf("training", []int{-1, -1}, nil, "%s.Fit: X and y are required", e.name)
	}
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return nil, nil, errors.NewModelError(e.name+".Fit", "empty data", errors.ErrEmptyData)
	}
	target, err := metrics.ColumnVec(e.name+".Fit", y)
	if err != nil {
		return nil, nil, err
	}
	if target.Len() != r {
		return nil, nil, errors.NewDimensionError(e.name+".Fit", r, target.Len(), 0)
	}
	design, err := preprocessing.MakePolynomial(X, e.cfg.Degree, e.cfg.Bias)
	if err != nil {
		return nil, nil, err
	}
	e.state.SetDimensions(c, r)
	return design, target, nil
}

// finishFit stores the weights and marks the model fitted.
func (e *estimator) finishFit(thetas *mat.VecDense, design *mat.Dense, start time.Time) {
	e.thetas = thetas
	e.state.SetFitted()

	r, c := design.Dims()
	fields := []any{
		log.OperationKey, log.OperationFit,
		log.SamplesKey, r,
		log.DesignColumnsKey, c,
		log.IterationKey, e.history.Len(),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	}
	if last, ok := e.history.Last(); ok {
		fields = append(fields, log.LossKey, last)
	}
	e.logger.Info("fit completed", fields...)
}

// design checks that the model is fitted and that X has the raw feature
// count seen during Fit, then expands it.
func (e *estimator) design(method string, X mat.Matrix) (*mat.Dense, error) {
	if err := e.state.RequireFitted(e.name, method); err != nil {
		return nil, err
	}
	if X == nil {
		return nil, errors.NewInputShapeErrorf("prediction", []int{-1, -1}, nil, "%s.%s: X is nil", e.name, method)
	}
	nFeatures, _ := e.state.GetDimensions()
	if _, c := X.Dims(); c != nFeatures {
		return nil, errors.NewDimensionError(e.name+"."+method, nFeatures, c, 1)
	}
	return preprocessing.MakePolynomial(X, e.cfg.Degree, e.cfg.Bias)
}

// netInput returns the fitted model's net input for X.
func (e *estimator) netInput(method string, X mat.Matrix) (*mat.VecDense, error) {
	design, err := e.design(method, X)
	if err != nil {
		return nil, err
	}
	return NetInput(design, e.thetas)
}

// checkLabels returns a ValueError unless every element of y is neg or pos.
func checkLabels(op string, y *mat.VecDense, neg, pos float64) error {
	for i := 0; i < y.Len(); i++ {
		if v := y.AtVec(i); v != neg && v != pos {
			return errors.NewValueError(op, fmt.Sprintf("label at row %d is %v, want %v or %v", i, v, neg, pos))
		}
	}
	return nil
}
