// Package neptunelearn provides linear and single-neuron learning algorithms
// for Go: the Perceptron, Adaline, logistic regression and linear regression
// fitted by gradient descent, maximum likelihood or the normal equations.
//
// Every model expands its raw input into a polynomial design matrix, keeps a
// single weight vector over the design columns and records one diagnostic
// value per iteration (mistakes for the Perceptron, cost for the others), so
// the training curve can be inspected or plotted after Fit.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/neptunelearn/linear"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    // logical AND with ±1 labels
//	    X := mat.NewDense(4, 2, []float64{0, 0, 0, 1, 1, 0, 1, 1})
//	    y := mat.NewDense(4, 1, []float64{-1, -1, -1, 1})
//
//	    p := linear.NewPerceptron(linear.WithMaxEpochs(100))
//	    if err := p.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    thetas, _ := p.Thetas()
//	    slope, intercept, _ := linear.DecisionBoundary(thetas)
//	    fmt.Println("mistakes per epoch:", p.History().Values())
//	    fmt.Printf("boundary: x2 = %.2f*x1 + %.2f\n", slope, intercept)
//	}
//
// # Packages
//
//   - linear: Perceptron, Adaline, LogisticRegression, LinearRegressionGD,
//     LinearRegressionMLE, LinearRegression and the shared net input
//   - preprocessing: MakePolynomial, PolynomialFeatures, StandardScaler
//   - metrics: MSE, R², accuracy, binary log-loss
//   - core/model: estimator interfaces, StateManager and History
//   - pkg/errors: structured errors and warnings on cockroachdb/errors
//   - pkg/log: structured logging on zerolog
//
// # Errors
//
// Errors carry a stack trace and can be matched with errors.As:
//
//	var convErr *errors.ConvergenceError
//	if errors.As(err, &convErr) {
//	    // the Perceptron hit MaxEpochs; History() still holds the failed run
//	}
//
// # Logging
//
// Models log through pkg/log. The default provider writes JSON to stderr at
// Warn level; raise it with log.SetLevel(log.LevelDebug) to see every
// iteration, or pass linear.WithLogger to a single model.
package neptunelearn
