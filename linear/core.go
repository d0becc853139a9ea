// Package linear implements the linear and single-neuron models: Perceptron,
// Adaline, logistic regression and linear regression fitted by gradient
// descent, maximum likelihood or the normal equations.
//
// Every model expands its raw input with preprocessing.MakePolynomial, keeps
// one weight vector (thetas) over the design-matrix columns and records one
// diagnostic per iteration in a model.History.
package linear

import (
	"math"

	"github.com/YuminosukeSato/neptunelearn/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Activation maps a net input to the model output.
type Activation func(z float64) float64

// Identity is the activation of Adaline and the linear regressions.
func Identity(z float64) float64 {
	return z
}

// Sigmoid is the logistic activation 1/(1+exp(-z)).
func Sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// NetInput returns X·thetas. The column count of X must equal len(thetas).
func NetInput(X mat.Matrix, thetas *mat.VecDense) (*mat.VecDense, error) {
	r, c := X.Dims()
	if thetas == nil || thetas.Len() != c {
		n := 0
		if thetas != nil {
			n = thetas.Len()
		}
		return nil, errors.NewDimensionError("NetInput", n, c, 1)
	}
	out := mat.NewVecDense(r, nil)
	out.MulVec(X, thetas)
	return out, nil
}

// NetInputRow returns the dot product of one design-matrix row with thetas.
func NetInputRow(xi, thetas []float64) (float64, error) {
	if len(xi) != len(thetas) {
		return 0, errors.NewDimensionError("NetInputRow", len(thetas), len(xi), 1)
	}
	return floats.Dot(xi, thetas), nil
}

// Activate applies f to every element of z into a new vector.
func Activate(z *mat.VecDense, f Activation) *mat.VecDense {
	n := z.Len()
	out := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		out.SetVec(i, f(z.AtVec(i)))
	}
	return out
}

// signLabel thresholds at zero: >= 0 is +1, anything else -1.
func signLabel(v float64) float64 {
	if v >= 0 {
		return 1
	}
	return -1
}

// DecisionBoundary returns the line w0 + w1*x1 + w2*x2 = 0 as x2 = slope*x1 +
// intercept for a model fitted on two raw features with a bias column.
func DecisionBoundary(thetas []float64) (slope, intercept float64, err error) {
	if len(thetas) != 3 {
		return 0, 0, errors.NewDimensionError("DecisionBoundary", 3, len(thetas), 1)
	}
	if thetas[2] == 0 {
		return 0, 0, errors.NewValueError("DecisionBoundary", "w2 is zero, the boundary is vertical")
	}
	return -thetas[1] / thetas[2], -thetas[0] / thetas[2], nil
}
