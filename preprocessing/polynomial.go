package preprocessing

import (
	"fmt"
	"strings"

	"github.com/YuminosukeSato/neptunelearn/core/model"
	"github.com/YuminosukeSato/neptunelearn/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/combin"
)

// DenseFromRows builds a matrix from row slices. Every row must have the same
// non-zero length; otherwise the input is not a 2-D array and an
// InputShapeError is returned.
func DenseFromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 {
		return nil, errors.NewInputShapeErrorf("transform", []int{-1, -1}, []int{0, 0}, "no rows")
	}
	c := len(rows[0])
	if c == 0 {
		return nil, errors.NewInputShapeErrorf("transform", []int{len(rows), -1}, []int{len(rows), 0}, "row 0 is empty")
	}
	data := make([]float64, 0, len(rows)*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, errors.NewInputShapeErrorf("transform", []int{len(rows), c}, []int{i, len(row)},
				"row %d has %d columns, row 0 has %d", i, len(row), c)
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), c, data), nil
}

// PolynomialPowers lists the monomials produced for nFeatures inputs up to
// degree, as sorted feature-index tuples. Monomials are grouped by total
// degree ascending; within one degree the tuples i1 <= i2 <= ... appear in
// lexicographic order. For two features and degree 2 the result is
// [0] [1] [0 0] [0 1] [1 1], i.e. x0, x1, x0^2, x0*x1, x1^2.
func PolynomialPowers(nFeatures, degree int) [][]int {
	var out [][]int
	for d := 1; d <= degree; d++ {
		combo := make([]int, d)
		var rec func(pos, start int)
		rec = func(pos, start int) {
			if pos == d {
				out = append(out, append([]int(nil), combo...))
				return
			}
			for i := start; i < nFeatures; i++ {
				combo[pos] = i
				rec(pos+1, i)
			}
		}
		rec(0, 0)
	}
	return out
}

// NumOutputFeatures returns the design-matrix width MakePolynomial produces.
func NumOutputFeatures(nFeatures, degree int, bias bool) int {
	if nFeatures < 0 || degree < 0 {
		return 0
	}
	// sum_{k=1..degree} C(nFeatures+k-1, k) = C(nFeatures+degree, degree) - 1
	n := combin.Binomial(nFeatures+degree, degree) - 1
	if bias {
		n++
	}
	return n
}

// MakePolynomial expands X into a design matrix. degree 1 is the identity
// expansion; higher degrees append every monomial listed by PolynomialPowers.
// With bias a constant-1 column is prepended. The result is a new matrix and
// X is not modified.
func MakePolynomial(X mat.Matrix, degree int, bias bool) (*mat.Dense, error) {
	if degree < 1 {
		return nil, errors.NewValidationError("degree", "must be >= 1", degree)
	}
	if X == nil {
		return nil, errors.NewInputShapeErrorf("transform", []int{-1, -1}, nil, "X is nil")
	}
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewInputShapeErrorf("transform", []int{-1, -1}, []int{r, c}, "X is empty")
	}

	powers := PolynomialPowers(c, degree)
	offset := 0
	if bias {
		offset = 1
	}
	out := mat.NewDense(r, len(powers)+offset, nil)
	for i := 0; i < r; i++ {
		if bias {
			out.Set(i, 0, 1)
		}
		for j, p := range powers {
			v := 1.0
			for _, idx := range p {
				v *= X.At(i, idx)
			}
			out.Set(i, j+offset, v)
		}
	}
	return out, nil
}

// PolynomialFeatures is the transformer form of MakePolynomial. Fit records
// the raw feature count so Transform can reject inputs of another width.
type PolynomialFeatures struct {
	state *model.StateManager

	Degree int
	Bias   bool
}

// NewPolynomialFeatures creates a transformer for the given degree and bias flag.
//
//	pf := preprocessing.NewPolynomialFeatures(2, true)
//	design, err := pf.FitTransform(X)
func NewPolynomialFeatures(degree int, bias bool) *PolynomialFeatures {
	return &PolynomialFeatures{
		state:  model.NewStateManager(),
		Degree: degree,
		Bias:   bias,
	}
}

// Fit records the number of raw features.
func (p *PolynomialFeatures) Fit(X mat.Matrix) error {
	p.state.Reset()
	if p.Degree < 1 {
		return errors.NewValidationError("degree", "must be >= 1", p.Degree)
	}
	if X == nil {
		return errors.NewInputShapeErrorf("training", []int{-1, -1}, nil, "X is nil")
	}
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("PolynomialFeatures.Fit", "empty data", errors.ErrEmptyData)
	}
	p.state.SetDimensions(c, r)
	p.state.SetFitted()
	return nil
}

// Transform expands X into the design matrix.
func (p *PolynomialFeatures) Transform(X mat.Matrix) (mat.Matrix, error) {
	if err := p.state.RequireFitted("PolynomialFeatures", "Transform"); err != nil {
		return nil, err
	}
	nFeatures, _ := p.state.GetDimensions()
	if X != nil {
		if _, c := X.Dims(); c != nFeatures {
			return nil, errors.NewDimensionError("PolynomialFeatures.Transform", nFeatures, c, 1)
		}
	}
	return MakePolynomial(X, p.Degree, p.Bias)
}

// FitTransform fits and transforms in one call.
func (p *PolynomialFeatures) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := p.Fit(X); err != nil {
		return nil, err
	}
	return p.Transform(X)
}

// NOutputFeatures returns the width of the transformed matrix.
func (p *PolynomialFeatures) NOutputFeatures() (int, error) {
	if err := p.state.RequireFitted("PolynomialFeatures", "NOutputFeatures"); err != nil {
		return 0, err
	}
	nFeatures, _ := p.state.GetDimensions()
	return NumOutputFeatures(nFeatures, p.Degree, p.Bias), nil
}

// FeatureNames names the output columns, e.g. "1", "x0", "x0^2", "x0 x1".
// inputNames may be nil, in which case x0, x1, ... are used.
func (p *PolynomialFeatures) FeatureNames(inputNames []string) ([]string, error) {
	if err := p.state.RequireFitted("PolynomialFeatures", "FeatureNames"); err != nil {
		return nil, err
	}
	nFeatures, _ := p.state.GetDimensions()
	if inputNames == nil {
		inputNames = make([]string, nFeatures)
		for i := range inputNames {
			inputNames[i] = fmt.Sprintf("x%d", i)
		}
	}
	if len(inputNames) != nFeatures {
		return nil, errors.NewDimensionError("PolynomialFeatures.FeatureNames", nFeatures, len(inputNames), 1)
	}

	var names []string
	if p.Bias {
		names = append(names, "1")
	}
	for _, powers := range PolynomialPowers(nFeatures, p.Degree) {
		names = append(names, monomialName(powers, inputNames))
	}
	return names, nil
}

func monomialName(powers []int, inputNames []string) string {
	var parts []string
	for i := 0; i < len(powers); {
		j := i
		for j < len(powers) && powers[j] == powers[i] {
			j++
		}
		if exp := j - i; exp > 1 {
			parts = append(parts, fmt.Sprintf("%s^%d", inputNames[powers[i]], exp))
		} else {
			parts = append(parts, inputNames[powers[i]])
		}
		i = j
	}
	return strings.Join(parts, " ")
}

// GetParams returns the transformer's parameters.
func (p *PolynomialFeatures) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"degree": p.Degree,
		"bias":   p.Bias,
	}
}
