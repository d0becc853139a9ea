package model

import "gonum.org/v1/gonum/floats"

// History is the ordered per-iteration diagnostic sequence recorded by one
// Fit call: misclassification counts for the Perceptron, cost values for the
// batch algorithms. It only grows during a fit and is cleared by the next one.
type History struct {
	metric string
	values []float64
}

// NewHistory creates an empty history whose values are labelled metric
// (for example "mistakes" or "cost").
func NewHistory(metric string) *History {
	return &History{metric: metric}
}

// Metric returns the label of the recorded diagnostic.
func (h *History) Metric() string {
	return h.metric
}

// Append records the diagnostic of the next iteration.
func (h *History) Append(v float64) {
	h.values = append(h.values, v)
}

// Reset discards every recorded value.
func (h *History) Reset() {
	h.values = h.values[:0]
}

// Len returns the number of recorded iterations.
func (h *History) Len() int {
	return len(h.values)
}

// At returns the diagnostic of iteration i (0-based).
func (h *History) At(i int) float64 {
	return h.values[i]
}

// Last returns the most recent value, or false when the history is empty.
func (h *History) Last() (float64, bool) {
	if len(h.values) == 0 {
		return 0, false
	}
	return h.values[len(h.values)-1], true
}

// Values returns a copy of the recorded sequence.
func (h *History) Values() []float64 {
	out := make([]float64, len(h.values))
	copy(out, h.values)
	return out
}

// IsNonIncreasing reports whether every value is <= its predecessor plus tol.
func (h *History) IsNonIncreasing(tol float64) bool {
	for i := 1; i < len(h.values); i++ {
		if h.values[i] > h.values[i-1]+tol {
			return false
		}
	}
	return true
}

// Min returns the smallest recorded value, or false when the history is empty.
func (h *History) Min() (float64, bool) {
	if len(h.values) == 0 {
		return 0, false
	}
	return floats.Min(h.values), true
}
