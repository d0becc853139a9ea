// Package model provides the interfaces and shared state types every
// estimator in the module is built from.
package model

import (
	"gonum.org/v1/gonum/mat"
)

// Scorer is the interface for models that can compute a score.
// Regressors return R^2, classifiers return accuracy.
type Scorer interface {
	Score(X mat.Matrix, y mat.Matrix) (float64, error)
}

// Regressor combines interfaces for regression models.
type Regressor interface {
	Estimator
	Predictor
	Scorer
	LinearModel
}

// Classifier combines interfaces for binary classification models.
type Classifier interface {
	Estimator
	Predictor
	Scorer
	LinearModel

	// Classes returns the two labels the classifier predicts, negative first.
	Classes() []float64
}

// ProbabilisticClassifier is a Classifier that also estimates class probabilities.
type ProbabilisticClassifier interface {
	Classifier

	// PredictProba returns an n×2 matrix [P(negative), P(positive)].
	PredictProba(X mat.Matrix) (mat.Matrix, error)
}

// ParameterGetter is the interface for models that expose their parameters.
type ParameterGetter interface {
	// GetParams returns the model's hyperparameters.
	GetParams() map[string]interface{}
}
