// Package log defines standard attribute keys for machine learning operations.
//
// Using the same keys everywhere keeps fit/predict logs filterable. Keys follow
// a hierarchical naming convention (e.g. "model.name", "data.samples").

package log

// Model and Operation Context
const (
	// ModelNameKey identifies the type of model.
	// Examples: "Perceptron", "Adaline", "LogisticRegression"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "transform", "score"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "linear.perceptron", "preprocessing.polynomial"
	ComponentKey = "ml.component"

	// PhaseKey indicates the phase of model lifecycle.
	PhaseKey = "ml.phase"
)

// Data Shape
const (
	// SamplesKey is the number of rows in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of raw feature columns.
	FeaturesKey = "data.features"

	// DesignColumnsKey is the number of columns after polynomial expansion
	// (including the bias column when enabled).
	DesignColumnsKey = "data.design_columns"
)

// Training and Performance
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// AccuracyKey records classification accuracy in [0, 1].
	AccuracyKey = "metrics.accuracy"

	// LossKey records the cost appended to the history for one iteration.
	LossKey = "metrics.loss"

	// MistakesKey records the Perceptron's misclassification count for one epoch.
	MistakesKey = "metrics.mistakes"

	// WeightDeltaKey records the L2 norm of the weight change over one epoch.
	WeightDeltaKey = "training.weight_delta"

	// IterationKey records the current iteration of a batch algorithm.
	IterationKey = "training.iteration"

	// EpochKey records the current epoch of an online algorithm.
	EpochKey = "training.epoch"

	// AlgorithmKey names the update rule driving a batch fit.
	AlgorithmKey = "training.algorithm"
)

// Error and Warning Context
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the type of error encountered.
	ErrorTypeKey = "error.type"

	// StacktraceKey carries the cockroachdb/errors stack trace of a logged error.
	StacktraceKey = "error.stacktrace"

	// SuggestionKey provides helpful suggestions for resolving issues.
	SuggestionKey = "error.suggestion"
)

// Hyperparameters
const (
	// HyperParamsKey contains model hyperparameters as a structured object.
	HyperParamsKey = "model.hyperparams"

	// LearningRateKey records eta for gradient-based algorithms.
	LearningRateKey = "hyperparams.learning_rate"

	// DegreeKey records the polynomial expansion degree.
	DegreeKey = "hyperparams.degree"

	// ToleranceKey records the convergence tolerance.
	ToleranceKey = "hyperparams.tol"
)

// Standard attribute values.
const (
	OperationFit       = "fit"
	OperationPredict   = "predict"
	OperationTransform = "transform"
	OperationScore     = "score"

	PhaseTraining      = "training"
	PhaseInference     = "inference"
	PhasePreprocessing = "preprocessing"

	ErrorNotFitted         = "NOT_FITTED"
	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorEmptyData         = "EMPTY_DATA"
	ErrorInvalidInput      = "INVALID_INPUT"
	ErrorConvergence       = "CONVERGENCE_FAILURE"
	ErrorSingularMatrix    = "SINGULAR_MATRIX"
)
