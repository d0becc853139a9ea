package linear

import (
	"github.com/YuminosukeSato/neptunelearn/pkg/errors"
	"github.com/YuminosukeSato/neptunelearn/pkg/log"
)

// Config holds the hyperparameters shared by every model in this package.
// Each model reads only the fields its algorithm uses; the rest are ignored.
type Config struct {
	// Degree is the polynomial expansion order applied to X (>= 1).
	Degree int
	// Bias prepends a constant-1 column to the design matrix.
	Bias bool
	// Tol is the Perceptron's convergence threshold on the weight change norm.
	Tol float64
	// Eta is the gradient-descent step size.
	Eta float64
	// NIter is the fixed iteration count of the batch algorithms.
	NIter int
	// MaxEpochs bounds the Perceptron's convergence loop.
	MaxEpochs int
	// Logger overrides the package logger. nil means log.GetLoggerWithName.
	Logger log.Logger
}

// DefaultConfig returns degree 1 with bias, tol 1e-6, eta 0.01, 50
// iterations and at most 1000 Perceptron epochs.
func DefaultConfig() Config {
	return Config{
		Degree:    1,
		Bias:      true,
		Tol:       1e-6,
		Eta:       0.01,
		NIter:     50,
		MaxEpochs: 1000,
	}
}

// Validate checks every hyperparameter and returns a ValidationError naming
// the first invalid one.
func (c Config) Validate() error {
	switch {
	case c.Degree < 1:
		return errors.NewValidationError("degree", "must be >= 1", c.Degree)
	case c.Tol < 0:
		return errors.NewValidationError("tol", "must be >= 0", c.Tol)
	case c.Eta <= 0:
		return errors.NewValidationError("eta", "must be > 0", c.Eta)
	case c.NIter < 1:
		return errors.NewValidationError("niter", "must be >= 1", c.NIter)
	case c.MaxEpochs < 1:
		return errors.NewValidationError("max_epochs", "must be >= 1", c.MaxEpochs)
	}
	return nil
}

// Params returns the hyperparameters as a map keyed by their snake_case names.
func (c Config) Params() map[string]interface{} {
	return map[string]interface{}{
		"degree":     c.Degree,
		"bias":       c.Bias,
		"tol":        c.Tol,
		"eta":        c.Eta,
		"niter":      c.NIter,
		"max_epochs": c.MaxEpochs,
	}
}

// Option is a function that configures a model's Config
type Option func(*Config)

func newConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithConfig replaces the whole configuration
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}

// WithDegree sets the polynomial expansion order
func WithDegree(degree int) Option {
	return func(c *Config) {
		c.Degree = degree
	}
}

// WithBias sets whether to prepend the constant column
func WithBias(bias bool) Option {
	return func(c *Config) {
		c.Bias = bias
	}
}

// WithTol sets the Perceptron convergence tolerance
func WithTol(tol float64) Option {
	return func(c *Config) {
		c.Tol = tol
	}
}

// WithEta sets the gradient-descent step size
func WithEta(eta float64) Option {
	return func(c *Config) {
		c.Eta = eta
	}
}

// WithNIter sets the fixed number of batch iterations
func WithNIter(n int) Option {
	return func(c *Config) {
		c.NIter = n
	}
}

// WithMaxEpochs bounds the Perceptron's epochs
func WithMaxEpochs(n int) Option {
	return func(c *Config) {
		c.MaxEpochs = n
	}
}

// WithLogger sets the logger used for fit progress
func WithLogger(logger log.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}
