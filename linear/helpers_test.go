package linear

import (
	"os"
	"testing"

	"github.com/YuminosukeSato/neptunelearn/pkg/log"
	"gonum.org/v1/gonum/mat"
)

// planeData returns y = 2*x1 + 3*x2 + small fixed noise on 10 samples in [0,1].
func planeData() (*mat.Dense, *mat.Dense) {
	x1 := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0}
	x2 := []float64{0.7, 0.4, 0.1, 0.8, 0.5, 0.2, 0.9, 0.6, 0.3, 1.0}
	noise := []float64{0.01, -0.02, 0.015, -0.005, 0, 0.02, -0.01, 0.005, -0.015, 0.01}

	X := mat.NewDense(10, 2, nil)
	y := mat.NewDense(10, 1, nil)
	for i := range x1 {
		X.Set(i, 0, x1[i])
		X.Set(i, 1, x2[i])
		y.Set(i, 0, 2*x1[i]+3*x2[i]+noise[i])
	}
	return X, y
}

// captureWarnings routes errors.Warn into a TestLogger for the test's duration.
func captureWarnings(t *testing.T) *log.TestLogger {
	t.Helper()
	provider, _ := log.NewTestLoggerProvider(log.LevelDebug)
	log.SetProvider(provider)
	t.Cleanup(func() {
		log.SetProvider(log.NewZerologProvider(os.Stderr, log.LevelWarn))
	})
	return provider.GetLogger().(*log.TestLogger)
}
