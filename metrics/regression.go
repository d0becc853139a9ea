package metrics

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/neptunelearn/pkg/errors"
)

func vecLen(v *mat.VecDense) int {
	if v == nil {
		return 0
	}
	return v.Len()
}

// checkPair validates that both vectors are non-empty and of equal length.
func checkPair(op string, yTrue, yPred *mat.VecDense) (int, error) {
	n := vecLen(yTrue)
	if n == 0 {
		return 0, errors.NewValueError(op, "empty vector")
	}
	if vecLen(yPred) != n {
		return 0, errors.NewDimensionError(op, n, vecLen(yPred), 0)
	}
	return n, nil
}

// ColumnVec copies the single column of an n×1 matrix into a VecDense.
func ColumnVec(op string, y mat.Matrix) (*mat.VecDense, error) {
	if y == nil {
		return nil, errors.NewValueError(op, "nil target")
	}
	r, c := y.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewValueError(op, "empty matrix")
	}
	if c != 1 {
		return nil, errors.NewValueError(op, "must be a column vector (n×1 matrix)")
	}
	return mat.NewVecDense(r, mat.Col(nil, 0, y)), nil
}

// MSE は平均二乗誤差（Mean Squared Error）を計算する
func MSE(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := checkPair("MSE", yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return SumSquaredError(yTrue, yPred) / float64(n), nil
}

// SumSquaredError は Σ(yTrue - yPred)² を返す。長さの検証は呼び出し側の責任。
func SumSquaredError(yTrue, yPred *mat.VecDense) float64 {
	var diff mat.VecDense
	diff.SubVec(yTrue, yPred)
	return mat.Dot(&diff, &diff)
}

// MSEMatrix は n×1 行列の入力に対してMSEを計算する
func MSEMatrix(yTrue, yPred mat.Matrix) (float64, error) {
	t, err := ColumnVec("MSEMatrix", yTrue)
	if err != nil {
		return 0, err
	}
	p, err := ColumnVec("MSEMatrix", yPred)
	if err != nil {
		return 0, err
	}
	return MSE(t, p)
}

// R2Score は決定係数（R²）を計算する
func R2Score(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := checkPair("R2Score", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	truth := mat.Col(nil, 0, yTrue)
	yMean := stat.Mean(truth, nil)

	var tss float64
	for i := 0; i < n; i++ {
		d := truth[i] - yMean
		tss += d * d
	}
	// 全変動が0の場合（すべてのyTrueが同じ値）
	if tss == 0 {
		return 0, errors.Newf("R2Score: total sum of squares is zero (no variance in yTrue)")
	}

	return 1 - SumSquaredError(yTrue, yPred)/tss, nil
}

// R2ScoreMatrix は n×1 行列の入力に対してR²を計算する
func R2ScoreMatrix(yTrue, yPred mat.Matrix) (float64, error) {
	t, err := ColumnVec("R2ScoreMatrix", yTrue)
	if err != nil {
		return 0, err
	}
	p, err := ColumnVec("R2ScoreMatrix", yPred)
	if err != nil {
		return 0, err
	}
	return R2Score(t, p)
}
