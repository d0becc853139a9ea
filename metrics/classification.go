package metrics

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/neptunelearn/pkg/errors"
)

// Accuracy は予測ラベルが正解ラベルと完全一致した割合を返す
func Accuracy(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := checkPair("Accuracy", yTrue, yPred)
	if err != nil {
		return 0, err
	}
	correct := 0
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == yPred.AtVec(i) {
			correct++
		}
	}
	return float64(correct) / float64(n), nil
}

// AccuracyMatrix は n×1 行列の入力に対してAccuracyを計算する
func AccuracyMatrix(yTrue, yPred mat.Matrix) (float64, error) {
	t, err := ColumnVec("AccuracyMatrix", yTrue)
	if err != nil {
		return 0, err
	}
	p, err := ColumnVec("AccuracyMatrix", yPred)
	if err != nil {
		return 0, err
	}
	return Accuracy(t, p)
}

// Misclassified は予測ラベルが一致しなかったサンプル数を返す
func Misclassified(yTrue, yPred *mat.VecDense) (int, error) {
	n, err := checkPair("Misclassified", yTrue, yPred)
	if err != nil {
		return 0, err
	}
	miss := 0
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) != yPred.AtVec(i) {
			miss++
		}
	}
	return miss, nil
}

// BinaryLogLoss は {0,1} ラベルに対する平均負の対数尤度を計算する。
// 確率は log(0) を避けるため StabilizeLog で下限を設ける。
func BinaryLogLoss(yTrue, yProba *mat.VecDense) (float64, error) {
	n, err := checkPair("BinaryLogLoss", yTrue, yProba)
	if err != nil {
		return 0, err
	}
	var sum float64
	for i := 0; i < n; i++ {
		y := yTrue.AtVec(i)
		if y != 0 && y != 1 {
			return 0, errors.NewValueError("BinaryLogLoss", "labels must be 0 or 1")
		}
		p := yProba.AtVec(i)
		sum -= y*errors.StabilizeLog(p) + (1-y)*errors.StabilizeLog(1-p)
	}
	return sum / float64(n), nil
}
