package model

import "gonum.org/v1/gonum/mat"

// Fitter は学習可能なモデルのインターフェース
type Fitter interface {
	// Fit はモデルを訓練データで学習させる。呼び出すたびに重みと履歴はリセットされる
	Fit(X, y mat.Matrix) error
}

// Predictor は予測可能なモデルのインターフェース
type Predictor interface {
	// Predict は入力データに対する予測を n×1 の行列で返す
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Estimator は学習済み状態を持つモデルのインターフェース
type Estimator interface {
	Fitter
	// IsFitted はFitが成功済みかどうかを返す
	IsFitted() bool
}

// Transformer はデータ変換のインターフェース
type Transformer interface {
	// Fit は変換に必要なパラメータを学習する
	Fit(X mat.Matrix) error

	// Transform はデータを変換する
	Transform(X mat.Matrix) (mat.Matrix, error)

	// FitTransform はFitとTransformを同時に実行する
	FitTransform(X mat.Matrix) (mat.Matrix, error)
}

// LinearModel は重みベクトルと学習履歴を公開する線形モデルのインターフェース
type LinearModel interface {
	// Thetas は学習された重みのコピーを返す（バイアス列がある場合は先頭がバイアス）
	Thetas() ([]float64, error)
	// History はイテレーションごとの診断値（誤分類数またはコスト）を返す
	History() *History
}
