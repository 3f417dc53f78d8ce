package loss

import "math"

// Logistic is the log loss used by logistic regression.
type Logistic struct{}

// Loss returns log(1 + exp(-prediction*expected)), computed in the
// numerically stable branch for either sign of the margin.
func (Logistic) Loss(prediction, expected float64) float64 {
	z := prediction * expected
	if z > 0 {
		return math.Log1p(math.Exp(-z))
	}
	return -z + math.Log1p(math.Exp(z))
}

// Derivative returns the step direction for the log loss:
// expected * sigmoid(-prediction*expected).
func (Logistic) Derivative(prediction, expected float64) float64 {
	return expected / (1 + math.Exp(prediction*expected))
}

// Perceptron is the classic perceptron criterion: a fixed-size step for
// every misclassified document, nothing otherwise.
type Perceptron struct{}

// Loss returns max(0, -prediction*expected).
func (Perceptron) Loss(prediction, expected float64) float64 {
	z := prediction * expected
	if z < 0 {
		return -z
	}
	return 0
}

// Derivative returns the step direction for the perceptron criterion.
func (Perceptron) Derivative(prediction, expected float64) float64 {
	if prediction*expected <= 0 {
		return expected
	}
	return 0
}

// LeastSquares fits the margin directly to the ±1 label.
type LeastSquares struct{}

// Loss returns 0.5 * (prediction - expected)^2.
func (LeastSquares) Loss(prediction, expected float64) float64 {
	diff := prediction - expected
	return 0.5 * diff * diff
}

// Derivative returns the step direction for the squared error.
func (LeastSquares) Derivative(prediction, expected float64) float64 {
	return expected - prediction
}
