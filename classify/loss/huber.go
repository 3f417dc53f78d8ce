package loss

import "math"

// DefaultHuberDelta is the transition point between the quadratic and
// linear regimes of the Huber loss.
const DefaultHuberDelta = 1.0

// Huber treats the margin as a regression target against the ±1 label:
// quadratic for small residuals, linear beyond Delta. It is robust to
// outliers compared to least squares.
type Huber struct {
	Delta float64
}

// NewHuber creates a Huber loss with the given transition point.
func NewHuber(delta float64) Huber {
	return Huber{Delta: delta}
}

// Loss returns the Huber loss of the residual prediction - expected.
func (h Huber) Loss(prediction, expected float64) float64 {
	diff := prediction - expected
	abs := math.Abs(diff)
	if abs <= h.Delta {
		return 0.5 * diff * diff
	}
	return h.Delta * (abs - 0.5*h.Delta)
}

// Derivative returns the step direction for the Huber loss.
func (h Huber) Derivative(prediction, expected float64) float64 {
	diff := prediction - expected
	if math.Abs(diff) <= h.Delta {
		return -diff
	}
	if diff > 0 {
		return -h.Delta
	}
	return h.Delta
}

// ModifiedHuber is the classification variant: quadratic inside the unit
// margin, linear for points misclassified beyond it. Its probability
// estimates are well calibrated, which is why scikit-learn pairs it with
// predict_proba.
type ModifiedHuber struct{}

// Loss returns the modified Huber loss.
func (ModifiedHuber) Loss(prediction, expected float64) float64 {
	z := prediction * expected
	switch {
	case z >= 1:
		return 0
	case z >= -1:
		d := 1 - z
		return d * d
	default:
		return -4 * z
	}
}

// Derivative returns the step direction for the modified Huber loss.
func (ModifiedHuber) Derivative(prediction, expected float64) float64 {
	z := prediction * expected
	switch {
	case z >= 1:
		return 0
	case z >= -1:
		return 2 * expected * (1 - z)
	default:
		return 4 * expected
	}
}
