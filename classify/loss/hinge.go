package loss

// Hinge is the standard SVM hinge loss: zero beyond the unit margin,
// linear inside it.
type Hinge struct{}

// Loss returns max(0, 1 - prediction*expected).
func (Hinge) Loss(prediction, expected float64) float64 {
	z := prediction * expected
	if z < 1 {
		return 1 - z
	}
	return 0
}

// Derivative returns the step direction for the hinge loss.
func (Hinge) Derivative(prediction, expected float64) float64 {
	if prediction*expected < 1 {
		return expected
	}
	return 0
}

// SmoothedHinge is a once-differentiable hinge variant: quadratic inside
// the margin, linear for strongly misclassified points.
type SmoothedHinge struct{}

// Loss returns the smoothed hinge loss.
func (SmoothedHinge) Loss(prediction, expected float64) float64 {
	z := prediction * expected
	switch {
	case z >= 1:
		return 0
	case z <= 0:
		return 0.5 - z
	default:
		d := 1 - z
		return 0.5 * d * d
	}
}

// Derivative returns the step direction for the smoothed hinge loss.
func (SmoothedHinge) Derivative(prediction, expected float64) float64 {
	z := prediction * expected
	switch {
	case z >= 1:
		return 0
	case z <= 0:
		return expected
	default:
		return expected * (1 - z)
	}
}

// SquaredHinge penalizes margin violations quadratically.
type SquaredHinge struct{}

// Loss returns 0.5 * max(0, 1 - prediction*expected)^2.
func (SquaredHinge) Loss(prediction, expected float64) float64 {
	z := prediction * expected
	if z < 1 {
		d := 1 - z
		return 0.5 * d * d
	}
	return 0
}

// Derivative returns the step direction for the squared hinge loss.
func (SquaredHinge) Derivative(prediction, expected float64) float64 {
	z := prediction * expected
	if z < 1 {
		return expected * (1 - z)
	}
	return 0
}
