// Package loss provides the loss functions that drive SGD weight updates.
//
// A loss function is a pure function of the predicted margin and the
// expected ±1 label. Derivative returns the step direction directly (the
// negated partial derivative of the loss with respect to the margin), so
// the trainer's update is always `w += (alpha/coeff) * d * x` regardless of
// which loss is plugged in.
package loss

import (
	scierrors "github.com/lintext/textclass/pkg/errors"
)

// Function is the contract between a loss and the SGD trainer.
type Function interface {
	// Loss returns the loss incurred by predicting the given margin when
	// the expected label is +1 or -1.
	Loss(prediction, expected float64) float64

	// Derivative returns the gradient scaling factor for the weight
	// update: positive values push the margin toward the expected label.
	Derivative(prediction, expected float64) float64
}

// Identifiers accepted by New.
const (
	HingeID         = "hinge"
	HuberID         = "huber"
	LeastSquaresID  = "least-squares"
	LogisticID      = "logistic"
	ModifiedHuberID = "modified-huber"
	PerceptronID    = "perceptron"
	SmoothedHingeID = "smoothed-hinge"
	SquaredHingeID  = "squared-hinge"
)

// New constructs a loss function by its string id. Unknown ids return
// ErrUnknownLoss.
func New(id string) (Function, error) {
	switch id {
	case HingeID:
		return Hinge{}, nil
	case HuberID:
		return NewHuber(DefaultHuberDelta), nil
	case LeastSquaresID:
		return LeastSquares{}, nil
	case LogisticID:
		return Logistic{}, nil
	case ModifiedHuberID:
		return ModifiedHuber{}, nil
	case PerceptronID:
		return Perceptron{}, nil
	case SmoothedHingeID:
		return SmoothedHinge{}, nil
	case SquaredHingeID:
		return SquaredHinge{}, nil
	default:
		return nil, scierrors.Wrapf(scierrors.ErrUnknownLoss, "loss id %q", id)
	}
}

// IDs returns the ids of every loss function New recognizes.
func IDs() []string {
	return []string{
		HingeID, HuberID, LeastSquaresID, LogisticID,
		ModifiedHuberID, PerceptronID, SmoothedHingeID, SquaredHingeID,
	}
}
