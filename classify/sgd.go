// Package classify implements online linear classifiers over sparse
// document vectors.
//
// The core is SGD, a binary linear classifier trained by stochastic
// gradient descent with L2 regularization and a pluggable loss function.
// OneVsAll and AllVsAll compose independent SGD instances into multiclass
// classifiers. Documents are resolved through an index.ForwardIndex; the
// classifiers never load or normalize a corpus themselves.
package classify

import (
	"math"

	"github.com/lintext/textclass/classify/loss"
	"github.com/lintext/textclass/core/model"
	"github.com/lintext/textclass/index"
	scierrors "github.com/lintext/textclass/pkg/errors"
	"github.com/lintext/textclass/pkg/log"
)

// Default hyperparameters.
const (
	DefaultAlpha   = 0.001  // learning rate
	DefaultGamma   = 1e-6   // convergence threshold
	DefaultBias    = 1.0    // bias input
	DefaultLambda  = 0.0001 // L2 regularization constant
	DefaultMaxIter = 50     // maximum training epochs
)

// minScale is the floor below which the lazy scaling coefficient is folded
// back into the stored weights to avoid numeric underflow.
const minScale = 1e-9

// ConvergenceMetric selects the per-epoch aggregate compared against gamma
// for early stopping.
type ConvergenceMetric int

const (
	// MeanLoss stops when the mean per-document loss changes by less
	// than gamma between epochs. This is the default.
	MeanLoss ConvergenceMetric = iota

	// MeanUpdate stops when the mean absolute update step |alpha * d|
	// changes by less than gamma between epochs.
	MeanUpdate
)

// SGD is a binary linear classifier trained by stochastic gradient descent.
//
// The logical weight of feature i is coeff * weights[i]: L2 shrinkage is
// applied lazily through the scalar coefficient in O(1) per step instead of
// rescaling every stored weight. The bias term is trained by the same
// gradient rule but never decayed by the coefficient.
//
// An SGD instance is not safe for concurrent use; Train, Predict, and Reset
// must be serialized by the caller. Independent instances share no state
// and may run in parallel.
type SGD struct {
	idx      index.ForwardIndex
	positive index.ClassLabel
	negative index.ClassLabel
	loss     loss.Function

	alpha   float64
	gamma   float64
	bias    float64
	lambda  float64
	maxIter int
	metric  ConvergenceMetric

	weights    []float64
	coeff      float64
	biasWeight float64

	nIter     int
	converged bool

	state  *model.StateManager
	logger log.Logger
}

// NewSGD creates a binary SGD classifier over the given index. Documents
// labeled positive train toward +1; every other label trains toward -1.
// The classifier takes sole ownership of the loss function.
//
// Construction fails if lossFn is nil or if options set a non-positive
// maximum epoch count.
func NewSGD(idx index.ForwardIndex, positive, negative index.ClassLabel, lossFn loss.Function, opts ...Option) (*SGD, error) {
	if lossFn == nil {
		return nil, scierrors.NewValidationError("loss", "loss function is required", nil)
	}

	c := &SGD{
		idx:      idx,
		positive: positive,
		negative: negative,
		loss:     lossFn,
		alpha:    DefaultAlpha,
		gamma:    DefaultGamma,
		bias:     DefaultBias,
		lambda:   DefaultLambda,
		maxIter:  DefaultMaxIter,
		metric:   MeanLoss,
		coeff:    1.0,
		state:    model.NewStateManager(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.maxIter <= 0 {
		return nil, scierrors.NewValidationError("max-iter", "must be positive", c.maxIter)
	}

	c.logger = log.GetLoggerWithName("classify").With(
		log.ModelNameKey, "SGD",
		log.ClassKey, string(positive),
	)

	return c, nil
}

// Train runs SGD over the given documents for up to the configured number
// of epochs, stopping early once the epoch aggregate changes by less than
// gamma. Documents are visited in the order given; callers wanting a
// shuffled pass shuffle the ids themselves.
//
// Training accumulates onto the current weights, so repeated calls refine
// the same model. A failed document lookup aborts training at that point
// and leaves the partially updated weights in place.
func (c *SGD) Train(docs []index.DocID) (err error) {
	defer scierrors.Recover(&err, "SGD.Train")

	c.converged = false
	if len(docs) == 0 {
		c.state.SetTrained()
		return nil
	}

	prev := math.Inf(1)
	for iter := 0; iter < c.maxIter; iter++ {
		var epochLoss, epochUpdate float64

		for _, id := range docs {
			vec, err := c.idx.DocVector(id)
			if err != nil {
				return scierrors.NewLookupError("SGD.Train", uint64(id), err)
			}
			label, err := c.idx.Label(id)
			if err != nil {
				return scierrors.NewLookupError("SGD.Train", uint64(id), err)
			}

			expected := -1.0
			if label == c.positive {
				expected = 1.0
			}

			prediction := c.PredictVector(vec)
			epochLoss += c.loss.Loss(prediction, expected)

			d := c.loss.Derivative(prediction, expected)
			step := c.alpha * d
			epochUpdate += math.Abs(step)

			if step != 0 {
				// Dividing by coeff undoes the pending lazy scaling
				// so the update lands on the unscaled stored weight.
				c.grow(vec)
				for _, cnt := range vec {
					c.weights[cnt.Term] += step / c.coeff * cnt.Weight
				}
				c.biasWeight += step * c.bias
			}

			c.coeff *= 1 - c.alpha*c.lambda
			if c.coeff < minScale {
				c.rescale()
			}
		}

		c.nIter++

		measure := epochLoss / float64(len(docs))
		if c.metric == MeanUpdate {
			measure = epochUpdate / float64(len(docs))
		}

		c.logger.Debug("epoch finished",
			log.OperationKey, log.OperationTrain,
			log.IterationKey, c.nIter,
			log.SamplesKey, len(docs),
			log.LossKey, epochLoss/float64(len(docs)),
		)

		if math.Abs(measure-prev) < c.gamma {
			c.converged = true
			break
		}
		prev = measure
	}

	if !c.converged {
		scierrors.Warn(scierrors.NewConvergenceWarning("SGD", c.nIter, ""))
	}

	c.state.SetTrained()
	return nil
}

// Predict resolves the document through the index and returns its raw
// score. No thresholding is applied; see Classify for the binary decision.
func (c *SGD) Predict(id index.DocID) (float64, error) {
	vec, err := c.idx.DocVector(id)
	if err != nil {
		return 0, scierrors.NewLookupError("SGD.Predict", uint64(id), err)
	}
	return c.PredictVector(vec), nil
}

// PredictVector returns the raw score coeff * <weights, vec> + bias weight
// contribution. It is the fast path for callers that already hold the
// sparse vector and is numerically identical to Predict on the same
// document. An untrained classifier scores every document 0.
func (c *SGD) PredictVector(vec index.Vector) float64 {
	return c.coeff*vec.Dot(c.weights) + c.bias*c.biasWeight
}

// Classify maps the raw score of a document to the positive or negative
// label by its sign.
func (c *SGD) Classify(id index.DocID) (index.ClassLabel, error) {
	score, err := c.Predict(id)
	if err != nil {
		return "", err
	}
	if score >= 0 {
		return c.positive, nil
	}
	return c.negative, nil
}

// Reset clears all learned state so the classifier can be trained from
// scratch. Hyperparameters, the label pair, and the loss function are kept.
func (c *SGD) Reset() {
	c.weights = nil
	c.coeff = 1.0
	c.biasWeight = 0
	c.nIter = 0
	c.converged = false
	c.state.Reset()

	c.logger.Debug("model reset", log.OperationKey, log.OperationReset)
}

// Converged reports whether the last Train call stopped early by meeting
// the gamma threshold.
func (c *SGD) Converged() bool {
	return c.converged
}

// NIterations returns the total number of training epochs executed since
// construction or the last Reset.
func (c *SGD) NIterations() int {
	return c.nIter
}

// IsTrained reports whether Train has been called since construction or
// the last Reset. Predict is valid either way; an untrained model just
// scores everything 0.
func (c *SGD) IsTrained() bool {
	return c.state.IsTrained()
}

// Labels returns the positive and negative label pair.
func (c *SGD) Labels() (positive, negative index.ClassLabel) {
	return c.positive, c.negative
}

// GetParams returns the hyperparameters.
func (c *SGD) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"alpha":    c.alpha,
		"gamma":    c.gamma,
		"bias":     c.bias,
		"lambda":   c.lambda,
		"max-iter": c.maxIter,
		"positive": string(c.positive),
		"negative": string(c.negative),
	}
}

// grow extends the weight slice to cover every term in the vector.
func (c *SGD) grow(vec index.Vector) {
	max, ok := vec.MaxTerm()
	if !ok {
		return
	}
	if n := int(max) + 1; n > len(c.weights) {
		c.weights = append(c.weights, make([]float64, n-len(c.weights))...)
	}
}

// rescale folds the lazy scaling coefficient into the stored weights. It is
// a no-op on the logical weights and exists only to keep the coefficient
// away from floating-point underflow during long training runs.
func (c *SGD) rescale() {
	for i := range c.weights {
		c.weights[i] *= c.coeff
	}
	c.coeff = 1.0
}
