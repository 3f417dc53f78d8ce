package classify

import (
	"github.com/lintext/textclass/classify/loss"
	"github.com/lintext/textclass/index"
	scierrors "github.com/lintext/textclass/pkg/errors"
)

// Config is a key-value settings map, the shape configuration files parse
// into. Numeric values may arrive as int or float64 depending on the
// decoder; the typed getters accept both.
type Config map[string]interface{}

// Float returns the float value stored under key, or def when absent.
func (c Config) Float(key string, def float64) (float64, error) {
	v, ok := c[key]
	if !ok {
		return def, nil
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, scierrors.NewValidationError(key, "expected a number", v)
	}
}

// Int returns the integer value stored under key, or def when absent.
func (c Config) Int(key string, def int) (int, error) {
	v, ok := c[key]
	if !ok {
		return def, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	default:
		return 0, scierrors.NewValidationError(key, "expected an integer", v)
	}
}

// String returns the string value stored under key, or def when absent.
func (c Config) String(key string, def string) (string, error) {
	v, ok := c[key]
	if !ok {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", scierrors.NewValidationError(key, "expected a string", v)
	}
	return s, nil
}

// NewFromConfig builds a binary SGD classifier from key-value settings.
// Recognized options, each optional:
//
//	alpha     learning rate            (default 0.001)
//	gamma     convergence threshold    (default 1e-6)
//	bias      bias input               (default 1)
//	lambda    L2 constant              (default 0.0001)
//	max-iter  maximum epochs           (default 50)
//	loss      loss function id         (default "hinge")
func NewFromConfig(cfg Config, idx index.ForwardIndex, positive, negative index.ClassLabel) (*SGD, error) {
	alpha, err := cfg.Float("alpha", DefaultAlpha)
	if err != nil {
		return nil, err
	}
	gamma, err := cfg.Float("gamma", DefaultGamma)
	if err != nil {
		return nil, err
	}
	bias, err := cfg.Float("bias", DefaultBias)
	if err != nil {
		return nil, err
	}
	lambda, err := cfg.Float("lambda", DefaultLambda)
	if err != nil {
		return nil, err
	}
	maxIter, err := cfg.Int("max-iter", DefaultMaxIter)
	if err != nil {
		return nil, err
	}
	lossID, err := cfg.String("loss", loss.HingeID)
	if err != nil {
		return nil, err
	}

	lossFn, err := loss.New(lossID)
	if err != nil {
		return nil, err
	}

	return NewSGD(idx, positive, negative, lossFn,
		WithAlpha(alpha),
		WithGamma(gamma),
		WithBias(bias),
		WithLambda(lambda),
		WithMaxIter(maxIter),
	)
}
