package classify

// Option configures an SGD classifier at construction time. Hyperparameters
// are immutable afterwards.
type Option func(*SGD)

// WithAlpha sets the learning rate.
func WithAlpha(alpha float64) Option {
	return func(c *SGD) {
		c.alpha = alpha
	}
}

// WithGamma sets the convergence threshold for early stopping. A gamma of
// zero disables early stopping entirely.
func WithGamma(gamma float64) Option {
	return func(c *SGD) {
		c.gamma = gamma
	}
}

// WithBias sets the bias input each document implicitly carries. A bias of
// zero removes the bias term from every score.
func WithBias(bias float64) Option {
	return func(c *SGD) {
		c.bias = bias
	}
}

// WithLambda sets the L2 regularization constant.
func WithLambda(lambda float64) Option {
	return func(c *SGD) {
		c.lambda = lambda
	}
}

// WithMaxIter sets the maximum number of training epochs.
func WithMaxIter(maxIter int) Option {
	return func(c *SGD) {
		c.maxIter = maxIter
	}
}

// WithConvergenceMetric selects the per-epoch aggregate compared against
// gamma.
func WithConvergenceMetric(metric ConvergenceMetric) Option {
	return func(c *SGD) {
		c.metric = metric
	}
}
