// Standard attribute keys for classifier operations. Using these keys
// everywhere keeps log output filterable by model, operation, and metric.

package log

// Model and operation context.
const (
	// ModelNameKey identifies the model type.
	// Examples: "SGD", "OneVsAll", "AllVsAll"
	ModelNameKey = "model.name"

	// OperationKey names the operation being performed.
	// Standard values: "train", "predict", "classify", "reset"
	OperationKey = "ml.operation"

	// ComponentKey identifies the package performing the operation.
	// Examples: "classify", "index", "metrics"
	ComponentKey = "ml.component"
)

// Data characteristics.
const (
	// SamplesKey is the number of training documents in the call.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of distinct features seen so far.
	FeaturesKey = "data.features"

	// ClassKey is the class label a model or event refers to.
	ClassKey = "data.class"
)

// Training progress and metrics.
const (
	// IterationKey is the current epoch during iterative training.
	IterationKey = "training.iteration"

	// LossKey is the aggregate loss for an epoch or evaluation.
	LossKey = "metrics.loss"

	// AccuracyKey is classification accuracy in [0, 1].
	AccuracyKey = "metrics.accuracy"

	// DurationMsKey is operation wall time in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Standard operation values.
const (
	OperationTrain    = "train"
	OperationPredict  = "predict"
	OperationClassify = "classify"
	OperationReset    = "reset"
)
