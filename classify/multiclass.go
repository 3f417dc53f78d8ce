package classify

import (
	"sort"

	"github.com/lintext/textclass/core/model"
	"github.com/lintext/textclass/core/parallel"
	"github.com/lintext/textclass/index"
	scierrors "github.com/lintext/textclass/pkg/errors"
	"github.com/lintext/textclass/pkg/log"
)

// BinaryFactory builds a binary classifier for a label pair. Multiclass
// ensembles call it once per underlying classifier, so factories are the
// place to fix hyperparameters and the loss function, typically by closing
// over a Config:
//
//	factory := func(pos, neg index.ClassLabel) (*classify.SGD, error) {
//	    return classify.NewFromConfig(cfg, idx, pos, neg)
//	}
type BinaryFactory func(positive, negative index.ClassLabel) (*SGD, error)

// restLabel is the pseudo-label one-vs-all binaries use for "every other
// class". It never appears in ensemble output.
const restLabel index.ClassLabel = "rest"

// parallelThreshold is the ensemble size below which training runs
// sequentially instead of fanning out across workers.
const parallelThreshold = 1

// OneVsAll is a multiclass classifier composed of one binary SGD per class
// label, each trained to separate its label from all others. Classification
// picks the label whose classifier scores highest.
//
// The underlying classifiers share no state, so they are trained in
// parallel; the ensemble itself follows the same concurrency contract as
// SGD (one caller at a time).
type OneVsAll struct {
	idx         index.ForwardIndex
	order       []index.ClassLabel
	classifiers map[index.ClassLabel]*SGD

	state  *model.StateManager
	logger log.Logger
}

// NewOneVsAll creates a one-vs-all ensemble over the given class labels.
func NewOneVsAll(idx index.ForwardIndex, labels []index.ClassLabel, factory BinaryFactory) (*OneVsAll, error) {
	if len(labels) < 2 {
		return nil, scierrors.NewValidationError("labels", "at least two class labels are required", labels)
	}

	order := append([]index.ClassLabel(nil), labels...)
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	classifiers := make(map[index.ClassLabel]*SGD, len(order))
	for _, label := range order {
		if _, dup := classifiers[label]; dup {
			return nil, scierrors.NewValidationError("labels", "duplicate class label", label)
		}
		c, err := factory(label, restLabel)
		if err != nil {
			return nil, scierrors.Wrapf(err, "building classifier for label %q", label)
		}
		classifiers[label] = c
	}

	return &OneVsAll{
		idx:         idx,
		order:       order,
		classifiers: classifiers,
		state:       model.NewStateManager(),
		logger: log.GetLoggerWithName("classify").With(
			log.ModelNameKey, "OneVsAll",
		),
	}, nil
}

// Train trains every per-class classifier on the same document set. The
// classifiers are independent, so they train concurrently.
func (o *OneVsAll) Train(docs []index.DocID) error {
	errs := make([]error, len(o.order))
	parallel.ForEachWithThreshold(len(o.order), parallelThreshold, func(i int) {
		errs[i] = o.classifiers[o.order[i]].Train(docs)
	})

	for i, err := range errs {
		if err != nil {
			return scierrors.Wrapf(err, "training classifier for label %q", o.order[i])
		}
	}

	o.logger.Info("ensemble trained",
		log.OperationKey, log.OperationTrain,
		log.SamplesKey, len(docs),
		"classes", len(o.order),
	)

	o.state.SetTrained()
	return nil
}

// Scores returns the raw per-label scores for a document. The document is
// resolved once and scored through the sparse-vector fast path.
func (o *OneVsAll) Scores(id index.DocID) (map[index.ClassLabel]float64, error) {
	vec, err := o.idx.DocVector(id)
	if err != nil {
		return nil, scierrors.NewLookupError("OneVsAll.Scores", uint64(id), err)
	}

	scores := make(map[index.ClassLabel]float64, len(o.order))
	for _, label := range o.order {
		scores[label] = o.classifiers[label].PredictVector(vec)
	}
	return scores, nil
}

// Classify returns the label whose classifier assigns the document the
// highest raw score.
func (o *OneVsAll) Classify(id index.DocID) (index.ClassLabel, error) {
	if err := o.state.RequireTrained("OneVsAll", "Classify"); err != nil {
		return "", err
	}

	scores, err := o.Scores(id)
	if err != nil {
		return "", err
	}

	best := o.order[0]
	for _, label := range o.order[1:] {
		if scores[label] > scores[best] {
			best = label
		}
	}
	return best, nil
}

// Labels returns the class labels of the ensemble, sorted.
func (o *OneVsAll) Labels() []index.ClassLabel {
	return append([]index.ClassLabel(nil), o.order...)
}

// Reset resets every underlying classifier and the ensemble state.
func (o *OneVsAll) Reset() {
	for _, c := range o.classifiers {
		c.Reset()
	}
	o.state.Reset()
}

// labelPair is an ordered pair of distinct class labels, a < b.
type labelPair struct {
	a, b index.ClassLabel
}

// AllVsAll is a multiclass classifier composed of one binary SGD per
// unordered pair of class labels, each trained only on the documents of its
// two classes. Classification lets every pairwise classifier vote and picks
// the label with the most votes; ties go to the lexicographically smaller
// label for determinism.
type AllVsAll struct {
	idx         index.ForwardIndex
	order       []index.ClassLabel
	pairs       []labelPair
	classifiers map[labelPair]*SGD

	state  *model.StateManager
	logger log.Logger
}

// NewAllVsAll creates an all-vs-all ensemble over the given class labels.
func NewAllVsAll(idx index.ForwardIndex, labels []index.ClassLabel, factory BinaryFactory) (*AllVsAll, error) {
	if len(labels) < 2 {
		return nil, scierrors.NewValidationError("labels", "at least two class labels are required", labels)
	}

	order := append([]index.ClassLabel(nil), labels...)
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
	for i := 1; i < len(order); i++ {
		if order[i] == order[i-1] {
			return nil, scierrors.NewValidationError("labels", "duplicate class label", order[i])
		}
	}

	var pairs []labelPair
	classifiers := make(map[labelPair]*SGD)
	for i := 0; i < len(order); i++ {
		for j := i + 1; j < len(order); j++ {
			p := labelPair{a: order[i], b: order[j]}
			c, err := factory(p.a, p.b)
			if err != nil {
				return nil, scierrors.Wrapf(err, "building classifier for pair (%q, %q)", p.a, p.b)
			}
			pairs = append(pairs, p)
			classifiers[p] = c
		}
	}

	return &AllVsAll{
		idx:         idx,
		order:       order,
		pairs:       pairs,
		classifiers: classifiers,
		state:       model.NewStateManager(),
		logger: log.GetLoggerWithName("classify").With(
			log.ModelNameKey, "AllVsAll",
		),
	}, nil
}

// Train trains every pairwise classifier on the subset of documents labeled
// with one of its two classes. Label resolution happens once for the whole
// document set; the pairwise classifiers then train concurrently.
func (a *AllVsAll) Train(docs []index.DocID) error {
	labels := make([]index.ClassLabel, len(docs))
	for i, id := range docs {
		label, err := a.idx.Label(id)
		if err != nil {
			return scierrors.NewLookupError("AllVsAll.Train", uint64(id), err)
		}
		labels[i] = label
	}

	errs := make([]error, len(a.pairs))
	parallel.ForEachWithThreshold(len(a.pairs), parallelThreshold, func(i int) {
		p := a.pairs[i]
		var subset []index.DocID
		for j, id := range docs {
			if labels[j] == p.a || labels[j] == p.b {
				subset = append(subset, id)
			}
		}
		errs[i] = a.classifiers[p].Train(subset)
	})

	for i, err := range errs {
		if err != nil {
			p := a.pairs[i]
			return scierrors.Wrapf(err, "training classifier for pair (%q, %q)", p.a, p.b)
		}
	}

	a.logger.Info("ensemble trained",
		log.OperationKey, log.OperationTrain,
		log.SamplesKey, len(docs),
		"classes", len(a.order),
		"pairs", len(a.pairs),
	)

	a.state.SetTrained()
	return nil
}

// Classify returns the label that wins the most pairwise votes for the
// document.
func (a *AllVsAll) Classify(id index.DocID) (index.ClassLabel, error) {
	if err := a.state.RequireTrained("AllVsAll", "Classify"); err != nil {
		return "", err
	}

	vec, err := a.idx.DocVector(id)
	if err != nil {
		return "", scierrors.NewLookupError("AllVsAll.Classify", uint64(id), err)
	}

	votes := make(map[index.ClassLabel]int, len(a.order))
	for _, p := range a.pairs {
		if a.classifiers[p].PredictVector(vec) >= 0 {
			votes[p.a]++
		} else {
			votes[p.b]++
		}
	}

	best := a.order[0]
	for _, label := range a.order[1:] {
		if votes[label] > votes[best] {
			best = label
		}
	}
	return best, nil
}

// Labels returns the class labels of the ensemble, sorted.
func (a *AllVsAll) Labels() []index.ClassLabel {
	return append([]index.ClassLabel(nil), a.order...)
}

// Reset resets every underlying classifier and the ensemble state.
func (a *AllVsAll) Reset() {
	for _, c := range a.classifiers {
		c.Reset()
	}
	a.state.Reset()
}
