// Package metrics provides evaluation metrics for classification results.
//
// All functions operate on parallel slices of ground-truth and predicted
// class labels, the shape produced by running a classifier over a held-out
// document set.
package metrics

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/lintext/textclass/index"
	scierrors "github.com/lintext/textclass/pkg/errors"
)

func validate(op string, yTrue, yPred []index.ClassLabel) error {
	if len(yTrue) == 0 {
		return scierrors.NewValueError(op, "input slices cannot be empty")
	}
	if len(yTrue) != len(yPred) {
		return scierrors.Newf("classify: %s: length mismatch: %d true labels, %d predictions",
			op, len(yTrue), len(yPred))
	}
	return nil
}

// Accuracy returns the fraction of predictions matching the ground truth.
func Accuracy(yTrue, yPred []index.ClassLabel) (float64, error) {
	if err := validate("Accuracy", yTrue, yPred); err != nil {
		return 0, err
	}

	correct := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(yTrue)), nil
}

// Precision returns the fraction of documents predicted as label that truly
// carry it. When the label is never predicted, precision is defined as 0.
func Precision(yTrue, yPred []index.ClassLabel, label index.ClassLabel) (float64, error) {
	if err := validate("Precision", yTrue, yPred); err != nil {
		return 0, err
	}

	var tp, fp float64
	for i := range yPred {
		if yPred[i] != label {
			continue
		}
		if yTrue[i] == label {
			tp++
		} else {
			fp++
		}
	}
	if tp+fp == 0 {
		return 0, nil
	}
	return tp / (tp + fp), nil
}

// Recall returns the fraction of documents truly carrying label that were
// predicted as it. When the label never occurs in the ground truth, recall
// is defined as 0.
func Recall(yTrue, yPred []index.ClassLabel, label index.ClassLabel) (float64, error) {
	if err := validate("Recall", yTrue, yPred); err != nil {
		return 0, err
	}

	var tp, fn float64
	for i := range yTrue {
		if yTrue[i] != label {
			continue
		}
		if yPred[i] == label {
			tp++
		} else {
			fn++
		}
	}
	if tp+fn == 0 {
		return 0, nil
	}
	return tp / (tp + fn), nil
}

// F1Score returns the harmonic mean of precision and recall for the label,
// or 0 when both are 0.
func F1Score(yTrue, yPred []index.ClassLabel, label index.ClassLabel) (float64, error) {
	precision, err := Precision(yTrue, yPred, label)
	if err != nil {
		return 0, err
	}
	recall, err := Recall(yTrue, yPred, label)
	if err != nil {
		return 0, err
	}

	if precision+recall == 0 {
		return 0, nil
	}
	return 2 * precision * recall / (precision + recall), nil
}

// ConfusionMatrix returns the confusion matrix of the predictions and the
// label ordering of its axes. Entry (i, j) counts documents with true label
// labels[i] predicted as labels[j]. Labels are the union of those appearing
// in either slice, sorted.
func ConfusionMatrix(yTrue, yPred []index.ClassLabel) (*mat.Dense, []index.ClassLabel, error) {
	if err := validate("ConfusionMatrix", yTrue, yPred); err != nil {
		return nil, nil, err
	}

	seen := make(map[index.ClassLabel]bool)
	for i := range yTrue {
		seen[yTrue[i]] = true
		seen[yPred[i]] = true
	}

	labels := make([]index.ClassLabel, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })

	pos := make(map[index.ClassLabel]int, len(labels))
	for i, label := range labels {
		pos[label] = i
	}

	cm := mat.NewDense(len(labels), len(labels), nil)
	for i := range yTrue {
		r, c := pos[yTrue[i]], pos[yPred[i]]
		cm.Set(r, c, cm.At(r, c)+1)
	}
	return cm, labels, nil
}
