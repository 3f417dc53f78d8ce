package metrics

import (
	"math"
	"testing"

	"github.com/lintext/textclass/index"
)

var (
	yTrue = []index.ClassLabel{"spam", "spam", "ham", "ham", "spam", "ham"}
	yPred = []index.ClassLabel{"spam", "ham", "ham", "ham", "spam", "spam"}
)

func TestAccuracy(t *testing.T) {
	got, err := Accuracy(yTrue, yPred)
	if err != nil {
		t.Fatalf("Accuracy() error = %v", err)
	}
	want := 4.0 / 6.0
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Accuracy() = %v, want %v", got, want)
	}
}

func TestPrecisionRecallF1(t *testing.T) {
	tests := []struct {
		label         index.ClassLabel
		wantPrecision float64
		wantRecall    float64
	}{
		// spam: predicted 3 times, 2 correct; 3 true spam, 2 found
		{"spam", 2.0 / 3.0, 2.0 / 3.0},
		// ham: predicted 3 times, 2 correct; 3 true ham, 2 found
		{"ham", 2.0 / 3.0, 2.0 / 3.0},
	}

	for _, tt := range tests {
		t.Run(string(tt.label), func(t *testing.T) {
			precision, err := Precision(yTrue, yPred, tt.label)
			if err != nil {
				t.Fatalf("Precision() error = %v", err)
			}
			if math.Abs(precision-tt.wantPrecision) > 1e-12 {
				t.Errorf("Precision() = %v, want %v", precision, tt.wantPrecision)
			}

			recall, err := Recall(yTrue, yPred, tt.label)
			if err != nil {
				t.Fatalf("Recall() error = %v", err)
			}
			if math.Abs(recall-tt.wantRecall) > 1e-12 {
				t.Errorf("Recall() = %v, want %v", recall, tt.wantRecall)
			}

			f1, err := F1Score(yTrue, yPred, tt.label)
			if err != nil {
				t.Fatalf("F1Score() error = %v", err)
			}
			wantF1 := 2 * tt.wantPrecision * tt.wantRecall / (tt.wantPrecision + tt.wantRecall)
			if math.Abs(f1-wantF1) > 1e-12 {
				t.Errorf("F1Score() = %v, want %v", f1, wantF1)
			}
		})
	}
}

func TestUndefinedMetrics(t *testing.T) {
	// "other" is never predicted and never true
	precision, err := Precision(yTrue, yPred, "other")
	if err != nil || precision != 0 {
		t.Errorf("Precision(other) = %v, %v; want 0, nil", precision, err)
	}
	recall, err := Recall(yTrue, yPred, "other")
	if err != nil || recall != 0 {
		t.Errorf("Recall(other) = %v, %v; want 0, nil", recall, err)
	}
	f1, err := F1Score(yTrue, yPred, "other")
	if err != nil || f1 != 0 {
		t.Errorf("F1Score(other) = %v, %v; want 0, nil", f1, err)
	}
}

func TestConfusionMatrix(t *testing.T) {
	cm, labels, err := ConfusionMatrix(yTrue, yPred)
	if err != nil {
		t.Fatalf("ConfusionMatrix() error = %v", err)
	}

	if len(labels) != 2 || labels[0] != "ham" || labels[1] != "spam" {
		t.Fatalf("labels = %v, want [ham spam]", labels)
	}

	want := [][]float64{
		{2, 1}, // true ham: 2 as ham, 1 as spam
		{1, 2}, // true spam: 1 as ham, 2 as spam
	}
	for i := range want {
		for j := range want[i] {
			if cm.At(i, j) != want[i][j] {
				t.Errorf("cm[%d][%d] = %v, want %v", i, j, cm.At(i, j), want[i][j])
			}
		}
	}
}

func TestValidationErrors(t *testing.T) {
	if _, err := Accuracy(nil, nil); err == nil {
		t.Error("Accuracy() on empty input should fail")
	}
	if _, err := Accuracy(yTrue, yPred[:3]); err == nil {
		t.Error("Accuracy() on mismatched lengths should fail")
	}
	if _, _, err := ConfusionMatrix(yTrue[:2], yPred); err == nil {
		t.Error("ConfusionMatrix() on mismatched lengths should fail")
	}
}
