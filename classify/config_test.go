package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lintext/textclass/index"
	scierrors "github.com/lintext/textclass/pkg/errors"
)

func TestNewFromConfig_Defaults(t *testing.T) {
	idx := index.NewMemoryIndex()

	c, err := NewFromConfig(Config{}, idx, "pos", "neg")
	require.NoError(t, err)

	params := c.GetParams()
	assert.Equal(t, DefaultAlpha, params["alpha"])
	assert.Equal(t, DefaultGamma, params["gamma"])
	assert.Equal(t, DefaultBias, params["bias"])
	assert.Equal(t, DefaultLambda, params["lambda"])
	assert.Equal(t, DefaultMaxIter, params["max-iter"])
	assert.Equal(t, "pos", params["positive"])
	assert.Equal(t, "neg", params["negative"])
}

func TestNewFromConfig_Overrides(t *testing.T) {
	idx := index.NewMemoryIndex()

	cfg := Config{
		"alpha":    0.01,
		"gamma":    1e-4,
		"bias":     0, // decoders may hand integers for numeric keys
		"lambda":   0.001,
		"max-iter": 10,
		"loss":     "logistic",
	}

	c, err := NewFromConfig(cfg, idx, "pos", "neg")
	require.NoError(t, err)

	params := c.GetParams()
	assert.Equal(t, 0.01, params["alpha"])
	assert.Equal(t, 1e-4, params["gamma"])
	assert.Equal(t, 0.0, params["bias"])
	assert.Equal(t, 0.001, params["lambda"])
	assert.Equal(t, 10, params["max-iter"])
}

func TestNewFromConfig_Errors(t *testing.T) {
	idx := index.NewMemoryIndex()

	tests := []struct {
		name string
		cfg  Config
	}{
		{"unknown loss", Config{"loss": "ramp"}},
		{"non-numeric alpha", Config{"alpha": "fast"}},
		{"non-integer max-iter", Config{"max-iter": "many"}},
		{"zero max-iter", Config{"max-iter": 0}},
		{"wrong loss type", Config{"loss": 42}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFromConfig(tt.cfg, idx, "pos", "neg")
			assert.Error(t, err)
		})
	}

	_, err := NewFromConfig(Config{"loss": "ramp"}, idx, "pos", "neg")
	assert.True(t, scierrors.Is(err, scierrors.ErrUnknownLoss))
}
