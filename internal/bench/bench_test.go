package bench

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"math/rand"
	"testing"

	"github.com/born-ml/edge/internal/kernels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Small(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	results, err := Run(context.Background(), Config{Iterations: 2, Seed: 1, Size: Small, Logger: logger})
	require.NoError(t, err)

	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.Kernel)
		assert.Equal(t, 2, r.Iterations, r.Kernel)
		assert.NotEmpty(t, r.Shape, r.Kernel)
		if r.HasReference() {
			assert.True(t, r.Verified(), "%s: max abs err %g", r.Kernel, r.MaxAbsErr)
		}
	}

	assert.Equal(t, []string{
		"matmul", "conv", "conv1x1", "sparsematmul", "matadd",
		"scalarmul", "maxpool", "sigmoid", "exp",
	}, names)
	assert.Contains(t, buf.String(), "range.name=exp")
}

func TestRun_Errors(t *testing.T) {
	_, err := Run(context.Background(), Config{Iterations: 0})
	require.Error(t, err)

	_, err = Run(context.Background(), Config{Iterations: 1, Size: "huge"})
	require.ErrorIs(t, err, ErrUnknownSize)
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := Run(ctx, Config{Iterations: 1, Size: Small})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}

func TestResult_Verified(t *testing.T) {
	assert.True(t, Result{MaxAbsErr: 0}.Verified())
	assert.False(t, Result{MaxAbsErr: 1}.Verified())
	assert.False(t, Result{MaxAbsErr: math.NaN()}.Verified())
	assert.False(t, Result{MaxAbsErr: math.NaN()}.HasReference())
}

func TestRandSparse_Encoding(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	idx, val, full := randSparse(rng, 6, 9, 0.5)

	require.NoError(t, kernels.ValidateSparse(idx, len(val), 9, 6, 9))

	nonzero := 0
	for _, v := range full {
		if v != 0 {
			nonzero++
		}
	}
	assert.Equal(t, len(val), nonzero)
}

func TestRun_ReferenceCoverage(t *testing.T) {
	results, err := Run(context.Background(), Config{Iterations: 1, Seed: 3, Size: Small})
	require.NoError(t, err)

	for _, r := range results {
		assert.True(t, r.HasReference(), r.Kernel)
		assert.True(t, r.Verified(), "%s: max abs err %g", r.Kernel, r.MaxAbsErr)
	}
}

func TestConvRef_SamePadding(t *testing.T) {
	d := dims{N: 1, H: 3, W: 3, CI: 1, CO: 1, HF: 3, WF: 3}
	ones := []float64{1, 1, 1, 1, 1, 1, 1, 1, 1}

	assert.Equal(t, []float64{4, 6, 4, 6, 9, 6, 4, 6, 4}, convRef(ones, ones, d))
}

func TestSigmoidCase_StableInputs(t *testing.T) {
	d, err := dimsFor(Small)
	require.NoError(t, err)
	kc := sigmoidCase(rand.New(rand.NewSource(5)), d)

	first := kc.check()
	for i := 0; i < 10; i++ {
		kc.run()
	}
	assert.Equal(t, first, kc.check())
	assert.LessOrEqual(t, first, Tolerance)
}
