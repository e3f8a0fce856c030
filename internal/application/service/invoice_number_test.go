package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
}

func TestFromSourceRewritesPrefix(t *testing.T) {
	gen := NewInvoiceNumberGenerator(nil)
	gen.now = fixedNow

	number, ok := gen.FromSource("REF-20240101-AB12")
	assert.True(t, ok)
	assert.Equal(t, "INV-20240101-AB12", number)
}

func TestFromSourceRejectsForeignPrefix(t *testing.T) {
	gen := NewInvoiceNumberGenerator(nil)

	number, ok := gen.FromSource("ORD-20240101-AB12")
	assert.False(t, ok)
	assert.Equal(t, "ORD-20240101-AB12", number)

	_, ok = gen.FromSource("REF20240101")
	assert.False(t, ok)
}

func TestGenerateShape(t *testing.T) {
	gen := NewInvoiceNumberGenerator(func(ctx context.Context, number string) (bool, error) {
		return false, nil
	})
	gen.now = fixedNow

	number, err := gen.Generate(context.Background())
	require.NoError(t, err)

	parts := strings.Split(number, "-")
	require.Len(t, parts, 3)
	assert.Equal(t, "INV", parts[0])
	assert.Equal(t, "20240315", parts[1])
	assert.Len(t, parts[2], 4)
	for _, r := range parts[2] {
		assert.Contains(t, numberAlphabet, string(r))
	}
}

func TestGenerateRetriesOnCollision(t *testing.T) {
	calls := 0
	gen := NewInvoiceNumberGenerator(func(ctx context.Context, number string) (bool, error) {
		calls++
		// First two candidates are taken
		return calls <= 2, nil
	})
	gen.now = fixedNow

	number, err := gen.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.True(t, strings.HasPrefix(number, "INV-20240315-"))
}

func TestGenerateFallsBackToTimestamp(t *testing.T) {
	gen := NewInvoiceNumberGenerator(func(ctx context.Context, number string) (bool, error) {
		// Everything is taken
		return true, nil
	})
	gen.now = fixedNow

	number, err := gen.Generate(context.Background())
	require.NoError(t, err)

	parts := strings.Split(number, "-")
	require.Len(t, parts, 3)
	assert.Equal(t, "20240315", parts[1])
	// Millisecond timestamps in base36 are longer than the 4-char random part
	assert.Greater(t, len(parts[2]), 4)
}

func TestGenerateProducesFreshNumbers(t *testing.T) {
	seen := make(map[string]bool)
	gen := NewSubmissionReferenceGenerator(func(ctx context.Context, number string) (bool, error) {
		return seen[number], nil
	})
	gen.now = fixedNow

	for i := 0; i < 1000; i++ {
		number, err := gen.Generate(context.Background())
		require.NoError(t, err)
		assert.False(t, seen[number], "number %s issued twice", number)
		seen[number] = true
		assert.True(t, strings.HasPrefix(number, "REF-20240315-"))
	}
}
