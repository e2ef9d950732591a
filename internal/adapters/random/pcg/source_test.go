package pcg

import (
	"bytes"
	"errors"
	"testing"

	"github.com/bnema/kondo-sampler/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy pool closed") }

func TestSeededSourcesAreReproducible(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.IntN(9), b.IntN(9))
		require.Equal(t, a.Float64(), b.Float64())
	}
	assert.Equal(t, uint64(42), a.Seed())
}

func TestDrawsStayInRange(t *testing.T) {
	s := NewSeeded(7)
	for i := 0; i < 1000; i++ {
		v := s.IntN(4)
		require.True(t, v >= 0 && v < 4)
		f := s.Float64()
		require.True(t, f >= 0 && f < 1)
	}
}

func TestNewKeepsExplicitSeed(t *testing.T) {
	s, err := New(123)
	require.NoError(t, err)
	assert.Equal(t, uint64(123), s.Seed())
}

func TestNewSeedsFromEntropyWhenZero(t *testing.T) {
	entropy := bytes.NewReader([]byte{1, 0, 0, 0, 0, 0, 0, 0, 10, 0, 0, 0, 0, 0, 0, 0})

	s, err := newFromReader(0, entropy)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), s.Seed())
}

func TestNewReportsUnavailableEntropy(t *testing.T) {
	_, err := newFromReader(0, failingReader{})
	require.ErrorIs(t, err, domain.ErrRandomUnavailable)
	assert.ErrorContains(t, err, "entropy pool closed")
}
