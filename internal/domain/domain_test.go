package domain

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpinValue(t *testing.T) {
	assert.Equal(t, 1.0, SpinUp.Value())
	assert.Equal(t, -1.0, SpinDown.Value())
}

func TestSpinGlyphAndFlip(t *testing.T) {
	assert.Equal(t, "↑", SpinUp.String())
	assert.Equal(t, "↓", SpinDown.String())
	assert.Equal(t, SpinDown, SpinUp.Flip())
	assert.Equal(t, SpinUp, SpinDown.Flip())
}

func TestParseSpin(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Spin
		wantErr bool
	}{
		{name: "up name", raw: "up", want: SpinUp},
		{name: "down name mixed case", raw: " Down ", want: SpinDown},
		{name: "up glyph", raw: "↑", want: SpinUp},
		{name: "down glyph", raw: "↓", want: SpinDown},
		{name: "signed", raw: "-1", want: SpinDown},
		{name: "garbage", raw: "sideways", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSpin(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSpin)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStateEnergyIsSumOfSquares(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 500; i++ {
		k := int16(rng.IntN(201) - 100)
		l := int16(rng.IntN(201) - 100)
		m := int16(rng.IntN(201) - 100)
		s := NewUp(k, l, m)

		want := float64(int(k)*int(k) + int(l)*int(l) + int(m)*int(m))
		require.Equal(t, want, s.Energy(), "state %s", s)
		require.Equal(t, s.Energy(), s.WithSpin(SpinDown).Energy())
	}
}

func TestKondoScore(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	for i := 0; i < 500; i++ {
		coupling := rng.Float64()*20 - 10
		s := State{
			K:    int16(rng.IntN(19) - 9),
			L:    int16(rng.IntN(19) - 9),
			M:    int16(rng.IntN(19) - 9),
			Spin: Spin(rng.IntN(2)),
		}

		h := KondoEffect{CouplingStrength: coupling}
		require.Equal(t, s.Energy()+s.Spin.Value()*coupling, h.Score(s))
	}

	h := KondoEffect{CouplingStrength: 0.5}
	assert.Equal(t, 3.5, h.Score(NewUp(1, 1, 1)))
	assert.Equal(t, 2.5, h.Score(NewDown(1, 1, 1)))
}

func TestStateWithCopies(t *testing.T) {
	original := NewUp(1, 2, 3)
	changed := original.WithK(9).WithSpin(SpinDown)

	assert.Equal(t, NewUp(1, 2, 3), original)
	assert.Equal(t, State{K: 9, L: 2, M: 3, Spin: SpinDown}, changed)
	assert.Equal(t, State{K: 1, L: 7, M: 3, Spin: SpinUp}, original.WithL(7))
	assert.Equal(t, State{K: 1, L: 2, M: 7, Spin: SpinUp}, original.WithM(7))
}

func TestStateStringAndParseRoundTrip(t *testing.T) {
	s := NewDown(4, -2, 9)
	assert.Equal(t, "4,-2,9,↓", s.String())

	parsed, err := ParseState(s.String())
	require.NoError(t, err)
	assert.Equal(t, s, parsed)
}

func TestParseStateErrors(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{name: "too few parts", raw: "1,1,up", wantErr: ErrInvalidState},
		{name: "non numeric", raw: "a,1,1,up", wantErr: ErrInvalidState},
		{name: "out of int16 range", raw: "40000,1,1,up", wantErr: ErrInvalidState},
		{name: "bad spin", raw: "1,1,1,left", wantErr: ErrInvalidSpin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseState(tt.raw)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestChangeChoiceChangesSpin(t *testing.T) {
	assert.False(t, ChangeK.ChangesSpin())
	assert.False(t, ChangeL.ChangesSpin())
	assert.False(t, ChangeM.ChangesSpin())
	assert.True(t, ChangeKSpin.ChangesSpin())
	assert.True(t, ChangeSpin.ChangesSpin())
	assert.Equal(t, "k+spin", ChangeKSpin.String())
}
