package application

import (
	"math/rand/v2"
	"testing"

	"github.com/bnema/kondo-sampler/internal/domain"
	"github.com/bnema/kondo-sampler/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChoiceTables(t *testing.T) {
	coupled, err := ChoiceTable(PolicyCoupled)
	require.NoError(t, err)
	assert.Equal(t, []domain.ChangeChoice{domain.ChangeK, domain.ChangeL, domain.ChangeM, domain.ChangeKSpin}, coupled)

	independent, err := ChoiceTable(PolicyIndependent)
	require.NoError(t, err)
	assert.Equal(t, []domain.ChangeChoice{domain.ChangeK, domain.ChangeL, domain.ChangeM, domain.ChangeSpin}, independent)

	_, err = ChoiceTable("bogus")
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)

	coupled[0] = domain.ChangeSpin
	again, err := ChoiceTable(PolicyCoupled)
	require.NoError(t, err)
	assert.Equal(t, domain.ChangeK, again[0])
}

func TestProposeMapsDrawToTableEntry(t *testing.T) {
	current := domain.NewUp(2, 3, 4)

	tests := []struct {
		name       string
		policy     ProposalPolicy
		choiceDraw int
		coordDraw  int
		spinDraw   int
		want       domain.State
		choice     domain.ChangeChoice
	}{
		{name: "k", policy: PolicyCoupled, choiceDraw: 0, coordDraw: 6, spinDraw: -1, want: domain.NewUp(7, 3, 4), choice: domain.ChangeK},
		{name: "l", policy: PolicyCoupled, choiceDraw: 1, coordDraw: 0, spinDraw: -1, want: domain.NewUp(2, 1, 4), choice: domain.ChangeL},
		{name: "m", policy: PolicyCoupled, choiceDraw: 2, coordDraw: 8, spinDraw: -1, want: domain.NewUp(2, 3, 9), choice: domain.ChangeM},
		{name: "k and spin", policy: PolicyCoupled, choiceDraw: 3, coordDraw: 4, spinDraw: 1, want: domain.NewDown(5, 3, 4), choice: domain.ChangeKSpin},
		{name: "spin only", policy: PolicyIndependent, choiceDraw: 3, coordDraw: -1, spinDraw: 1, want: domain.NewDown(2, 3, 4), choice: domain.ChangeSpin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := mocks.NewMockRandomSource(t)
			rng.EXPECT().IntN(4).Return(tt.choiceDraw).Once()
			if tt.coordDraw >= 0 {
				rng.EXPECT().IntN(9).Return(tt.coordDraw).Once()
			}
			if tt.spinDraw >= 0 {
				rng.EXPECT().IntN(2).Return(tt.spinDraw).Once()
			}

			gen, err := NewProposalGenerator(rng, tt.policy, CoordinateRange{Min: 1, Max: 10})
			require.NoError(t, err)

			got, choice := gen.Propose(current)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.choice, choice)
			assert.Equal(t, domain.NewUp(2, 3, 4), current)
		})
	}
}

func TestProposeChangesOnlyTheChosenFields(t *testing.T) {
	for _, policy := range []ProposalPolicy{PolicyCoupled, PolicyIndependent} {
		t.Run(string(policy), func(t *testing.T) {
			rng := rand.New(rand.NewPCG(42, 1))
			coords := CoordinateRange{Min: 1, Max: 10}
			gen, err := NewProposalGenerator(rng, policy, coords)
			require.NoError(t, err)

			current := domain.NewUp(-3, 20, 0)
			for i := 0; i < 2000; i++ {
				candidate, choice := gen.Propose(current)

				switch choice {
				case domain.ChangeK:
					assert.True(t, coords.Contains(candidate.K))
					assert.Equal(t, current.WithK(candidate.K), candidate)
				case domain.ChangeL:
					assert.True(t, coords.Contains(candidate.L))
					assert.Equal(t, current.WithL(candidate.L), candidate)
				case domain.ChangeM:
					assert.True(t, coords.Contains(candidate.M))
					assert.Equal(t, current.WithM(candidate.M), candidate)
				case domain.ChangeKSpin:
					require.Equal(t, PolicyCoupled, policy)
					assert.True(t, coords.Contains(candidate.K))
					assert.Equal(t, current.WithK(candidate.K).WithSpin(candidate.Spin), candidate)
				case domain.ChangeSpin:
					require.Equal(t, PolicyIndependent, policy)
					assert.Equal(t, current.WithSpin(candidate.Spin), candidate)
				default:
					t.Fatalf("unexpected choice %v", choice)
				}

				current = candidate
			}
		})
	}
}

func TestProposeCoversEveryChoiceAndCoordinate(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))
	gen, err := NewProposalGenerator(rng, PolicyCoupled, CoordinateRange{Min: 1, Max: 10})
	require.NoError(t, err)

	choices := map[domain.ChangeChoice]int{}
	values := map[int16]int{}
	spins := map[domain.Spin]int{}
	for i := 0; i < 4000; i++ {
		candidate, choice := gen.Propose(domain.NewUp(1, 1, 1))
		choices[choice]++
		if choice == domain.ChangeK || choice == domain.ChangeKSpin {
			values[candidate.K]++
		}
		if choice == domain.ChangeKSpin {
			spins[candidate.Spin]++
		}
	}

	assert.Len(t, choices, 4)
	for _, count := range choices {
		assert.InDelta(t, 1000, count, 150)
	}
	assert.Len(t, values, 9)
	for v := range values {
		assert.True(t, v >= 1 && v < 10, "value %d out of range", v)
	}
	assert.Len(t, spins, 2)
}

func TestNewProposalGeneratorRejectsBadInput(t *testing.T) {
	_, err := NewProposalGenerator(nil, PolicyCoupled, CoordinateRange{Min: 1, Max: 10})
	assert.ErrorIs(t, err, domain.ErrRandomUnavailable)

	rng := rand.New(rand.NewPCG(1, 1))
	_, err = NewProposalGenerator(rng, PolicyCoupled, CoordinateRange{Min: 3, Max: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)

	_, err = NewProposalGenerator(rng, "bogus", CoordinateRange{Min: 1, Max: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}
