package randomizer

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raid-bits/shift-compliance/backend/internal/domain"
)

func snapshots(n int) []domain.EmployeeSnapshot {
	list := make([]domain.EmployeeSnapshot, n)
	for i := range list {
		list[i] = domain.EmployeeSnapshot{
			EmployeeID: fmt.Sprintf("EMP%03d", i),
			Name:       fmt.Sprintf("employee %d", i),
			Shift:      "alpha",
		}
	}
	return list
}

func TestSampleSizes(t *testing.T) {
	cases := []struct {
		name    string
		input   int
		drawn   int
		main    int
		standby int
	}{
		{"ten actives", 10, 4, 2, 2},
		{"twenty actives", 20, 8, 5, 3},
		{"floor rounds down", 9, 3, 1, 2},
		{"zero floor falls back to whole list", 2, 2, 1, 1},
		{"single employee", 1, 1, 0, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSampler(rand.NewSource(1))
			result := s.Sample(snapshots(tc.input))

			assert.Len(t, result.MainList, tc.main)
			assert.Len(t, result.StandbyList, tc.standby)
			assert.Equal(t, tc.drawn, len(result.MainList)+len(result.StandbyList))
		})
	}
}

func TestSampleEmptyInput(t *testing.T) {
	s := NewSampler(rand.NewSource(1))
	result := s.Sample(nil)

	assert.Empty(t, result.MainList)
	assert.Empty(t, result.StandbyList)
}

func TestSampleWithoutReplacement(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		s := NewSampler(rand.NewSource(seed))
		result := s.Sample(snapshots(25))

		seen := map[string]bool{}
		for _, snap := range append(result.MainList, result.StandbyList...) {
			require.False(t, seen[snap.EmployeeID], "seed %d drew %s twice", seed, snap.EmployeeID)
			seen[snap.EmployeeID] = true
		}
		require.Len(t, seen, 10) // floor(0.4*25)
	}
}

func TestSampleDrawsFromInput(t *testing.T) {
	input := snapshots(15)
	valid := map[string]bool{}
	for _, snap := range input {
		valid[snap.EmployeeID] = true
	}

	s := NewSampler(rand.NewSource(7))
	result := s.Sample(input)

	for _, snap := range append(result.MainList, result.StandbyList...) {
		assert.True(t, valid[snap.EmployeeID])
	}
}

func TestSampleDeterministicForSeed(t *testing.T) {
	a := NewSampler(rand.NewSource(42)).Sample(snapshots(30))
	b := NewSampler(rand.NewSource(42)).Sample(snapshots(30))

	assert.Equal(t, a, b)
}

func TestSampleDoesNotMutateInput(t *testing.T) {
	input := snapshots(12)
	original := append([]domain.EmployeeSnapshot{}, input...)

	NewSampler(rand.NewSource(3)).Sample(input)

	assert.Equal(t, original, input)
}
