package randomizer

import (
	"math/rand"

	"github.com/raid-bits/shift-compliance/backend/internal/domain"
)

// SampleFraction is the share of active employees drawn on every run.
const SampleFraction = 0.4

// Sampler draws the random main/standby selection. The randomness source is
// injected so tests can seed it.
type Sampler struct {
	rng *rand.Rand
}

func NewSampler(src rand.Source) *Sampler {
	return &Sampler{rng: rand.New(src)}
}

// Sample draws floor(SampleFraction*len(employees)) employees uniformly
// without replacement, then splits the drawn subset 5:3 into main and standby.
// When the floor is zero the whole input becomes the sample, so a tiny roster
// still produces a selection.
func (s *Sampler) Sample(employees []domain.EmployeeSnapshot) domain.RandomizationResult {
	size := int(SampleFraction * float64(len(employees)))
	if size == 0 {
		size = len(employees)
	}

	drawn := s.draw(employees, size)
	split := 5 * size / 8

	return domain.RandomizationResult{
		MainList:    drawn[:split],
		StandbyList: drawn[split:],
	}
}

// draw performs a partial Fisher-Yates shuffle over a copy of the input and
// keeps the first n elements. The drawn order is itself random.
func (s *Sampler) draw(employees []domain.EmployeeSnapshot, n int) []domain.EmployeeSnapshot {
	pool := append([]domain.EmployeeSnapshot{}, employees...)

	for i := 0; i < n; i++ {
		j := s.rng.Intn(len(pool)-i) + i
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:n]
}
