package selection

import (
	"math/rand"
	"quizbank/internal/model"
)

// Sampler picks questions uniformly at random without replacement
type Sampler struct {
	shuffle func(n int, swap func(i, j int))
}

// NewSampler creates a sampler backed by the goroutine-safe global source
func NewSampler() *Sampler {
	return &Sampler{shuffle: rand.Shuffle}
}

// Sample returns min(n, len(records)) distinct records in random order.
// The input slice is not modified.
func (s *Sampler) Sample(records []model.Question, n int) []model.Question {
	if n <= 0 || len(records) == 0 {
		return []model.Question{}
	}
	if n > len(records) {
		n = len(records)
	}

	pool := make([]model.Question, len(records))
	copy(pool, records)
	s.shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	return pool[:n]
}

// PickOne returns a single random record, or false when records is empty
func (s *Sampler) PickOne(records []model.Question) (model.Question, bool) {
	picked := s.Sample(records, 1)
	if len(picked) == 0 {
		return model.Question{}, false
	}
	return picked[0], true
}
