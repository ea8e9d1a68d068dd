package random

import "math/rand/v2"

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// String generates a random string of the given length from the given alphabet
	String(length int, alphabet string) string
}

// PCGRandom implements Random using math/rand/v2
type PCGRandom struct {
	rng *rand.Rand
}

// New creates a PCGRandom with an unpredictable seed
func New() *PCGRandom {
	return &PCGRandom{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeeded creates a PCGRandom with a fixed seed, for reproducible games
func NewSeeded(seed uint64) *PCGRandom {
	return &PCGRandom{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Intn returns a random int in [0, n)
func (r *PCGRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.IntN(n)
}

// String generates a random string of the given length from the given alphabet
func (r *PCGRandom) String(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	result := make([]byte, length)
	for i := range result {
		result[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(result)
}
