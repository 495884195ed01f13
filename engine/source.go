package engine

import "math/rand/v2"

// Source decides which kind the engine spawns next.
type Source interface {
	Next() Kind
}

// UniformSource draws every kind with equal probability, independently of
// previous draws.
type UniformSource struct {
	rng *rand.Rand
}

// NewUniformSource returns a uniform source seeded with seed.
func NewUniformSource(seed uint64) *UniformSource {
	return &UniformSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *UniformSource) Next() Kind {
	return Kind(s.rng.IntN(KindCount))
}

// BagSource deals the seven kinds in shuffled bags, so each kind appears
// exactly once per seven spawns.
type BagSource struct {
	rng *rand.Rand
	bag []Kind
}

// NewBagSource returns a bag source seeded with seed.
func NewBagSource(seed uint64) *BagSource {
	return &BagSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *BagSource) Next() Kind {
	if len(s.bag) == 0 {
		s.bag = Kinds()
		s.rng.Shuffle(len(s.bag), func(i, j int) {
			s.bag[i], s.bag[j] = s.bag[j], s.bag[i]
		})
	}

	k := s.bag[0]
	s.bag = s.bag[1:]
	return k
}

// SequenceSource repeats a fixed list of kinds. It is used for replays and
// tests.
type SequenceSource struct {
	kinds []Kind
	pos   int
}

// NewSequenceSource returns a source cycling through kinds. It panics if
// kinds is empty or holds a value outside the catalog.
func NewSequenceSource(kinds ...Kind) *SequenceSource {
	if len(kinds) == 0 {
		panic("engine: sequence source needs at least one kind")
	}
	for _, k := range kinds {
		if !k.Valid() {
			panic("engine: sequence source kind outside catalog")
		}
	}
	return &SequenceSource{kinds: append([]Kind(nil), kinds...)}
}

func (s *SequenceSource) Next() Kind {
	k := s.kinds[s.pos]
	s.pos = (s.pos + 1) % len(s.kinds)
	return k
}
