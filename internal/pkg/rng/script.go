package rng

import "fmt"

// Script replays predetermined draws, for tests that assert on exact
// draw order and count. Each kind of draw consumes from its own queue;
// running past the end of a queue panics, which makes an unexpected
// extra draw a loud test failure.
type Script struct {
	Floats  []float64
	Ints    []int
	Indexes []int

	fi, ii, xi int
}

// Float64 pops the next scripted float draw
func (s *Script) Float64() float64 {
	if s.fi >= len(s.Floats) {
		panic(fmt.Sprintf("rng script: float draw %d requested, only %d scripted", s.fi+1, len(s.Floats)))
	}
	v := s.Floats[s.fi]
	s.fi++
	return v
}

// IntN pops the next scripted integer draw, clamped into [lo, hi]
func (s *Script) IntN(lo, hi int) int {
	if s.ii >= len(s.Ints) {
		panic(fmt.Sprintf("rng script: int draw %d requested, only %d scripted", s.ii+1, len(s.Ints)))
	}
	v := s.Ints[s.ii]
	s.ii++
	if v < lo {
		return lo
	}
	if hi >= lo && v > hi {
		return hi
	}
	return v
}

// WeightedIndex pops the next scripted index draw
func (s *Script) WeightedIndex(weights []int) int {
	if s.xi >= len(s.Indexes) {
		panic(fmt.Sprintf("rng script: index draw %d requested, only %d scripted", s.xi+1, len(s.Indexes)))
	}
	v := s.Indexes[s.xi]
	s.xi++
	if v < 0 || v >= len(weights) {
		return 0
	}
	return v
}

// Used reports how many draws of each kind have been consumed
func (s *Script) Used() (floats, ints, indexes int) {
	return s.fi, s.ii, s.xi
}
