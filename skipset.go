// Package skipset provides a generic ordered set container backed by a
// skip list: expected logarithmic insertion, lookup and removal, with
// forward iteration in key order and none of the rebalancing machinery a
// tree needs.
//
// Node storage lives in a per-container arena addressed by slot index, and
// every iterator carries the generation of the slot it refers to, so
// dereferencing an erased element fails with ErrInvalidIterator instead of
// reading recycled memory.
//
// A SkipSet is not safe for concurrent use.
package skipset

import (
	"cmp"

	"github.com/pkg/errors"
)

// Less reports whether a orders before b. It must be a strict weak
// ordering: keys for which neither Less(a, b) nor Less(b, a) holds are
// equivalent. The container trusts the comparator and silently corrupts
// its structure if the contract is broken.
type Less[K any] func(a, b K) bool

// SkipSet is an ordered container of keys. Equivalent keys are not
// merged; see Insert.
type SkipSet[K any] struct {
	less      Less[K]
	arena     arena[K]
	maxHeight int
	rng       rng
	monitor   *Monitor
}

// New returns an empty container ordered by less.
func New[K any](less Less[K], opts ...Option) *SkipSet[K] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &SkipSet[K]{
		less:      less,
		arena:     newArena[K](cfg.capacity, cfg.maxHeight),
		maxHeight: cfg.maxHeight,
		rng:       newRNG(cfg.seed),
		monitor:   cfg.monitor,
	}
}

// NewOrdered returns an empty container over a naturally ordered key
// type, ascending.
func NewOrdered[K cmp.Ordered](opts ...Option) *SkipSet[K] {
	return New[K](func(a, b K) bool { return a < b }, opts...)
}

func (s *SkipSet[K]) head() *node[K] { return s.arena.node(headID) }

// iter builds an iterator bound to this container, capturing the slot's
// current generation.
func (s *SkipSet[K]) iter(id nodeID) Iterator[K] {
	it := Iterator[K]{s: s, id: id}
	if id != nilID {
		it.gen = s.arena.node(id).gen
	}
	return it
}

// live resolves an iterator to its node, rejecting end, foreign and stale
// iterators.
func (s *SkipSet[K]) live(it Iterator[K]) (*node[K], error) {
	if it.s != s {
		return nil, errors.Wrap(ErrInvalidIterator, "iterator from another container")
	}
	if it.id == nilID {
		return nil, errors.Wrap(ErrInvalidIterator, "end iterator")
	}
	n := s.arena.node(it.id)
	if n.gen != it.gen {
		return nil, errors.Wrap(ErrInvalidIterator, "element already erased")
	}
	return n, nil
}

// Begin returns an iterator to the first element in key order, or End
// when the container is empty.
func (s *SkipSet[K]) Begin() Iterator[K] {
	return s.iter(s.head().next[0])
}

// End returns the past-the-end iterator. It refers to no element and must
// not be dereferenced.
func (s *SkipSet[K]) End() Iterator[K] {
	return Iterator[K]{s: s, id: nilID}
}

// Len counts the elements by walking the level-0 chain. O(n); the size is
// deliberately not cached.
func (s *SkipSet[K]) Len() int {
	count := 0
	for id := s.head().next[0]; id != nilID; id = s.arena.node(id).next[0] {
		count++
	}
	return count
}

// Empty reports whether the container holds no elements.
func (s *SkipSet[K]) Empty() bool {
	return s.head().next[0] == nilID
}

// At returns the i-th element in iteration order. Despite the indexed
// call surface this walks level-0 links and costs O(n); prefer iteration
// over repeated At calls.
func (s *SkipSet[K]) At(i int) (K, error) {
	var zero K
	if i < 0 {
		return zero, errors.Wrapf(ErrIndexOutOfRange, "index %d", i)
	}
	id := s.head().next[0]
	for step := i; step > 0 && id != nilID; step-- {
		id = s.arena.node(id).next[0]
	}
	if id == nilID {
		return zero, errors.Wrapf(ErrIndexOutOfRange, "index %d, len %d", i, s.Len())
	}
	return s.arena.node(id).key, nil
}
