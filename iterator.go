package skipset

import "github.com/pkg/errors"

// Iterator is a forward cursor over a container in ascending key order.
// It is a value: copies advance independently, and calling Begin again
// yields a fresh cursor. An iterator is bound to the container instance
// that issued it; iterators from different containers never compare
// equal, even when positioned on equal keys.
type Iterator[K any] struct {
	s   *SkipSet[K]
	id  nodeID
	gen uint32
}

// Valid reports whether the iterator refers to a live element. It is
// false for End, for the zero Iterator, and for iterators whose element
// has since been erased.
func (it Iterator[K]) Valid() bool {
	if it.s == nil || it.id == nilID {
		return false
	}
	return it.s.arena.node(it.id).gen == it.gen
}

// Key returns the element the iterator refers to. Dereferencing End or a
// stale iterator reports ErrInvalidIterator.
func (it Iterator[K]) Key() (K, error) {
	var zero K
	if it.s == nil {
		return zero, errors.Wrap(ErrInvalidIterator, "zero iterator")
	}
	n, err := it.s.live(it)
	if err != nil {
		return zero, err
	}
	return n.key, nil
}

// Next advances the iterator to its level-0 successor; after the last
// element it becomes End. Advancing End or a stale iterator reports
// ErrInvalidIterator.
func (it *Iterator[K]) Next() error {
	if it.s == nil {
		return errors.Wrap(ErrInvalidIterator, "zero iterator")
	}
	n, err := it.s.live(*it)
	if err != nil {
		return err
	}
	*it = it.s.iter(n.next[0])
	return nil
}

// Equal reports whether both iterators refer to the same element of the
// same container, or are both that container's End.
func (it Iterator[K]) Equal(other Iterator[K]) bool {
	return it.s == other.s && it.id == other.id && it.gen == other.gen
}
