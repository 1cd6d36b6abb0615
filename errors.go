package skipset

import "github.com/pkg/errors"

var (
	// ErrInvalidIterator reports use of an iterator that refers to no live
	// element of the container: the end iterator, an iterator issued by
	// another container, or one whose element has since been erased.
	ErrInvalidIterator = errors.New("skipset: invalid iterator")

	// ErrIndexOutOfRange reports an At index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("skipset: index out of range")
)
