package skipset

// Insert adds key and returns an iterator to the new element. The boolean
// mirrors the conventional set-insert signature and is always true:
// equivalent keys are not merged or rejected, a fresh element is added and
// placed before its existing equivalents in iteration order.
//
// Insert never invalidates other live iterators; arena slot IDs are
// stable across growth.
func (s *SkipSet[K]) Insert(key K) (Iterator[K], bool) {
	height := s.rng.drawHeight(s.maxHeight)

	var update [HeightCap]nodeID
	s.search(key, height, nilID, &update)

	id := s.arena.alloc(key, height)
	n := s.arena.node(id)
	for level := height - 1; level >= 0; level-- {
		left := s.arena.node(update[level])
		n.next[level] = left.next[level]
		left.next[level] = id
	}

	s.monitor.observeInsert(height)
	return s.iter(id), true
}

// Find returns an iterator to an element equivalent to key, or End when
// none is present. When equivalent keys coexist, Find returns the first
// of them in iteration order, which is the most recently inserted.
func (s *SkipSet[K]) Find(key K) Iterator[K] {
	var update [HeightCap]nodeID
	next := s.search(key, s.maxHeight, nilID, &update)
	s.monitor.observeSearch()
	if next == nilID {
		return s.End()
	}
	if k := s.arena.node(next).key; s.less(k, key) || s.less(key, k) {
		return s.End()
	}
	return s.iter(next)
}

// Erase removes the element it refers to and returns an iterator to its
// level-0 successor, or End when it was the last element. Only the erased
// iterator is invalidated; every other live iterator keeps working.
// Erasing End, an iterator from another container, or an iterator whose
// element is already gone reports ErrInvalidIterator.
func (s *SkipSet[K]) Erase(it Iterator[K]) (Iterator[K], error) {
	n, err := s.live(it)
	if err != nil {
		return s.End(), err
	}

	height := n.height()
	var update [HeightCap]nodeID
	s.search(n.key, height, it.id, &update)

	for level := height - 1; level >= 0; level-- {
		left := s.arena.node(update[level])
		if left.next[level] == it.id {
			left.next[level] = n.next[level]
		}
	}

	next := n.next[0]
	s.arena.release(it.id)
	s.monitor.observeErase()
	return s.iter(next), nil
}

// Clear erases the front element until the container is empty. The front
// node has the head as predecessor on every level it participates in, so
// no search is needed.
func (s *SkipSet[K]) Clear() {
	head := s.head()
	for head.next[0] != nilID {
		id := head.next[0]
		n := s.arena.node(id)
		for level := n.height() - 1; level >= 0; level-- {
			head.next[level] = n.next[level]
		}
		s.arena.release(id)
		s.monitor.observeErase()
	}
}

// Clone returns an independent container with the same comparator,
// configuration and membership, built by re-inserting the keys in
// iteration order. Tower heights are freshly drawn, so the two structures
// are equivalent but not identical; mutating either leaves the other
// untouched.
func (s *SkipSet[K]) Clone() *SkipSet[K] {
	c := New(s.less,
		WithMaxHeight(s.maxHeight),
		WithCapacity(s.Len()),
		WithMonitor(s.monitor),
	)
	for id := s.head().next[0]; id != nilID; id = s.arena.node(id).next[0] {
		c.Insert(s.arena.node(id).key)
	}
	return c
}

// Swap exchanges the contents, comparator, configuration and randomness
// state of the two containers in constant time.
//
// Iterators issued before the swap keep their container binding: after
// Swap they resolve against whatever that container now holds, exactly
// like index-based references into exchanged storage. That hazard is
// inherent to constant-time swap and is not detected.
func (s *SkipSet[K]) Swap(other *SkipSet[K]) {
	if s == other {
		return
	}
	s.less, other.less = other.less, s.less
	s.arena, other.arena = other.arena, s.arena
	s.maxHeight, other.maxHeight = other.maxHeight, s.maxHeight
	s.rng, other.rng = other.rng, s.rng
	s.monitor, other.monitor = other.monitor, s.monitor
}
