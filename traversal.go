package skipset

// search is the traversal primitive shared by Find, Insert and Erase: a
// top-down walk from the head that never moves left, recording in update
// the last node strictly before key at every level below height. It
// returns the node following the final level-0 position, which is the
// first node whose key is not less than key.
//
// When target names a live node, the walk additionally steps through keys
// equivalent to key until target itself is next. The recorded
// predecessors are then those of that exact node, which keeps Erase
// correct when equivalent keys coexist. Erase bounds height by the
// target's own height, so the target is present on every level the walk
// visits and cannot be overshot.
func (s *SkipSet[K]) search(key K, height int, target nodeID, update *[HeightCap]nodeID) nodeID {
	at := headID
	for level := height - 1; level >= 0; level-- {
		for {
			next := s.arena.node(at).next[level]
			if next == nilID {
				break
			}
			nextKey := s.arena.node(next).key
			if s.less(nextKey, key) {
				at = next
				continue
			}
			if target != nilID && next != target && !s.less(key, nextKey) {
				at = next
				continue
			}
			break
		}
		update[level] = at
	}
	return s.arena.node(at).next[0]
}
