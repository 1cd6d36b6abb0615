package skipset

import "testing"

// checkStructure verifies the cross-level invariants: the level-0 chain is
// sorted, every higher-level chain is a subsequence of it, nodes only
// appear on levels they participate in, and freed slots are unreachable.
func checkStructure[K any](t *testing.T, s *SkipSet[K]) {
	t.Helper()
	head := s.head()

	pos := make(map[nodeID]int)
	var prev *node[K]
	for id := head.next[0]; id != nilID; {
		n := s.arena.node(id)
		if prev != nil && s.less(n.key, prev.key) {
			t.Fatalf("level 0 out of order at position %d", len(pos))
		}
		pos[id] = len(pos)
		prev = n
		id = n.next[0]
	}

	for level := 1; level < s.maxHeight; level++ {
		last := -1
		for id := head.next[level]; id != nilID; {
			n := s.arena.node(id)
			if n.height() <= level {
				t.Fatalf("node %d linked on level %d beyond its height %d", id, level, n.height())
			}
			p, ok := pos[id]
			if !ok {
				t.Fatalf("node %d on level %d is missing from level 0", id, level)
			}
			if p <= last {
				t.Fatalf("level %d is not a subsequence of level 0 at node %d", level, id)
			}
			last = p
			id = n.next[level]
		}
	}

	for _, id := range s.arena.free {
		if _, ok := pos[id]; ok {
			t.Fatalf("freed slot %d is still linked", id)
		}
	}
}
