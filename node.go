package skipset

const (
	// HeightCap is the tallest tower any container may be configured to
	// draw. 2^32 slots is far beyond what a single-threaded in-memory
	// container will ever hold.
	HeightCap = 32

	// DefaultMaxHeight bounds tower heights when WithMaxHeight is not
	// given. 2^10 comfortably exceeds the element counts this default is
	// sized for; raise it via WithMaxHeight for larger sets.
	DefaultMaxHeight = 10
)

// nodeID addresses a slot in the container's arena. Links between nodes
// are slot indices rather than pointers, so a released slot can never be
// followed into freed memory.
type nodeID int32

const (
	nilID  nodeID = -1
	headID nodeID = 0
)

// node is one arena slot: a key fixed at construction plus one forward
// link per level the node participates in. A node on level L is on every
// level below L. gen is bumped each time the slot is released, which is
// how stale iterators are told apart from live ones.
type node[K any] struct {
	key  K
	gen  uint32
	next []nodeID
}

func (n *node[K]) height() int { return len(n.next) }

// arena owns every node slot of one container. Slot 0 is the head
// sentinel: keyless, present at every level, never exposed and never
// released. Released slots are recycled through a free list, so IDs held
// by live nodes stay stable across growth.
type arena[K any] struct {
	nodes []node[K]
	free  []nodeID
}

func newArena[K any](capacity, maxHeight int) arena[K] {
	a := arena[K]{nodes: make([]node[K], 1, capacity+1)}
	head := &a.nodes[headID]
	head.next = make([]nodeID, maxHeight)
	for i := range head.next {
		head.next[i] = nilID
	}
	return a
}

func (a *arena[K]) node(id nodeID) *node[K] { return &a.nodes[id] }

// alloc returns a slot holding key with height empty links, reusing a
// freed slot when one is available.
func (a *arena[K]) alloc(key K, height int) nodeID {
	var id nodeID
	if n := len(a.free); n > 0 {
		id = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.nodes = append(a.nodes, node[K]{})
		id = nodeID(len(a.nodes) - 1)
	}

	slot := &a.nodes[id]
	slot.key = key
	if cap(slot.next) < height {
		slot.next = make([]nodeID, height)
	} else {
		slot.next = slot.next[:height]
	}
	for i := range slot.next {
		slot.next[i] = nilID
	}
	return id
}

// release recycles a slot. The generation bump invalidates any iterator
// still holding the slot's previous incarnation.
func (a *arena[K]) release(id nodeID) {
	slot := &a.nodes[id]
	var zero K
	slot.key = zero
	slot.gen++
	a.free = append(a.free, id)
}
