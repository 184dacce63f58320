package patricia

// control is the use-count block embedded into every node.
//
// uses is the number of handle slots (tree roots and branch children) that
// reference the node. Only handle may touch it.
type control struct {
	uses uint32
}

func (c *control) block() *control {
	return c
}

// handle is an owning reference to a node.
//
// Handles are plain values, so copying one with an assignment does NOT count as
// a new reference: use share to alias a node and take to move one out of a slot.
// Every node operation consumes the handle it is given and returns a handle the
// caller owns.
type handle[K, V any] struct {
	node node[K, V]
}

// newHandle takes ownership of a freshly allocated node.
func newHandle[K, V any](n node[K, V]) handle[K, V] {
	n.block().uses = 1
	return handle[K, V]{node: n}
}

func (h handle[K, V]) isEmpty() bool {
	return h.node == nil
}

// unique reports whether this is the only reference to the node anywhere.
// It is the only condition under which a node may be changed in place.
func (h handle[K, V]) unique() bool {
	return h.node != nil && h.node.block().uses == 1
}

func (h handle[K, V]) useCount() uint32 {
	if h.node == nil {
		return 0
	}
	return h.node.block().uses
}

// share returns another reference to the same node.
func (h handle[K, V]) share() handle[K, V] {
	if h.node != nil {
		h.node.block().uses++
	}
	return h
}

// take moves the reference out of the slot leaving it empty.
func (h *handle[K, V]) take() handle[K, V] {
	moved := *h
	h.node = nil
	return moved
}

// drop releases the reference. The last one disposes of the node, which in
// turn drops the references it holds to its children.
func (h handle[K, V]) drop() {
	if h.node == nil {
		return
	}
	c := h.node.block()
	if c.uses--; c.uses == 0 {
		h.node.dispose()
	}
}

// insert dispatches to the destructive variant when the node is uniquely owned.
func (h handle[K, V]) insert(bits uint64, key K, val V) (handle[K, V], *leaf[K, V], bool) {
	if h.unique() {
		return h.node.insertUnique(h, bits, key, val)
	}
	return h.node.insertShared(h, bits, key, val)
}

// erase dispatches to the destructive variant when the node is uniquely owned.
func (h handle[K, V]) erase(bits uint64) (handle[K, V], int) {
	if h.unique() {
		return h.node.eraseUnique(h, bits)
	}
	return h.node.eraseShared(h, bits)
}
