package patricia

import (
	"fmt"
	"io"
)

// branch splits its keys on the single bit set in mask.
type branch[K, V any] struct {
	control

	// prefix holds the bits shared by all the keys under the branch (the bits
	// above the mask bit, the rest cleared)
	prefix uint64
	// mask contains the single bit the branch looks at
	mask uint64

	left  handle[K, V] // mask bit is 0
	right handle[K, V] // mask bit is 1
}

func newBranch[K, V any](prefix, mask uint64, left, right handle[K, V]) handle[K, V] {
	return newHandle[K, V](&branch[K, V]{prefix: prefix, mask: mask, left: left, right: right})
}

// buildBranch joins two subtrees whose prefixes must differ. Both handles are
// moved into the new branch.
func buildBranch[K, V any](prefix1 uint64, node1 handle[K, V], prefix2 uint64, node2 handle[K, V]) handle[K, V] {
	mask := branchingBit(prefix1, prefix2)
	prefix := maskToPrefix(prefix1, mask)

	if goesLeft(prefix1, mask) {
		return newBranch(prefix, mask, node1, node2)
	}
	return newBranch(prefix, mask, node2, node1)
}

// slots returns the child a key descends into and its sibling.
func (b *branch[K, V]) slots(bits uint64) (next, other *handle[K, V]) {
	if goesLeft(bits, b.mask) {
		return &b.left, &b.right
	}
	return &b.right, &b.left
}

// with returns a new branch like b but with the next slot holding child; the
// sibling gets shared.
func (b *branch[K, V]) with(bits uint64, child handle[K, V]) handle[K, V] {
	if goesLeft(bits, b.mask) {
		return newBranch(b.prefix, b.mask, child, b.right.share())
	}
	return newBranch(b.prefix, b.mask, b.left.share(), child)
}

// insertBeside splices a leaf for the key next to the whole subtree when the key
// lies outside of it.
func (b *branch[K, V]) insertBeside(h handle[K, V], bits uint64, key K, val V) (handle[K, V], *leaf[K, V], bool) {
	nl := newLeaf(bits, key, val)

	return buildBranch(bits, nl, b.prefix, h), nl.node.(*leaf[K, V]), true
}

func (b *branch[K, V]) insertUnique(h handle[K, V], bits uint64, key K, val V) (handle[K, V], *leaf[K, V], bool) {
	if !matches(bits, b.prefix, b.mask) {
		return b.insertBeside(h, bits, key, val)
	}

	var (
		next, _  = b.slots(bits)
		lf       *leaf[K, V]
		inserted bool
	)

	// the child decides on its own whether it may be changed in place
	*next, lf, inserted = next.take().insert(bits, key, val)

	return h, lf, inserted
}

func (b *branch[K, V]) insertShared(h handle[K, V], bits uint64, key K, val V) (handle[K, V], *leaf[K, V], bool) {
	if !matches(bits, b.prefix, b.mask) {
		return b.insertBeside(h, bits, key, val)
	}

	next, _ := b.slots(bits)

	// everything below a shared node is reachable from another tree as well
	child, lf, inserted := next.node.insertShared(next.share(), bits, key, val)
	if !inserted {
		// nothing has changed - the child came back untouched
		child.drop()
		return h, lf, false
	}

	nb := b.with(bits, child)
	h.drop()

	return nb, lf, true
}

func (b *branch[K, V]) find(bits uint64) *leaf[K, V] {
	if !matches(bits, b.prefix, b.mask) {
		return nil
	}
	next, _ := b.slots(bits)

	return next.node.find(bits)
}

func (b *branch[K, V]) eraseUnique(h handle[K, V], bits uint64) (handle[K, V], int) {
	if !matches(bits, b.prefix, b.mask) {
		return h, 0
	}

	next, other := b.slots(bits)

	child, removed := next.take().erase(bits)
	if child.isEmpty() {
		// collapse: the sibling replaces this branch
		rest := other.take()
		h.drop()
		return rest, removed
	}
	*next = child

	return h, removed
}

func (b *branch[K, V]) eraseShared(h handle[K, V], bits uint64) (handle[K, V], int) {
	if !matches(bits, b.prefix, b.mask) {
		return h, 0
	}

	next, other := b.slots(bits)

	child, removed := next.node.eraseShared(next.share(), bits)
	if removed == 0 {
		child.drop()
		return h, 0
	}
	if child.isEmpty() {
		rest := other.share()
		h.drop()
		return rest, removed
	}

	nb := b.with(bits, child)
	h.drop()

	return nb, removed
}

func (b *branch[K, V]) dispose() {
	b.left.take().drop()
	b.right.take().drop()
}

func (b *branch[K, V]) dump(w io.Writer, uses uint32, tag, indent string) {
	fmt.Fprintf(w, "%s%s NODE pfx=%#x bit=%d uses=%d\n", indent, tag, b.prefix, bitIndex(b.mask), uses)

	b.left.node.dump(w, b.left.useCount(), "L:", indent+"  ")
	b.right.node.dump(w, b.right.useCount(), "R:", indent+"  ")
}
