package patricia

import (
	"fmt"
	"io"
)

// leaf is a terminal entry. bits is the key's pattern as given by the Keyer.
type leaf[K, V any] struct {
	control

	bits uint64
	key  K
	val  V
}

func newLeaf[K, V any](bits uint64, key K, val V) handle[K, V] {
	return newHandle[K, V](&leaf[K, V]{bits: bits, key: key, val: val})
}

// insertUnique is the same as insertShared: a leaf is never changed in place.
func (l *leaf[K, V]) insertUnique(h handle[K, V], bits uint64, key K, val V) (handle[K, V], *leaf[K, V], bool) {
	return l.insertShared(h, bits, key, val)
}

func (l *leaf[K, V]) insertShared(h handle[K, V], bits uint64, key K, val V) (handle[K, V], *leaf[K, V], bool) {
	if bits == l.bits {
		// the key is already there - keep the stored value
		return h, l, false
	}
	// splice a new leaf beside this one
	nl := newLeaf(bits, key, val)

	return buildBranch(bits, nl, l.bits, h), nl.node.(*leaf[K, V]), true
}

func (l *leaf[K, V]) find(bits uint64) *leaf[K, V] {
	if bits != l.bits {
		return nil
	}
	return l
}

func (l *leaf[K, V]) eraseUnique(h handle[K, V], bits uint64) (handle[K, V], int) {
	return l.eraseShared(h, bits)
}

func (l *leaf[K, V]) eraseShared(h handle[K, V], bits uint64) (handle[K, V], int) {
	if bits != l.bits {
		return h, 0
	}
	// the parent collapses on an empty result
	h.drop()
	return handle[K, V]{}, 1
}

// dispose does nothing: a leaf holds no references and cursors may still point
// at it.
func (l *leaf[K, V]) dispose() {}

func (l *leaf[K, V]) dump(w io.Writer, uses uint32, tag, indent string) {
	fmt.Fprintf(w, "%s%s LEAF bits=%#x key=%v val=%v uses=%d\n", indent, tag, l.bits, l.key, l.val, uses)
}
