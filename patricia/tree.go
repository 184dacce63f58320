package patricia

import "fmt"

// noCopy makes `go vet` complain about a Tree copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Tree is a persistent map. The zero value is not usable: create one with New,
// NewPointer or NewWithKeyer.
//
// A Tree must not be copied by value (both copies would believe they own the
// nodes alone). Use Clone instead.
type Tree[K, V any] struct {
	_ noCopy

	keyer Keyer[K]
	root  handle[K, V]
	size  int
}

// Len returns the number of keys in the tree.
func (t *Tree[K, V]) Len() int {
	return t.size
}

func (t *Tree[K, V]) Empty() bool {
	return t.root.isEmpty()
}

// Insert adds the key with the value unless the key is already present; an
// existing value is never overwritten. It returns a cursor to the entry stored
// under the key and whether the insertion took place.
func (t *Tree[K, V]) Insert(key K, val V) (Cursor[K, V], bool) {
	bits := t.keyer.Bits(key)

	if t.root.isEmpty() {
		t.root = newLeaf(bits, key, val)
		t.size++
		return Cursor[K, V]{t.root.node.(*leaf[K, V])}, true
	}

	var (
		lf       *leaf[K, V]
		inserted bool
	)

	t.root, lf, inserted = t.root.take().insert(bits, key, val)
	if inserted {
		t.size++
	}

	return Cursor[K, V]{lf}, inserted
}

// Find returns a cursor to the entry of the key, or End() if there is none.
func (t *Tree[K, V]) Find(key K) Cursor[K, V] {
	if t.root.isEmpty() {
		return End[K, V]()
	}
	return Cursor[K, V]{t.root.node.find(t.keyer.Bits(key))}
}

// Get returns a value associated with the key.
func (t *Tree[K, V]) Get(key K) (val V, ok bool) {
	if c := t.Find(key); !c.IsEnd() {
		val = c.leaf.val
		ok = true
	}
	return
}

// At returns a value associated with the key or an error wrapping
// ErrOutOfRange if there is none.
func (t *Tree[K, V]) At(key K) (V, error) {
	val, ok := t.Get(key)
	if !ok {
		return val, fmt.Errorf("patricia: key %v: %w", key, ErrOutOfRange)
	}
	return val, nil
}

// Erase removes the key from the tree. It returns the number of removed
// entries: 1 or 0.
func (t *Tree[K, V]) Erase(key K) int {
	if t.root.isEmpty() {
		return 0
	}

	var removed int

	t.root, removed = t.root.take().erase(t.keyer.Bits(key))
	t.size -= removed

	return removed
}

// Clear removes all the keys. Nodes still shared with other trees stay intact.
func (t *Tree[K, V]) Clear() {
	t.root.take().drop()
	t.size = 0
}

// Clone returns a copy of the tree in O(1). The trees share all their nodes
// until either one is changed; changes are never visible in the other one.
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	return &Tree[K, V]{
		keyer: t.keyer,
		root:  t.root.share(),
		size:  t.size,
	}
}

// InsertPersist is similar to Insert but the receiver isn't modified.
//
// The nodes on the path to the key are copied into a new Tree, all the others
// are referenced from both trees.
func (t *Tree[K, V]) InsertPersist(key K, val V) *Tree[K, V] {
	pt := t.Clone()
	pt.Insert(key, val)

	return pt
}

// ErasePersist is similar to Erase but the receiver isn't modified.
func (t *Tree[K, V]) ErasePersist(key K) *Tree[K, V] {
	pt := t.Clone()
	pt.Erase(key)

	return pt
}
