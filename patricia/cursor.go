package patricia

// Cursor refers to an entry of a Tree, or to nothing (the end cursor).
//
// Cursors are comparable: every absent result equals End(). A cursor stays
// readable after the entry was erased or the tree was cleared; it then shows the
// entry as it was.
type Cursor[K, V any] struct {
	leaf *leaf[K, V]
}

// End returns the cursor that refers to no entry.
func End[K, V any]() Cursor[K, V] {
	return Cursor[K, V]{}
}

func (c Cursor[K, V]) IsEnd() bool {
	return c.leaf == nil
}

// Key returns the key of the entry. It panics on the end cursor.
func (c Cursor[K, V]) Key() K {
	if c.leaf == nil {
		panic("patricia: Key of the end cursor")
	}
	return c.leaf.key
}

// Value returns (a copy of) the value of the entry. It panics on the end cursor.
func (c Cursor[K, V]) Value() V {
	if c.leaf == nil {
		panic("patricia: Value of the end cursor")
	}
	return c.leaf.val
}
