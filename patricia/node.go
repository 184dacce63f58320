package patricia

import "io"

// node is implemented by *leaf and *branch only.
//
// The insert and erase methods consume h (the handle through which the node was
// reached) and return the handle that replaces it. The unique variants may only
// be called when h is the sole reference to the node.
type node[K, V any] interface {
	block() *control

	insertUnique(h handle[K, V], bits uint64, key K, val V) (handle[K, V], *leaf[K, V], bool)
	insertShared(h handle[K, V], bits uint64, key K, val V) (handle[K, V], *leaf[K, V], bool)

	find(bits uint64) *leaf[K, V]

	eraseUnique(h handle[K, V], bits uint64) (handle[K, V], int)
	eraseShared(h handle[K, V], bits uint64) (handle[K, V], int)

	// dispose is called once the use count drops to zero.
	dispose()

	dump(w io.Writer, uses uint32, tag, indent string)
}
