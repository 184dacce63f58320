package patricia

import "unsafe"

// Integer is the set of key types a Tree can be keyed by with IntegerKeyer.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Keyer converts a key into the 64-bit pattern the trie is built on.
//
// Distinct keys must give distinct patterns: the trie compares patterns only.
type Keyer[K any] interface {
	Bits(key K) uint64
}

// IntegerKeyer uses the key's own bits. Signed keys are sign-extended, which
// keeps them distinct.
type IntegerKeyer[K Integer] struct{}

func (IntegerKeyer[K]) Bits(key K) uint64 {
	return uint64(key)
}

// PointerKeyer keys by identity: the address bits of the pointer.
//
// The garbage collector does not move heap objects, and a pointer stored in a
// Tree keeps its target alive, so the address is stable for as long as it is a
// key.
type PointerKeyer[T any] struct{}

func (PointerKeyer[T]) Bits(key *T) uint64 {
	return uint64(uintptr(unsafe.Pointer(key)))
}

// New returns an empty Tree keyed by an integer type.
func New[K Integer, V any]() *Tree[K, V] {
	return NewWithKeyer[K, V](IntegerKeyer[K]{})
}

// NewPointer returns an empty Tree keyed by pointer identity.
func NewPointer[T, V any]() *Tree[*T, V] {
	return NewWithKeyer[*T, V](PointerKeyer[T]{})
}

// NewWithKeyer returns an empty Tree using the given key conversion.
func NewWithKeyer[K, V any](keyer Keyer[K]) *Tree[K, V] {
	return &Tree[K, V]{keyer: keyer}
}
