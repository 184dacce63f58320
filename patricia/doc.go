// Package patricia defines a persistent map from fixed-width keys (integers or
// pointer identities) to arbitrary values, built as a binary PATRICIA trie over
// the key's bit pattern.
//
// Copying a Tree with Clone is O(1): both trees share every node. Nodes carry a
// use count, and a mutation walks down the trie deciding at every step whether
// the node it reached is owned by this path alone:
//
//   - unique node - it is changed in place, no allocation;
//   - shared node - a replacement node is allocated, the shared one is left
//     intact for the other owners.
//
// Node variants:
// -------------
//
//   - Leaf:    { uses, bits, key, val }
//   - Branch:  { uses, prefix, mask, left, right }
//
// A branch tests one bit of a key (the single set bit of mask). All keys under a
// branch agree with prefix above that bit; keys with the bit cleared live in
// left, keys with the bit set live in right. Masks strictly decrease along any
// root-to-leaf path, so the depth is bounded by the key width (64).
//
// Example trie:
// ------------
//
//	                                 ,-- [leaf:0b0000]
//	                ,-- [mask:0b0001] --+
//	                |                `-- [leaf:0b0001]
//	[mask:0b0010] --+
//	                |                ,-- [leaf:0b0010]
//	                `-- [mask:0b0001] --+
//	                                 `-- [leaf:0b0011]
//
// The trie above contains the keys 0, 1, 2 and 3.
//
// The trie is ordered by bit pattern, not by numeric value, and offers point
// lookups only: there is no iteration or range query.
//
// A Tree is not safe for concurrent use. Use counts are updated without
// synchronization, so even Clone must not race with other operations on the
// same nodes.
package patricia
