package patricia

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTree012 returns a trie of the shape:
//
//	[mask:0b10] --+-- [mask:0b01] --+-- [leaf:0]
//	              |                 `-- [leaf:1]
//	              `-- [leaf:2]
func newTree012(t *testing.T) *Tree[uint, string] {
	t.Helper()

	tree := New[uint, string]()
	tree.Insert(0, "0")
	tree.Insert(1, "1")
	tree.Insert(2, "2")

	root, ok := tree.root.node.(*branch[uint, string])
	require.True(t, ok)
	require.EqualValues(t, 0b10, root.mask)
	require.IsType(t, &branch[uint, string]{}, root.left.node)
	require.IsType(t, &leaf[uint, string]{}, root.right.node)
	checkTree(t, tree)

	return tree
}

func TestLeaf_InsertSameKey(t *testing.T) {
	t.Parallel()

	var (
		h           = newLeaf[uint, string](7, 7, "old")
		lf          = h.node.(*leaf[uint, string])
		nh, got, ok = h.insert(7, 7, "new")
	)

	assert.False(t, ok)
	assert.Same(t, lf, nh.node)
	assert.Same(t, lf, got)
	assert.Equal(t, "old", got.val)
	assert.EqualValues(t, 1, nh.useCount())
}

func TestLeaf_InsertOtherKey(t *testing.T) {
	t.Parallel()

	var (
		h            = newLeaf[uint, string](0b100, 4, "four")
		nh, got, ok  = h.insert(0b110, 6, "six")
		br, isBranch = nh.node.(*branch[uint, string])
	)

	require.True(t, ok)
	require.True(t, isBranch)
	assert.EqualValues(t, 0b010, br.mask)
	assert.EqualValues(t, 0b100, br.prefix)
	assert.Same(t, h.node, br.left.node)
	assert.Same(t, got, br.right.node)
	assert.Equal(t, "six", got.val)
}

func TestLeaf_Erase(t *testing.T) {
	t.Parallel()

	h := newLeaf[uint, string](5, 5, "five")

	nh, removed := h.erase(4)

	assert.Zero(t, removed)
	assert.Same(t, h.node, nh.node)

	nh, removed = h.erase(5)

	assert.Equal(t, 1, removed)
	assert.True(t, nh.isEmpty())
	assert.Zero(t, h.useCount())
}

func TestBranch_InsertUniqueInPlace(t *testing.T) {
	t.Parallel()

	var (
		tree   = newTree012(t)
		before = rootOf(tree)
	)

	_, ok := tree.Insert(3, "3")

	require.True(t, ok)
	assert.Same(t, before, rootOf(tree), "a unique root must be changed in place")
	assert.EqualValues(t, 1, tree.root.useCount())
	checkTree(t, tree)
}

func TestBranch_InsertOutsideSplices(t *testing.T) {
	t.Parallel()

	var (
		tree   = newTree012(t)
		before = rootOf(tree)
	)

	_, ok := tree.Insert(0b1000, "8")

	require.True(t, ok)

	root := tree.root.node.(*branch[uint, string])

	assert.EqualValues(t, 0b1000, root.mask)
	assert.Same(t, before, root.left.node, "the old root hangs under the new one")
	checkTree(t, tree)
}

func TestBranch_InsertSharedCopiesPath(t *testing.T) {
	t.Parallel()

	var (
		tree  = newTree012(t)
		old   = tree.root.node.(*branch[uint, string])
		clone = tree.Clone()
	)

	require.EqualValues(t, 2, tree.root.useCount())

	_, ok := clone.Insert(3, "3")

	require.True(t, ok)

	root := clone.root.node.(*branch[uint, string])

	assert.NotSame(t, old, root, "a shared root must be copied")
	assert.EqualValues(t, 1, tree.root.useCount())
	assert.EqualValues(t, 1, clone.root.useCount())

	// the untouched subtree is shared, the changed one is not
	assert.Same(t, old.left.node, root.left.node)
	assert.EqualValues(t, 2, old.left.useCount())
	assert.IsType(t, &leaf[uint, string]{}, old.right.node)
	assert.IsType(t, &branch[uint, string]{}, root.right.node)

	assert.True(t, tree.Find(3).IsEnd())
	assert.Equal(t, "3", clone.Find(3).Value())
	checkTree(t, tree)
	checkTree(t, clone)
}

func TestBranch_InsertSharedExistingKey(t *testing.T) {
	t.Parallel()

	var (
		tree  = newTree012(t)
		old   = rootOf(tree)
		clone = tree.Clone()
	)

	cur, ok := clone.Insert(1, "one")

	assert.False(t, ok)
	assert.Equal(t, "1", cur.Value())
	assert.Same(t, old, rootOf(clone), "nothing to copy")
	assert.EqualValues(t, 2, tree.root.useCount())
	assert.EqualValues(t, 1, tree.root.node.(*branch[uint, string]).left.useCount())
}

func TestBranch_InsertBelowSharedChild(t *testing.T) {
	t.Parallel()

	var (
		tree  = newTree012(t)
		clone = tree.Clone()
	)

	// copy the root of the clone so that the trees share the subtrees only
	clone.Insert(3, "3")

	var (
		root   = rootOf(tree)
		shared = tree.root.node.(*branch[uint, string]).right
	)

	require.EqualValues(t, 1, tree.root.useCount())
	require.EqualValues(t, 2, shared.useCount())

	_, ok := tree.Insert(3, "three")

	require.True(t, ok)
	assert.Same(t, root, rootOf(tree), "the unique root is changed in place")
	assert.EqualValues(t, 2, shared.useCount(), "the shared leaf is referenced from both trees")
	assert.Equal(t, "three", tree.Find(3).Value())
	assert.Equal(t, "3", clone.Find(3).Value())
	checkTree(t, tree)
	checkTree(t, clone)
}

func TestBranch_EraseUniqueCollapses(t *testing.T) {
	t.Parallel()

	var (
		tree = newTree012(t)
		old  = tree.root.node.(*branch[uint, string])
		left = old.left.node
	)

	assert.Equal(t, 1, tree.Erase(2))
	assert.Same(t, left, rootOf(tree), "the sibling replaces the branch")
	assert.EqualValues(t, 1, tree.root.useCount())
	assert.True(t, old.left.isEmpty())
	assert.True(t, old.right.isEmpty())
	checkTree(t, tree)
}

func TestBranch_EraseUniqueInPlace(t *testing.T) {
	t.Parallel()

	var (
		tree   = newTree012(t)
		before = rootOf(tree)
	)

	assert.Equal(t, 1, tree.Erase(0))
	assert.Same(t, before, rootOf(tree))

	root := tree.root.node.(*branch[uint, string])

	assert.IsType(t, &leaf[uint, string]{}, root.left.node)
	assert.Equal(t, "1", tree.Find(1).Value())
	checkTree(t, tree)
}

func TestBranch_EraseShared(t *testing.T) {
	t.Parallel()

	var (
		tree  = newTree012(t)
		old   = tree.root.node.(*branch[uint, string])
		clone = tree.Clone()
	)

	assert.Equal(t, 1, clone.Erase(0))
	assert.NotSame(t, old, rootOf(clone))
	assert.Same(t, old.right.node, clone.root.node.(*branch[uint, string]).right.node)
	assert.EqualValues(t, 2, old.right.useCount())

	assert.Equal(t, "0", tree.Find(0).Value())
	assert.True(t, clone.Find(0).IsEnd())
	checkTree(t, tree)
	checkTree(t, clone)

	// collapse on a shared path returns the shared sibling
	assert.Equal(t, 1, clone.Erase(2))
	assert.IsType(t, &leaf[uint, string]{}, clone.root.node)
	assert.Same(t, tree.Find(1).leaf, clone.Find(1).leaf)
	checkTree(t, tree)
	checkTree(t, clone)
}

func TestBranch_EraseSharedMiss(t *testing.T) {
	t.Parallel()

	var (
		tree  = newTree012(t)
		old   = rootOf(tree)
		clone = tree.Clone()
	)

	assert.Zero(t, clone.Erase(3))
	assert.Zero(t, clone.Erase(0b1000))
	assert.Same(t, old, rootOf(clone))
	assert.EqualValues(t, 2, tree.root.useCount())
	assert.EqualValues(t, 1, tree.root.node.(*branch[uint, string]).left.useCount())
}

func TestBranch_Find(t *testing.T) {
	t.Parallel()

	tree := newTree012(t)

	for key, exp := range map[uint]string{0: "0", 1: "1", 2: "2"} {
		assert.Equal(t, exp, tree.Find(key).Value())
	}
	for _, key := range []uint{3, 4, 0b1000, ^uint(0)} {
		assert.True(t, tree.Find(key).IsEnd(), key)
	}
}
