// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/avl/mocks"
)

func value(key int) string {
	return fmt.Sprintf("data:%d", key)
}

func buildUnbalanced(t *testing.T, keys ...int) *Tree[int, string] {
	t.Helper()
	tree := New[int, string]()
	for _, k := range keys {
		_, ok := tree.Insert(k, value(k))
		require.True(t, ok, "insert: %d failed", k)
	}
	return tree
}

func buildBalanced(t *testing.T, keys ...int) *Tree[int, string] {
	t.Helper()
	tree := New[int, string]()
	for _, k := range keys {
		_, ok := tree.InsertBalanced(k, value(k))
		require.True(t, ok, "insert: %d failed", k)
		require.Nil(t, tree.VerifyBalance(), "inconsistent tree after insert: %d", k)
	}
	return tree
}

func render(tree *Tree[int, string]) string {
	var buffer bytes.Buffer
	tree.Fprint(&buffer, true, nil)
	return buffer.String()
}

func keyAt(t *testing.T, tree *Tree[int, string], p int) int {
	t.Helper()
	require.NotEqual(t, none, p, "missing node")
	return tree.store[p].key
}

func TestEmptyTree(t *testing.T) {
	tree := New[int, string]()
	assert.True(t, tree.IsEmpty(), "new tree not empty")
	assert.Equal(t, 0, tree.Count(), "wrong count")
	assert.Equal(t, 0, tree.Height(), "wrong height")
	_, ok := tree.Root()
	assert.False(t, ok, "empty tree has root")
	_, ok = tree.Lookup(1)
	assert.False(t, ok, "lookup found key in empty tree")
	assert.False(t, tree.First().Valid(), "first valid in empty tree")
	assert.False(t, tree.Last().Valid(), "last valid in empty tree")
	assert.Nil(t, tree.VerifyBalance(), "empty tree inconsistent")
	assert.Equal(t, 0, tree.Fprint(&bytes.Buffer{}, false, nil), "wrong empty depth")
}

// insert 0 8 -8 4 12, then lookups
func TestUnbalancedInsertLookup(t *testing.T) {
	tree := buildUnbalanced(t, 0, 8, -8, 4, 12)

	v, ok := tree.Lookup(4)
	assert.True(t, ok, "lookup: 4 not found")
	assert.Equal(t, value(4), v, "wrong value")

	_, ok = tree.Lookup(5)
	assert.False(t, ok, "lookup: 5 found")

	assert.Equal(t, 0, keyAt(t, tree, tree.root), "wrong root")
	r := tree.store[tree.root]
	assert.Equal(t, -8, keyAt(t, tree, r.left), "wrong left of root")
	assert.Equal(t, 8, keyAt(t, tree, r.right), "wrong right of root")
	eight := tree.store[r.right]
	assert.Equal(t, 4, keyAt(t, tree, eight.left), "wrong left of 8")
	assert.Equal(t, 12, keyAt(t, tree, eight.right), "wrong right of 8")

	for i := range tree.store {
		assert.Equal(t, int8(0), tree.store[i].balance, "unbalanced insert touched balance")
	}
	assert.Nil(t, tree.Verify(), "inconsistent tree")
}

// insert 0 8 -8 4 12, then delete the leaf 12
func TestUnbalancedDeleteLeaf(t *testing.T) {
	tree := buildUnbalanced(t, 0, 8, -8, 4, 12)

	removed, ok := tree.Delete(12)
	require.True(t, ok, "delete: 12 failed")
	assert.Equal(t, 12, removed.Key(), "wrong removed key")
	assert.Equal(t, value(12), removed.Value(), "wrong removed value")
	assert.False(t, removed.HasLeft() || removed.HasRight() || !removed.IsRoot(), "removed node still linked")

	_, ok = tree.Lookup(12)
	assert.False(t, ok, "deleted key still found")

	eight, ok := tree.Search(8)
	require.True(t, ok, "search: 8 failed")
	assert.False(t, eight.HasRight(), "8 still has right child")
	assert.True(t, eight.HasLeft(), "8 lost left child")

	assert.Equal(t, 4, tree.Count(), "wrong count")
	assert.Equal(t, 4, len(tree.store), "store not compacted")
	assert.Nil(t, tree.Verify(), "inconsistent tree")
}

func TestUnbalancedDeleteOneChild(t *testing.T) {
	tree := buildUnbalanced(t, 0, 8, -8, 4)

	_, ok := tree.Delete(8)
	require.True(t, ok, "delete: 8 failed")
	r := tree.store[tree.root]
	assert.Equal(t, 4, keyAt(t, tree, r.right), "child not spliced up")
	assert.Equal(t, []int{-8, 0, 4}, tree.Keys(), "wrong keys")
	assert.Nil(t, tree.Verify(), "inconsistent tree")
}

// insert 0 -32 32 -64 64 balanced, then delete all of them
func TestBalancedDeleteToEmpty(t *testing.T) {
	tree := buildBalanced(t, 0, -32, 32, -64, 64)

	for i, k := range []int{64, 32, -32, -64, 0} {
		removed, ok := tree.DeleteBalanced(k)
		require.True(t, ok, "delete: %d failed", k)
		assert.Equal(t, k, removed.Key(), "wrong removed key")
		assert.Equal(t, 4-i, len(tree.store), "wrong store size")
		require.Nil(t, tree.VerifyBalance(), "inconsistent tree after delete: %d", k)
	}

	assert.True(t, tree.IsEmpty(), "tree not empty")
	assert.Equal(t, none, tree.root, "root not cleared")
	assert.Equal(t, 0, len(tree.store), "store not empty")
}

// balance stays in range over many random insertions
func TestBalancedRandomInsert(t *testing.T) {
	rng := rand.New(rand.NewSource(20200101))
	tree := New[int, string]()

	for i := 0; i < 1000; i += 1 {
		k := rng.Intn(100000)
		tree.InsertBalanced(k, value(k))

		lowest, highest := tree.BalanceRange()
		require.True(t, highest < 2, "max balance: %d after %d inserts", highest, i)
		require.True(t, lowest > -2, "min balance: %d after %d inserts", lowest, i)
	}
	assert.Nil(t, tree.VerifyBalance(), "inconsistent tree")
}

// deletion retrace exercised against recomputed heights
func TestBalancedRandomInsertDelete(t *testing.T) {
	rng := rand.New(rand.NewSource(31337))

	for round := 0; round < 20; round += 1 {
		tree := New[int, string]()
		present := make(map[int]struct{})

		for step := 0; step < 600; step += 1 {
			k := rng.Intn(300)
			if _, ok := present[k]; ok && rng.Intn(3) > 0 {
				_, deleted := tree.DeleteBalanced(k)
				require.True(t, deleted, "delete: %d failed", k)
				delete(present, k)
			} else {
				_, added := tree.InsertBalanced(k, value(k))
				_, existed := present[k]
				require.Equal(t, !existed, added, "insert: %d wrong result", k)
				present[k] = struct{}{}
			}
			require.Nil(t, tree.VerifyBalance(), "round: %d step: %d inconsistent tree", round, step)
			require.Equal(t, len(present), tree.Count(), "wrong count")
		}

		for k := range present {
			v, ok := tree.Lookup(k)
			require.True(t, ok, "key: %d missing", k)
			require.Equal(t, value(k), v, "wrong value")
		}
	}
}

// delete a node with two children, the predecessor takes its slot
func TestBalancedDeleteTwoChildren(t *testing.T) {
	tree := buildBalanced(t, 50, 30, 70, 20, 40, 60, 80)
	slot := tree.find(30)
	require.Equal(t, 1, slot, "unexpected slot")

	removed, ok := tree.DeleteBalanced(30)
	require.True(t, ok, "delete: 30 failed")
	assert.Equal(t, 30, removed.Key(), "wrong removed key")
	assert.Equal(t, value(30), removed.Value(), "wrong removed value")

	assert.Equal(t, slot, tree.find(20), "predecessor not copied into slot")
	assert.Equal(t, value(20), tree.store[slot].value, "predecessor value not copied")
	assert.Equal(t, none, tree.store[slot].left, "predecessor left behind")
	assert.Equal(t, 40, keyAt(t, tree, tree.store[slot].right), "right sub-tree lost")
	assert.Equal(t, int8(+1), tree.store[slot].balance, "wrong balance")

	// the last node was moved into the predecessor's old slot
	assert.Equal(t, 3, tree.find(80), "last node not moved")

	assert.Equal(t, []int{20, 40, 50, 60, 70, 80}, tree.Keys(), "wrong keys")
	assert.Nil(t, tree.VerifyBalance(), "inconsistent tree")
}

func TestInsertSingleRotation(t *testing.T) {
	tree := buildBalanced(t, 10, 20, 30)
	assert.Equal(t, 20, keyAt(t, tree, tree.root), "wrong root after left rotation")

	tree = buildBalanced(t, 30, 20, 10)
	assert.Equal(t, 20, keyAt(t, tree, tree.root), "wrong root after right rotation")
	for i := range tree.store {
		assert.Equal(t, int8(0), tree.store[i].balance, "wrong balance")
	}
}

func TestInsertDoubleRotation(t *testing.T) {
	tree := buildBalanced(t, 10, 30, 20)
	assert.Equal(t, 20, keyAt(t, tree, tree.root), "wrong root after right-left rotation")

	tree = buildBalanced(t, 30, 10, 20)
	assert.Equal(t, 20, keyAt(t, tree, tree.root), "wrong root after left-right rotation")

	// grandchild leaning each way before the rotation
	for _, last := range []int{25, 35} {
		tree = buildBalanced(t, 20, 10, 40, 30, 50, last)
		assert.Equal(t, 30, keyAt(t, tree, tree.root), "wrong root after inserting: %d", last)
	}
}

// sibling of the removed node is level: single rotation, height kept
func TestDeleteSingleRotationLevelChild(t *testing.T) {
	tree := buildBalanced(t, 20, 10, 30, 25, 35)

	_, ok := tree.DeleteBalanced(10)
	require.True(t, ok, "delete failed")

	root, _ := tree.Root()
	assert.Equal(t, 30, root.Key(), "wrong root")
	assert.Equal(t, int8(-1), root.Balance(), "wrong root balance")
	twenty, _ := tree.Search(20)
	assert.Equal(t, int8(+1), twenty.Balance(), "wrong balance")
	assert.Nil(t, tree.VerifyBalance(), "inconsistent tree")
}

// sibling of the removed node leans inwards: double rotation
func TestDeleteDoubleRotation(t *testing.T) {
	tree := buildBalanced(t, 20, 10, 30, 25)

	_, ok := tree.DeleteBalanced(10)
	require.True(t, ok, "delete failed")

	root, _ := tree.Root()
	assert.Equal(t, 25, root.Key(), "wrong root")
	for i := range tree.store {
		assert.Equal(t, int8(0), tree.store[i].balance, "wrong balance")
	}
	assert.Nil(t, tree.VerifyBalance(), "inconsistent tree")
}

// every entry of the rotation tables, in both directions, checked
// against recomputed heights
func TestRotationTables(t *testing.T) {
	items := []struct {
		name    string
		keys    []int
		deleted int
		root    int
	}{
		{"insert right same sign", []int{10, 20, 30}, none, 20},
		{"insert left same sign", []int{30, 20, 10}, none, 20},
		{"insert right grandchild level", []int{10, 30, 20}, none, 20},
		{"insert right grandchild left", []int{20, 10, 40, 30, 50, 25}, none, 30},
		{"insert right grandchild right", []int{20, 10, 40, 30, 50, 35}, none, 30},
		{"insert left grandchild level", []int{30, 10, 20}, none, 20},
		{"insert left grandchild left", []int{40, 50, 20, 10, 30, 25}, none, 30},
		{"insert left grandchild right", []int{40, 50, 20, 10, 30, 35}, none, 30},
		{"delete right same sign", []int{20, 10, 30, 40}, 10, 30},
		{"delete left same sign", []int{20, 10, 30, 5}, 30, 10},
		{"delete right child level", []int{20, 10, 30, 25, 35}, 10, 30},
		{"delete left child level", []int{20, 10, 30, 5, 15}, 30, 10},
		{"delete right grandchild level", []int{20, 10, 30, 25}, 10, 25},
		{"delete right grandchild left", []int{20, 10, 40, 5, 30, 50, 25}, 5, 30},
		{"delete right grandchild right", []int{20, 10, 40, 5, 30, 50, 35}, 5, 30},
		{"delete left grandchild level", []int{20, 10, 30, 15}, 30, 15},
		{"delete left grandchild left", []int{20, 30, 10, 35, 15, 5, 12}, 35, 15},
		{"delete left grandchild right", []int{20, 30, 10, 35, 15, 5, 17}, 35, 15},
	}

	for _, item := range items {
		tree := buildBalanced(t, item.keys...)
		if none != item.deleted {
			_, ok := tree.DeleteBalanced(item.deleted)
			require.True(t, ok, "%s: delete: %d failed", item.name, item.deleted)
		}
		assert.Nil(t, tree.VerifyBalance(), "%s: inconsistent tree", item.name)
		assert.Equal(t, item.root, keyAt(t, tree, tree.root), "%s: wrong root", item.name)
	}
}

// a deletion whose rotations continue up to the root
func TestDeleteRetraceToRoot(t *testing.T) {
	// a minimal AVL tree of height 5, deleting its shallowest leaf
	// shortens every level on the way up
	tree := buildBalanced(t, 8, 5, 11, 3, 7, 10, 12, 2, 4, 6, 9, 1)
	h := tree.Height()

	_, ok := tree.DeleteBalanced(12)
	require.True(t, ok, "delete failed")
	assert.Nil(t, tree.VerifyBalance(), "inconsistent tree")
	assert.Equal(t, h-1, tree.Height(), "height did not shrink")
}

func TestRotationPrimitives(t *testing.T) {
	tree := buildUnbalanced(t, 1, 2, 3)
	p := tree.root
	q := tree.store[p].right

	tree.rotateLeft(p, q)
	assert.Equal(t, q, tree.root, "root not updated")
	assert.Equal(t, p, tree.store[q].left, "wrong left")
	assert.Equal(t, int8(0), tree.store[p].balance, "rotation touched balance")
	assert.Nil(t, tree.Verify(), "inconsistent tree after rotate left")

	tree.rotateRight(q, p)
	assert.Equal(t, p, tree.root, "root not restored")
	assert.Nil(t, tree.Verify(), "inconsistent tree after rotate right")

	assert.Panics(t, func() { tree.rotateLeft(q, p) }, "rotate with wrong child did not panic")
	assert.Panics(t, func() { tree.rotateRight(p, q) }, "rotate with wrong child did not panic")
}

func TestRotateInsideSubtree(t *testing.T) {
	tree := buildUnbalanced(t, 10, 5, 20, 30, 40)
	p := tree.find(20)
	q := tree.find(30)

	tree.rotateLeft(p, q)
	assert.Equal(t, q, tree.store[tree.root].right, "parent link not updated")
	assert.Equal(t, tree.root, tree.store[q].up, "up link not updated")
	assert.Equal(t, []int{5, 10, 20, 30, 40}, tree.Keys(), "order changed")
	assert.Nil(t, tree.Verify(), "inconsistent tree")
}

// the root occupies the last slot and has to be moved
func TestRemoveCarefullyMovesRoot(t *testing.T) {
	tree := buildBalanced(t, 3, 1, 2)
	require.Equal(t, 2, tree.root, "root not in last slot")

	_, ok := tree.DeleteBalanced(1)
	require.True(t, ok, "delete failed")

	assert.Equal(t, 1, tree.root, "root not moved")
	assert.Equal(t, 2, tree.store[tree.root].key, "wrong root key")
	assert.Equal(t, 1, tree.store[tree.find(3)].up, "child up link not patched")
	assert.Nil(t, tree.VerifyBalance(), "inconsistent tree")
}

func TestRemoveCarefullyLastSlot(t *testing.T) {
	tree := buildUnbalanced(t, 2, 1, 3)
	_, ok := tree.Delete(3)
	require.True(t, ok, "delete failed")
	assert.Equal(t, 2, len(tree.store), "wrong store size")
	assert.Nil(t, tree.Verify(), "inconsistent tree")
}

func TestRemoveCarefullyBadIndex(t *testing.T) {
	tree := buildUnbalanced(t, 2, 1, 3)
	assert.Panics(t, func() { tree.removeCarefully(3) }, "bad index did not panic")
}

// failed operations leave the tree exactly as it was
func TestFailedOperationsUnchanged(t *testing.T) {
	tree := buildBalanced(t, 5, 3, 8, 1, 4, 7, 9)
	before := render(tree)

	_, ok := tree.InsertBalanced(4, "other")
	assert.False(t, ok, "duplicate balanced insert accepted")
	_, ok = tree.Insert(4, "other")
	assert.False(t, ok, "duplicate insert accepted")
	_, ok = tree.DeleteBalanced(6)
	assert.False(t, ok, "missing balanced delete succeeded")
	_, ok = tree.Delete(6)
	assert.False(t, ok, "missing delete succeeded")

	assert.Equal(t, before, render(tree), "tree changed")
	v, _ := tree.Lookup(4)
	assert.Equal(t, value(4), v, "duplicate overwrote value")
}

func TestDiagnostics(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	log := mocks.NewMockLogger(ctl)
	log.EXPECT().Warnf(gomock.Any(), 4).Times(1)
	log.EXPECT().Warnf(gomock.Any(), 6).Times(2)

	tree := buildBalanced(t, 5, 3, 8, 4)
	tree.SetLogger(log)

	tree.InsertBalanced(4, "silent")
	tree.Insert(4, "noisy")
	tree.Delete(6)
	tree.DeleteBalanced(6)
}

func TestVerifyReportsBrokenLinks(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	log := mocks.NewMockLogger(ctl)
	log.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()

	tree := buildBalanced(t, 2, 1, 3)
	tree.SetLogger(log)
	tree.store[tree.find(1)].up = tree.find(3)
	assert.Equal(t, "up link does not point to parent", tree.Verify().Error(), "wrong error")
	assert.False(t, tree.CheckUp(), "broken up link not detected")

	tree = buildBalanced(t, 2, 1, 3)
	tree.SetLogger(log)
	tree.store[tree.find(3)].balance = -1
	assert.Nil(t, tree.Verify(), "structure reported broken")
	assert.NotNil(t, tree.VerifyBalance(), "wrong balance not detected")
	assert.False(t, tree.CheckBalance(), "wrong balance not detected")

	tree = buildUnbalanced(t, 1, 2, 3)
	tree.SetLogger(log)
	assert.True(t, tree.CheckOrder(), "order reported broken")
	assert.False(t, tree.CheckBalance(), "chain reported balanced")

	tree = buildBalanced(t, 2, 1, 3)
	tree.SetLogger(log)
	tree.store[tree.find(1)].key = 9
	assert.False(t, tree.CheckOrder(), "order violation not detected")

	tree = buildBalanced(t, 2, 1, 3)
	tree.SetLogger(log)
	tree.store[tree.root].left = 7
	assert.False(t, tree.CheckStore(), "dangling index not detected")

	tree = buildBalanced(t, 2, 1, 3)
	tree.SetLogger(log)
	tree.store[tree.root].left = none
	assert.False(t, tree.CheckStore(), "unreachable node not detected")
}

func TestDepth(t *testing.T) {
	tree := buildBalanced(t, 1, 2, 3, 4, 5, 6, 7)
	for k, expected := range map[int]int{4: 0, 2: 1, 6: 1, 1: 2, 7: 2} {
		d, ok := tree.Depth(k)
		assert.True(t, ok, "depth: %d not found", k)
		assert.Equal(t, expected, d, "wrong depth of: %d", k)
	}
	_, ok := tree.Depth(8)
	assert.False(t, ok, "depth of missing key")
}

func TestPrint(t *testing.T) {
	tree := buildBalanced(t, 2, 1, 3)

	var buffer bytes.Buffer
	depth := tree.Fprint(&buffer, false, nil)
	assert.Equal(t, 2, depth, "wrong depth")
	expected := "       /------+ 3 ^2\n" +
		"|------+ 2 ^<nil>\n" +
		"       \\------+ 1 ^2\n"
	assert.Equal(t, expected, buffer.String(), "wrong drawing")

	buffer.Reset()
	tree.Fprint(&buffer, true, func(n Node[int, string], label string) string {
		return "[" + label + "]"
	})
	expected = "       /------+ [3 → data:3 ^2 +0]\n" +
		"|------+ [2 → data:2 ^<nil> +0]\n" +
		"       \\------+ [1 → data:1 ^2 +0]\n"
	assert.Equal(t, expected, buffer.String(), "wrong highlighted drawing")
}

func TestCustomOrder(t *testing.T) {
	reverse := func(a, b string) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		}
		return 0
	}
	tree := NewFunc[string, int](reverse)
	for i, k := range []string{"b", "d", "a", "c", "e"} {
		tree.InsertBalanced(k, i)
	}
	assert.Equal(t, []string{"e", "d", "c", "b", "a"}, tree.Keys(), "wrong order")
	assert.Nil(t, tree.VerifyBalance(), "inconsistent tree")

	assert.Panics(t, func() { NewFunc[string, int](nil) }, "nil compare accepted")
}
