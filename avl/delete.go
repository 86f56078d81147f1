// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Delete - removes a specific item from the tree keeping only the
// binary search order
//
// returns a copy of the removed key and value, or false if the key was
// not in the tree
func (tree *Tree[K, V]) Delete(key K) (Node[K, V], bool) {
	removed, slot, _, _, ok := tree.detach(key)
	if !ok {
		tree.warnf("delete: key: %v not in tree", key)
		return nothing[K, V](), false
	}
	tree.removeCarefully(slot)
	return removed, true
}

// DeleteBalanced - removes a specific item from the tree and
// rebalances the tree
//
// returns a copy of the removed key and value, or false if the key was
// not in the tree
func (tree *Tree[K, V]) DeleteBalanced(key K) (Node[K, V], bool) {
	removed, slot, parent, s, ok := tree.detach(key)
	if !ok {
		tree.warnf("delete: key: %v not in tree", key)
		return nothing[K, V](), false
	}
	tree.retraceDelete(parent, s)
	tree.removeCarefully(slot)
	return removed, true
}

// internal: unlink the node holding key from the tree structure
//
// a node with two children takes the key and value of its in-order
// predecessor, and the predecessor is unlinked instead; the unlinked
// node's slot is returned along with its former parent and the side of
// that parent which lost a node, its storage is still in use
func (tree *Tree[K, V]) detach(key K) (removed Node[K, V], slot int, parent int, s side, ok bool) {
	_, _, target := tree.descend(key)
	if none == target {
		return nothing[K, V](), none, none, 0, false
	}
	removed = tree.store[target].detached()

	slot = target
	if t := tree.node(target); none != t.left && none != t.right {
		pred := t.left
		for none != tree.node(pred).right {
			pred = tree.node(pred).right
		}
		t.key = tree.node(pred).key
		t.value = tree.node(pred).value
		slot = pred
	}

	n := tree.node(slot)
	c := n.left
	if none == c {
		c = n.right
	}

	parent = n.up
	if none == parent {
		tree.root = c
	} else {
		s = tree.sideOf(slot)
		tree.setChild(parent, s, c)
	}
	if none != c {
		tree.node(c).up = parent
	}

	n.left = none
	n.right = none
	n.up = none
	return removed, slot, parent, s, true
}

// walk up from the parent of an unlinked node adjusting balance
// factors until a sub-tree is found whose height did not change
func (tree *Tree[K, V]) retraceDelete(p int, s side) {
	for none != p {
		n := tree.node(p)
		n.balance -= int8(s)

		switch n.balance {
		case -1, +1: // was level, height unchanged
			return
		case 0: // taller side was reduced, so this sub-tree shrank
		case -2, +2:
			top, shorter := tree.rebalance(p)
			if !shorter {
				return
			}
			p = top
		default:
			fault.Panicf("avl: delete: node: %d has balance: %d", p, n.balance)
		}

		if none == tree.node(p).up {
			return
		}
		s = tree.sideOf(p)
		p = tree.node(p).up
	}
}
