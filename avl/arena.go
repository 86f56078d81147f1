// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// append a new leaf to the store, returns its index
func (tree *Tree[K, V]) push(key K, value V, up int) int {
	tree.store = append(tree.store, Node[K, V]{
		key:     key,
		value:   value,
		balance: 0,
		left:    none,
		right:   none,
		up:      up,
	})
	return len(tree.store) - 1
}

// internal: checked access to a live node
func (tree *Tree[K, V]) node(i int) *Node[K, V] {
	if i < 0 || i >= len(tree.store) {
		fault.Panicf("avl: index: %d outside store of %d nodes", i, len(tree.store))
	}
	return &tree.store[i]
}

func (tree *Tree[K, V]) child(p int, s side) int {
	if leftSide == s {
		return tree.node(p).left
	}
	return tree.node(p).right
}

func (tree *Tree[K, V]) setChild(p int, s side, c int) {
	if leftSide == s {
		tree.node(p).left = c
	} else {
		tree.node(p).right = c
	}
}

// which side of its parent a non-root node hangs from
func (tree *Tree[K, V]) sideOf(i int) side {
	up := tree.node(i).up
	switch i {
	case tree.node(up).left:
		return leftSide
	case tree.node(up).right:
		return rightSide
	}
	fault.Panicf("avl: node: %d is not a child of its parent: %d", i, up)
	return 0
}

// make the link that pointed at old in up (or the root if up is none)
// point at replacement instead
func (tree *Tree[K, V]) replaceChild(up int, old int, replacement int) {
	if none == up {
		if old != tree.root {
			fault.Panicf("avl: parentless node: %d is not the root: %d", old, tree.root)
		}
		tree.root = replacement
		return
	}
	n := tree.node(up)
	switch old {
	case n.left:
		n.left = replacement
	case n.right:
		n.right = replacement
	default:
		fault.Panicf("avl: node: %d is not a child of: %d", old, up)
	}
}

// release the slot of a node that has already been unlinked from the
// tree, keeping the store dense by moving the last node into the hole
// and patching every link that referred to the moved node
func (tree *Tree[K, V]) removeCarefully(i int) {
	last := len(tree.store) - 1
	if i < 0 || i > last {
		fault.Panicf("avl: remove index: %d outside store of %d nodes", i, len(tree.store))
	}

	if i != last {
		moved := tree.store[last]
		tree.store[i] = moved

		tree.replaceChild(moved.up, last, i)
		if none != moved.left {
			tree.node(moved.left).up = i
		}
		if none != moved.right {
			tree.node(moved.right).up = i
		}
	}

	tree.store[last] = Node[K, V]{} // drop references held by key and value
	tree.store = tree.store[:last]
}
