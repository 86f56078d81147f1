// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Insert - add a new node keeping only the binary search order
//
// returns a copy of the new node, or false if the key was already
// present in which case the tree is unchanged
func (tree *Tree[K, V]) Insert(key K, value V) (Node[K, V], bool) {
	p, added := tree.insert(key, value)
	if !added {
		tree.warnf("insert: key: %v already in tree", key)
		return nothing[K, V](), false
	}
	return tree.store[p], true
}

// InsertBalanced - add a new node and rebalance the tree
//
// returns a copy of the new node, or false if the key was already
// present in which case the tree is unchanged
func (tree *Tree[K, V]) InsertBalanced(key K, value V) (Node[K, V], bool) {
	p, added := tree.insert(key, value)
	if !added {
		return nothing[K, V](), false
	}
	tree.retraceInsert(p)
	return tree.store[p], true
}

// internal: link a new leaf below the last node on the search path
func (tree *Tree[K, V]) insert(key K, value V) (int, bool) {
	parent, s, found := tree.descend(key)
	if none != found {
		return found, false
	}

	p := tree.push(key, value, parent)
	if none == parent {
		tree.root = p
	} else {
		tree.setChild(parent, s, p)
	}
	return p, true
}

// walk up from a new leaf adjusting balance factors until a sub-tree
// is found whose height did not change
func (tree *Tree[K, V]) retraceInsert(p int) {
	child := p
	for up := tree.node(child).up; none != up; up = tree.node(child).up {
		n := tree.node(up)
		if child == n.left {
			n.balance -= 1
		} else {
			n.balance += 1
		}

		switch n.balance {
		case 0: // shorter side has caught up
			return
		case -1, +1: // this sub-tree has grown
			child = up
		case -2, +2: // rotation restores the height before insert
			tree.rebalance(up)
			return
		default:
			fault.Panicf("avl: insert: node: %d has balance: %d", up, n.balance)
		}
	}
}
