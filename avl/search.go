// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific item
func (tree *Tree[K, V]) Search(key K) (Node[K, V], bool) {
	p := tree.find(key)
	if none == p {
		return nothing[K, V](), false
	}
	return tree.store[p], true
}

// Lookup - value associated with a key
func (tree *Tree[K, V]) Lookup(key K) (V, bool) {
	p := tree.find(key)
	if none == p {
		var zero V
		return zero, false
	}
	return tree.store[p].value, true
}

func (tree *Tree[K, V]) find(key K) int {
	_, _, found := tree.descend(key)
	return found
}

// internal: follow the search path for key
//
// returns the index of the node holding key, or none together with the
// last node on the path and the side where key would be attached
func (tree *Tree[K, V]) descend(key K) (parent int, s side, found int) {
	parent = none
	for p := tree.root; none != p; {
		n := &tree.store[p]
		c := tree.compare(key, n.key)
		switch {
		case c < 0: // key < n.key
			parent, s, p = p, leftSide, n.left
		case c > 0: // key > n.key
			parent, s, p = p, rightSide, n.right
		default:
			return parent, s, p
		}
	}
	return parent, s, none
}
