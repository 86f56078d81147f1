// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Iterator - position within a tree, invalidated by any modification
// of the tree
type Iterator[K, V any] struct {
	tree  *Tree[K, V]
	index int
}

// First - iterator at the node with the lowest key value
func (tree *Tree[K, V]) First() *Iterator[K, V] {
	return &Iterator[K, V]{tree: tree, index: tree.first(tree.root)}
}

// Last - iterator at the node with the highest key value
func (tree *Tree[K, V]) Last() *Iterator[K, V] {
	return &Iterator[K, V]{tree: tree, index: tree.last(tree.root)}
}

// Keys - all keys in ascending order
func (tree *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, len(tree.store))
	for it := tree.First(); it.Valid(); it.Next() {
		keys = append(keys, it.Key())
	}
	return keys
}

// internal: lowest node in a sub-tree
func (tree *Tree[K, V]) first(p int) int {
	if none == p {
		return none
	}
	for none != tree.store[p].left {
		p = tree.store[p].left
	}
	return p
}

// internal: highest node in a sub-tree
func (tree *Tree[K, V]) last(p int) int {
	if none == p {
		return none
	}
	for none != tree.store[p].right {
		p = tree.store[p].right
	}
	return p
}

// Valid - false once the iterator has moved past either end
func (it *Iterator[K, V]) Valid() bool {
	return none != it.index
}

// Next - move to the node with the next highest key value
func (it *Iterator[K, V]) Next() {
	if none == it.index {
		return
	}
	tree := it.tree
	p := it.index
	if none != tree.store[p].right {
		it.index = tree.first(tree.store[p].right)
		return
	}
	for {
		up := tree.store[p].up
		if none == up || p == tree.store[up].left {
			it.index = up
			return
		}
		p = up
	}
}

// Prev - move to the node with the next lowest key value
func (it *Iterator[K, V]) Prev() {
	if none == it.index {
		return
	}
	tree := it.tree
	p := it.index
	if none != tree.store[p].left {
		it.index = tree.last(tree.store[p].left)
		return
	}
	for {
		up := tree.store[p].up
		if none == up || p == tree.store[up].right {
			it.index = up
			return
		}
		p = up
	}
}

// Key - key at the current position
func (it *Iterator[K, V]) Key() K {
	return it.tree.node(it.index).key
}

// Value - value at the current position
func (it *Iterator[K, V]) Value() V {
	return it.tree.node(it.index).value
}

// Node - copy of the node at the current position
func (it *Iterator[K, V]) Node() Node[K, V] {
	return *it.tree.node(it.index)
}
