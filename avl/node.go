// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree, the links are indexes into the tree's store
type Node[K, V any] struct {
	key     K    // key part for ordering
	value   V    // value part for data storage
	balance int8 // -1, 0, +1
	left    int  // left sub-tree
	right   int  // right sub-tree
	up      int  // parent node, for navigation only
}

// which child of a parent, doubling as the sign of the balance change
// caused by growing that sub-tree
type side int8

const (
	leftSide  side = -1
	rightSide side = +1
)

// Key - read the key from a node item
func (p Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node item
func (p Node[K, V]) Value() V {
	return p.value
}

// Balance - height of right sub-tree minus height of left sub-tree
func (p Node[K, V]) Balance() int8 {
	return p.balance
}

// HasLeft - true if node had a left sub-tree when copied
func (p Node[K, V]) HasLeft() bool {
	return none != p.left
}

// HasRight - true if node had a right sub-tree when copied
func (p Node[K, V]) HasRight() bool {
	return none != p.right
}

// IsRoot - true if node had no parent when copied
func (p Node[K, V]) IsRoot() bool {
	return none == p.up
}

// a copy of a node that no longer belongs to any tree
func (p Node[K, V]) detached() Node[K, V] {
	p.left = none
	p.right = none
	p.up = none
	p.balance = 0
	return p
}

// placeholder returned with a false result
func nothing[K, V any]() Node[K, V] {
	return Node[K, V]{}.detached()
}
