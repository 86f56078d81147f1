// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// balance factors after a single rotation, indexed by the heavy
// child's balance measured in the direction of the heavy side; the
// zero entry only arises during deletion and is the one case where
// the sub-tree keeps its height
var singleRotation = [2]struct {
	parent  int8
	child   int8
	shorter bool
}{
	{parent: +1, child: -1, shorter: false},
	{parent: 0, child: 0, shorter: true},
}

// balance factors after a double rotation, indexed by the
// grandchild's balance measured in the direction of the heavy side,
// plus one; the grandchild always ends up at zero and the sub-tree is
// always one level shorter
var doubleRotation = [3]struct {
	parent int8
	child  int8
}{
	{parent: 0, child: +1},
	{parent: 0, child: 0},
	{parent: -1, child: 0},
}

// rotateLeft - q is the right child of p, and takes p's place
//
//	  p              q
//	 / \            / \
//	a   q    =>    p   c
//	   / \        / \
//	  b   c      a   b
//
// balance factors are not changed
func (tree *Tree[K, V]) rotateLeft(p int, q int) {
	np := tree.node(p)
	nq := tree.node(q)
	if q != np.right {
		fault.Panicf("avl: rotate left: %d is not the right child of %d", q, p)
	}
	up := np.up

	b := nq.left
	np.right = b
	if none != b {
		tree.node(b).up = p
	}

	nq.left = p
	np.up = q
	nq.up = up
	tree.replaceChild(up, p, q)
}

// rotateRight - q is the left child of p, and takes p's place
//
//	    p          q
//	   / \        / \
//	  q   c  =>  a   p
//	 / \            / \
//	a   b          b   c
//
// balance factors are not changed
func (tree *Tree[K, V]) rotateRight(p int, q int) {
	np := tree.node(p)
	nq := tree.node(q)
	if q != np.left {
		fault.Panicf("avl: rotate right: %d is not the left child of %d", q, p)
	}
	up := np.up

	b := nq.right
	np.left = b
	if none != b {
		tree.node(b).up = p
	}

	nq.right = p
	np.up = q
	nq.up = up
	tree.replaceChild(up, p, q)
}

// lift q, the child on side s of p, into p's place
func (tree *Tree[K, V]) rotate(p int, q int, s side) {
	if rightSide == s {
		tree.rotateLeft(p, q)
	} else {
		tree.rotateRight(p, q)
	}
}

// restore the sub-tree rooted at p whose balance has reached ±2
//
// returns the new root of the sub-tree and whether the sub-tree is now
// one level shorter than it was when the balance reached ±2
func (tree *Tree[K, V]) rebalance(p int) (int, bool) {
	var s side
	switch tree.node(p).balance {
	case -2:
		s = leftSide
	case +2:
		s = rightSide
	default:
		fault.Panicf("avl: rebalance: node: %d has balance: %d", p, tree.node(p).balance)
	}
	sign := int8(s)

	q := tree.child(p, s)
	if none == q {
		fault.Panicf("avl: rebalance: node: %d is heavy on an empty side", p)
	}

	switch relative := tree.node(q).balance * sign; relative {
	case 0, +1: // single rotation
		tree.rotate(p, q, s)
		adj := singleRotation[relative]
		tree.node(p).balance = adj.parent * sign
		tree.node(q).balance = adj.child * sign
		return q, adj.shorter

	case -1: // double rotation: lift r over q, then over p
		r := tree.child(q, -s)
		if none == r {
			fault.Panicf("avl: rebalance: node: %d is heavy on an empty side", q)
		}
		adj := doubleRotation[tree.node(r).balance*sign+1]
		tree.rotate(q, r, -s)
		tree.rotate(p, r, s)
		tree.node(p).balance = adj.parent * sign
		tree.node(q).balance = adj.child * sign
		tree.node(r).balance = 0
		return r, true

	default:
		fault.Panicf("avl: rebalance: child: %d has balance: %d", q, tree.node(q).balance)
	}
	return none, false
}
