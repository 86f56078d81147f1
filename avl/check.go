// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Verify - check index validity, store density, the up links and the
// key order; the first failure is also reported to the logger
func (tree *Tree[K, V]) Verify() error {
	if err := tree.checkStore(); nil != err {
		return err
	}
	if err := tree.checkUp(tree.root, none); nil != err {
		return err
	}
	return tree.checkOrder()
}

// VerifyBalance - Verify, then recompute every sub-tree height and
// compare it with the stored balance factors
func (tree *Tree[K, V]) VerifyBalance() error {
	if err := tree.Verify(); nil != err {
		return err
	}
	_, err := tree.checkHeight(tree.root)
	return err
}

// CheckStore - check the links refer to live nodes and every node is
// reachable exactly once from the root
func (tree *Tree[K, V]) CheckStore() bool {
	return nil == tree.checkStore()
}

// CheckUp - check the up links for consistency
func (tree *Tree[K, V]) CheckUp() bool {
	if nil != tree.checkStore() {
		return false
	}
	return nil == tree.checkUp(tree.root, none)
}

// CheckOrder - check the binary search order of the keys
func (tree *Tree[K, V]) CheckOrder() bool {
	if nil != tree.checkStore() {
		return false
	}
	return nil == tree.checkOrder()
}

// CheckBalance - check the balance factors are all within ±1 and
// match the actual sub-tree heights
func (tree *Tree[K, V]) CheckBalance() bool {
	if nil != tree.checkStore() {
		return false
	}
	_, err := tree.checkHeight(tree.root)
	return nil == err
}

// Height - number of levels in the tree
func (tree *Tree[K, V]) Height() int {
	return tree.height(tree.root)
}

// BalanceRange - lowest and highest stored balance factors, both zero
// for an empty tree
func (tree *Tree[K, V]) BalanceRange() (lowest int8, highest int8) {
	for i := range tree.store {
		b := tree.store[i].balance
		if b < lowest {
			lowest = b
		}
		if b > highest {
			highest = b
		}
	}
	return lowest, highest
}

func (tree *Tree[K, V]) height(p int) int {
	if none == p {
		return 0
	}
	return 1 + max(tree.height(tree.store[p].left), tree.height(tree.store[p].right))
}

// internal: index range, density and reachability
func (tree *Tree[K, V]) checkStore() error {
	n := len(tree.store)
	valid := func(i int) bool {
		return none == i || (i >= 0 && i < n)
	}

	if !valid(tree.root) {
		tree.errorf("root index: %d outside store of %d nodes", tree.root, n)
		return fault.ErrInvalidIndex
	}
	for i := range tree.store {
		p := &tree.store[i]
		if !valid(p.left) || !valid(p.right) || !valid(p.up) {
			tree.errorf("fail at node: [%d] %v  links: %d/%d/%d outside store of %d nodes", i, p.key, p.left, p.right, p.up, n)
			return fault.ErrInvalidIndex
		}
	}

	seen := make([]bool, n)
	count := 0
	stack := make([]int, 0, 64)
	if none != tree.root {
		stack = append(stack, tree.root)
	}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[p] {
			tree.errorf("fail at node: [%d] %v  reached twice", p, tree.store[p].key)
			return fault.ErrInvalidIndex
		}
		seen[p] = true
		count += 1
		if none != tree.store[p].left {
			stack = append(stack, tree.store[p].left)
		}
		if none != tree.store[p].right {
			stack = append(stack, tree.store[p].right)
		}
	}
	if count != n {
		tree.errorf("reachable nodes: %d  store holds: %d", count, n)
		return fault.ErrUnreachableNode
	}
	return nil
}

// internal: consistency checker
func (tree *Tree[K, V]) checkUp(p int, up int) error {
	if none == p {
		return nil
	}
	if actual := tree.store[p].up; actual != up {
		tree.errorf("fail at node: [%d] %v  up actual: %d  expected: %d", p, tree.store[p].key, actual, up)
		return fault.ErrBrokenUpLink
	}
	if err := tree.checkUp(tree.store[p].left, p); nil != err {
		return err
	}
	return tree.checkUp(tree.store[p].right, p)
}

// internal: in-order walk requiring strictly ascending keys
func (tree *Tree[K, V]) checkOrder() error {
	var previous *K
	var walk func(p int) error
	walk = func(p int) error {
		if none == p {
			return nil
		}
		if err := walk(tree.store[p].left); nil != err {
			return err
		}
		key := &tree.store[p].key
		if nil != previous && tree.compare(*previous, *key) >= 0 {
			tree.errorf("fail at node: [%d] %v  does not follow: %v", p, *key, *previous)
			return fault.ErrKeyOrder
		}
		previous = key
		return walk(tree.store[p].right)
	}
	return walk(tree.root)
}

// internal: returns the height of the sub-tree at p
func (tree *Tree[K, V]) checkHeight(p int) (int, error) {
	if none == p {
		return 0, nil
	}
	n := &tree.store[p]
	lh, err := tree.checkHeight(n.left)
	if nil != err {
		return 0, err
	}
	rh, err := tree.checkHeight(n.right)
	if nil != err {
		return 0, err
	}

	b := rh - lh
	if b < -1 || b > 1 {
		tree.errorf("fail at node: [%d] %v  heights: %d/%d", p, n.key, lh, rh)
		return 0, fault.ErrUnbalanced
	}
	if int(n.balance) != b {
		tree.errorf("fail at node: [%d] %v  balance actual: %d  expected: %d", p, n.key, n.balance, b)
		return 0, fault.ErrBalanceMismatch
	}
	return 1 + max(lh, rh), nil
}
