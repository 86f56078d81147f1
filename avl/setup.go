// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/avltree/fault"
)

// index value of an absent link
const none = -1

//go:generate mockgen -destination=mocks/logger.go -package=mocks github.com/bitmark-inc/avltree/avl Logger

// Logger - where the tree reports diagnostics, *logger.L satisfies this
type Logger interface {
	Warnf(format string, arguments ...interface{})
	Errorf(format string, arguments ...interface{})
}

// Tree - type to hold the node store and the root index of a tree
type Tree[K, V any] struct {
	store   []Node[K, V]   // all live nodes, densely packed
	root    int            // index of root node or none
	compare func(K, K) int // total order on keys
	log     Logger         // optional diagnostics
}

// New - create an initially empty tree ordered by the natural order of K
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc - create an initially empty tree ordered by compare, which
// must return a negative, zero or positive value as a < b, a == b or a > b
func NewFunc[K, V any](compare func(a K, b K) int) *Tree[K, V] {
	if nil == compare {
		fault.Panicf("avl: nil compare function")
	}
	return &Tree[K, V]{
		store:   nil,
		root:    none,
		compare: compare,
	}
}

// SetLogger - attach a diagnostic sink, nil to disable
func (tree *Tree[K, V]) SetLogger(log Logger) {
	tree.log = log
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return none == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return len(tree.store)
}

// Root - return a copy of the root node of the tree
func (tree *Tree[K, V]) Root() (Node[K, V], bool) {
	if none == tree.root {
		return nothing[K, V](), false
	}
	return tree.store[tree.root], true
}

// Depth - number of links between the root and the node holding key
func (tree *Tree[K, V]) Depth(key K) (int, bool) {
	p := tree.find(key)
	if none == p {
		return 0, false
	}
	count := 0
	for up := tree.store[p].up; none != up; up = tree.store[up].up {
		count += 1
	}
	return count, true
}

func (tree *Tree[K, V]) warnf(format string, arguments ...interface{}) {
	if nil != tree.log {
		tree.log.Warnf(format, arguments...)
	}
}

func (tree *Tree[K, V]) errorf(format string, arguments ...interface{}) {
	if nil != tree.log {
		tree.log.Errorf(format, arguments...)
	}
}
