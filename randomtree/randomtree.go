// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package randomtree

import (
	"fmt"
	"math/rand"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// Tree - the type of tree built here
type Tree = avl.Tree[int, string]

// Check - called after every modification, a non-nil error stops
// the build
type Check func(tree *Tree) error

// Builder - source of random keys in the range [-limit, limit)
type Builder struct {
	rng   *rand.Rand
	limit int
}

// New - create a builder with a fixed seed so a run can be repeated
func New(seed int64, limit int) (*Builder, error) {
	if limit <= 0 {
		return nil, fault.ErrInvalidKeyRange
	}
	return &Builder{
		rng:   rand.New(rand.NewSource(seed)),
		limit: limit,
	}, nil
}

// Value - the data stored for a key
func Value(key int) string {
	return fmt.Sprintf("data:%d", key)
}

// Keys - count distinct keys in random order
func (b *Builder) Keys(count int) ([]int, error) {
	if count < 0 {
		return nil, fault.ErrInvalidCount
	}
	if count > 2*b.limit {
		return nil, fault.ErrInvalidKeyRange
	}

	seen := make(map[int]struct{}, count)
	keys := make([]int, 0, count)
	for len(keys) < count {
		k := b.rng.Intn(2*b.limit) - b.limit
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys, nil
}

// Shuffle - a random permutation of keys, the argument is not changed
func (b *Builder) Shuffle(keys []int) []int {
	shuffled := make([]int, len(keys))
	copy(shuffled, keys)
	b.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// Build - a balanced tree of count random keys, returns the tree and
// the keys in insertion order
func (b *Builder) Build(count int, check Check) (*Tree, []int, error) {
	keys, err := b.Keys(count)
	if nil != err {
		return nil, nil, err
	}

	tree := avl.New[int, string]()
	for i, key := range keys {
		if _, ok := tree.InsertBalanced(key, Value(key)); !ok {
			return nil, nil, fault.ErrKeyExists
		}
		if nil != check {
			if err := check(tree); nil != err {
				return tree, keys[:i+1], err
			}
		}
	}
	return tree, keys, nil
}

// Prune - delete a random selection of count keys from the tree,
// returns the deleted keys in deletion order
func (b *Builder) Prune(tree *Tree, keys []int, count int, check Check) ([]int, error) {
	if count < 0 {
		return nil, fault.ErrInvalidCount
	}
	if count > len(keys) {
		return nil, fault.ErrTooManyDeletions
	}

	deleted := b.Shuffle(keys)[:count]
	for i, key := range deleted {
		node, ok := tree.DeleteBalanced(key)
		if !ok {
			return deleted[:i], fault.ErrKeyNotFound
		}
		if node.Key() != key || node.Value() != Value(key) {
			return deleted[:i], fault.ErrKeyOrder
		}
		if nil != check {
			if err := check(tree); nil != err {
				return deleted[:i+1], err
			}
		}
	}
	return deleted, nil
}

// Balanced - the standard check: structure, order, balance factors
// against recomputed heights and the balance factor range
func Balanced(tree *Tree) error {
	if err := tree.VerifyBalance(); nil != err {
		return err
	}
	lowest, highest := tree.BalanceRange()
	if lowest <= -2 || highest >= 2 {
		return fault.ErrUnbalanced
	}
	return nil
}
