// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/randomtree"
)

// small fixed trees showing plain and balanced operations
func runDemo(w io.Writer, log *logger.L, options *Configuration, highlight avl.Highlighter[int, string]) error {

	show := func(title string, tree *avl.Tree[int, string]) {
		fmt.Fprintf(w, "\n%s\n", title)
		depth := tree.Fprint(w, options.Print.Data, highlight)
		fmt.Fprintf(w, "nodes: %d  depth: %d\n", tree.Count(), depth)
	}

	// plain binary search tree
	tree := avl.New[int, string]()
	tree.SetLogger(log)
	for _, k := range []int{0, 8, -8, 4, 12} {
		tree.Insert(k, randomtree.Value(k))
	}
	show("insert: 0 8 -8 4 12", tree)

	for _, k := range []int{4, 5} {
		if v, ok := tree.Lookup(k); ok {
			fmt.Fprintf(w, "lookup: %d → %q\n", k, v)
		} else {
			fmt.Fprintf(w, "lookup: %d not found\n", k)
		}
	}

	tree.Delete(12)
	show("delete: 12", tree)
	if n, ok := tree.Search(8); ok {
		fmt.Fprintf(w, "node: 8  has right: %t\n", n.HasRight())
	}
	if err := tree.Verify(); nil != err {
		return err
	}

	// balanced insert and delete down to an empty tree
	tree = avl.New[int, string]()
	tree.SetLogger(log)
	for _, k := range []int{0, -32, 32, -64, 64} {
		tree.InsertBalanced(k, randomtree.Value(k))
		if err := tree.VerifyBalance(); nil != err {
			return err
		}
	}
	show("balanced insert: 0 -32 32 -64 64", tree)

	for _, k := range []int{64, 32, -32, -64, 0} {
		tree.DeleteBalanced(k)
		if err := tree.VerifyBalance(); nil != err {
			return err
		}
		show(fmt.Sprintf("balanced delete: %d", k), tree)
	}
	fmt.Fprintf(w, "empty: %t\n", tree.IsEmpty())
	return nil
}
