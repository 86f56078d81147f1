// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"os"
)

// to control the print routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Highlighter - decorate the label printed for a node, e.g. with
// terminal colour codes
type Highlighter[K, V any] func(node Node[K, V], label string) string

// Print - display an ASCII graphic representation of the tree on
// stdout, returns the maximum depth of the tree
func (tree *Tree[K, V]) Print(printData bool) int {
	return tree.Fprint(os.Stdout, printData, nil)
}

// Fprint - write an ASCII graphic representation of the tree, right
// sub-trees above and left sub-trees below their parent, returns the
// maximum depth of the tree
func (tree *Tree[K, V]) Fprint(w io.Writer, printData bool, highlight Highlighter[K, V]) int {
	return tree.printTree(w, tree.root, "", rootBranch, printData, highlight)
}

// internal print - returns the maximum depth of the sub-tree
func (tree *Tree[K, V]) printTree(w io.Writer, p int, prefix string, br branch, printData bool, highlight Highlighter[K, V]) int {
	if none == p {
		return 0
	}
	n := tree.store[p]

	rd := 0
	ld := 0
	if none != n.right {
		t := "       "
		if leftBranch == br {
			t = "|      "
		}
		rd = tree.printTree(w, n.right, prefix+t, rightBranch, printData, highlight)
	}

	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}

	up := interface{}(nil)
	if none != n.up {
		up = tree.store[n.up].key
	}
	label := ""
	if printData {
		label = fmt.Sprintf("%v → %v ^%v %+d", n.key, n.value, up, n.balance)
	} else {
		label = fmt.Sprintf("%v ^%v", n.key, up)
	}
	if nil != highlight {
		label = highlight(n, label)
	}
	fmt.Fprintln(w, label)

	if none != n.left {
		t := "       "
		if rightBranch == br {
			t = "|      "
		}
		ld = tree.printTree(w, n.left, prefix+t, leftBranch, printData, highlight)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
