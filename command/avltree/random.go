// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/randomtree"
	"github.com/bitmark-inc/avltree/util"
)

// larger trees are only summarised
const maximumPrintedNodes = 64

// build a random tree checking after every step, then delete some
// of the keys again
func runRandom(w io.Writer, log *logger.L, options *Configuration, highlight avl.Highlighter[int, string], arguments []string) error {

	inserts := options.Inserts
	deletes := options.Deletes

	if len(arguments) > 2 {
		return fault.ErrInvalidCount
	}
	if len(arguments) > 0 {
		n, err := strconv.Atoi(arguments[0])
		if nil != err || n < 0 {
			return fault.ErrInvalidCount
		}
		inserts = n
		if deletes > inserts {
			deletes = inserts
			util.LogWarn(log, util.CoYellow, fmt.Sprintf("deletes reduced to: %d", deletes))
		}
	}
	if len(arguments) > 1 {
		n, err := strconv.Atoi(arguments[1])
		if nil != err || n < 0 {
			return fault.ErrInvalidCount
		}
		deletes = n
	}

	b, err := randomtree.New(options.Seed, options.KeyRange)
	if nil != err {
		return err
	}

	checks := 0
	check := func(tree *randomtree.Tree) error {
		checks += 1
		return randomtree.Balanced(tree)
	}

	log.Infof("random: seed: %d  inserts: %d  deletes: %d", options.Seed, inserts, deletes)

	tree, keys, err := b.Build(inserts, check)
	if nil != err {
		util.LogError(log, util.CoRed, fmt.Sprintf("build failed after: %d keys  error: %s", len(keys), err))
		if nil != tree && tree.Count() <= maximumPrintedNodes {
			tree.Fprint(w, options.Print.Data, highlight)
		}
		return err
	}
	tree.SetLogger(log)
	summarise(w, log, "inserted", tree, options, highlight)

	deleted, err := b.Prune(tree, keys, deletes, check)
	if nil != err {
		util.LogError(log, util.CoRed, fmt.Sprintf("prune failed after: %d keys  error: %s", len(deleted), err))
		if tree.Count() <= maximumPrintedNodes {
			tree.Fprint(w, options.Print.Data, highlight)
		}
		return err
	}
	summarise(w, log, "after deletes", tree, options, highlight)

	fmt.Fprintf(w, "checks passed: %d\n", checks)
	return nil
}

// one line of statistics, also logged, and the tree if it is small
func summarise(w io.Writer, log *logger.L, title string, tree *randomtree.Tree, options *Configuration, highlight avl.Highlighter[int, string]) {
	lowest, highest := tree.BalanceRange()
	line := fmt.Sprintf("%s: nodes: %d  height: %d  balance: [%+d, %+d]", title, tree.Count(), tree.Height(), lowest, highest)
	util.LogInfo(log, util.CoGreen, line)
	fmt.Fprintln(w, line)
	if tree.Count() <= maximumPrintedNodes {
		tree.Fprint(w, options.Print.Data, highlight)
	}
}
