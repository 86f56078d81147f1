// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/mattn/go-isatty"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/util"
)

// anything with a file descriptor, like *os.File
type fileDescriptor interface {
	Fd() uintptr
}

// select node colouring for the tree drawing, nil for plain text
func highlighter(mode string, out fileDescriptor) avl.Highlighter[int, string] {
	switch mode {
	case colourAlways:
	case colourAuto:
		if nil == out || !(isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())) {
			return nil
		}
	default:
		return nil
	}
	return colourByBalance
}

// colour a node by its balance factor
func colourByBalance(node avl.Node[int, string], label string) string {
	return util.Colourise(util.BalanceColour(node.Balance()), label)
}
