// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/randomtree"
)

// operation codes
const (
	opInsert         = 'i'
	opInsertBalanced = 'b'
	opDelete         = 'd'
	opDeleteBalanced = 'e'
	opLookup         = 'l'
	opPrint          = 'p'
)

// one scripted step: code ":" key, or just the code for print
type operation struct {
	code byte
	key  int
}

func (op operation) String() string {
	if opPrint == op.code {
		return string(op.code)
	}
	return fmt.Sprintf("%c:%d", op.code, op.key)
}

// decode a single operation
func parseOperation(s string) (operation, error) {
	code, arg, hasArg := strings.Cut(strings.TrimSpace(s), ":")
	if 1 != len(code) {
		return operation{}, fault.ErrInvalidOperation
	}

	op := operation{code: code[0]}
	switch op.code {
	case opPrint:
		if hasArg {
			return operation{}, fault.ErrInvalidOperation
		}
		return op, nil

	case opInsert, opInsertBalanced, opDelete, opDeleteBalanced, opLookup:
		if !hasArg || "" == arg {
			return operation{}, fault.ErrMissingArgument
		}
		key, err := strconv.Atoi(arg)
		if nil != err {
			return operation{}, fault.ErrInvalidKey
		}
		op.key = key
		return op, nil

	default:
		return operation{}, fault.ErrInvalidOperation
	}
}

// decode all operations, nothing is run if any one is invalid
func parseOperations(arguments []string) ([]operation, error) {
	if 0 == len(arguments) {
		return nil, fault.ErrMissingArgument
	}
	plain := false
	balanced := false
	ops := make([]operation, 0, len(arguments))
	for _, a := range arguments {
		op, err := parseOperation(a)
		if nil != err {
			return nil, fmt.Errorf("operation: %q  error: %w", a, err)
		}
		switch op.code {
		case opInsert, opDelete:
			plain = true
		case opInsertBalanced, opDeleteBalanced:
			balanced = true
		}
		ops = append(ops, op)
	}

	// balanced updates rely on balance factors that plain updates
	// leave stale
	if plain && balanced {
		return nil, fault.ErrMixedOperations
	}
	return ops, nil
}

// run scripted operations on an empty tree
func runApply(w io.Writer, log *logger.L, options *Configuration, highlight avl.Highlighter[int, string], arguments []string) error {
	ops, err := parseOperations(arguments)
	if nil != err {
		return err
	}

	tree := avl.New[int, string]()
	tree.SetLogger(log)
	return applyOperations(w, tree, ops, options.Print.Data, highlight)
}

// apply each operation in turn writing one result line per operation;
// duplicate and missing keys are reported, not treated as errors
func applyOperations(w io.Writer, tree *avl.Tree[int, string], ops []operation, printData bool, highlight avl.Highlighter[int, string]) error {

	balanced := true
	for _, op := range ops {
		result := "ok"

		switch op.code {
		case opInsert:
			balanced = false
			if _, ok := tree.Insert(op.key, randomtree.Value(op.key)); !ok {
				result = fault.ErrKeyExists.Error()
			}

		case opInsertBalanced:
			if _, ok := tree.InsertBalanced(op.key, randomtree.Value(op.key)); !ok {
				result = fault.ErrKeyExists.Error()
			}

		case opDelete:
			balanced = false
			if _, ok := tree.Delete(op.key); !ok {
				result = fault.ErrKeyNotFound.Error()
			}

		case opDeleteBalanced:
			if _, ok := tree.DeleteBalanced(op.key); !ok {
				result = fault.ErrKeyNotFound.Error()
			}

		case opLookup:
			if v, ok := tree.Lookup(op.key); ok {
				result = fmt.Sprintf("%q", v)
			} else {
				result = fault.ErrKeyNotFound.Error()
			}

		case opPrint:
			depth := tree.Fprint(w, printData, highlight)
			result = fmt.Sprintf("depth: %d", depth)

		default:
			return fault.ErrInvalidOperation
		}
		fmt.Fprintf(w, "%s: %s\n", op, result)
	}

	// balance factors are only maintained if every step kept them
	if balanced {
		return tree.VerifyBalance()
	}
	return tree.Verify()
}
