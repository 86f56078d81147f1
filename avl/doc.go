// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree whose nodes are held in a single
// growable slice and refer to each other by index, with parent
// indexes to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The base algorithm was described in an old book by Niklaus Wirth
// called Algorithms + Data Structures = Programs, reworked here to
// retrace upwards along the parent indexes instead of recursing.
//
// Insert and Delete only keep the binary search order; InsertBalanced
// and DeleteBalanced also maintain the balance factors and rotate.
// Mixing the two on one tree leaves the balance factors stale.
//
// A deleted node's slot is filled by moving the last node of the
// slice into it, so node copies and iterators are only valid until
// the next modification of the tree.
package avl
