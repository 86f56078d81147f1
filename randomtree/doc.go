// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package randomtree - build and prune trees of random integer keys,
// checking the tree after every single modification
//
// the value stored for each key is "data:" followed by the key, so
// that lookups and deletions can be checked against the key alone
package randomtree
