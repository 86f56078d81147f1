// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// the file is an ordinary Lua chunk that must return a table, most of
// base Lua is available so the file can compute values and call
// os.getenv to pick up environment supplied items.  The returned table
// is mapped onto a caller supplied struct using "gluamapper" field tags.
package configuration
