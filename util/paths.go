// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - a relative filePath is taken as relative to
// directory, the result is always cleaned
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	if abs, err := filepath.Abs(filePath); nil == err {
		filePath = abs
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - true if anything exists at name
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}
