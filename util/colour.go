// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/bitmark-inc/logger"
)

// ANSI terminal control
const (
	CoReset  = "\x1b[0m"
	CoBright = "\x1b[1m"

	CoRed    = "\x1b[31m"
	CoGreen  = "\x1b[32m"
	CoYellow = "\x1b[33m"
)

// Colourise - wrap a string in a colour and a reset, an empty colour
// leaves the string alone
func Colourise(colour string, s string) string {
	if "" == colour {
		return s
	}
	return colour + s + CoReset
}

// BalanceColour - colour for a node's balance factor: level nodes are
// green, leaning nodes yellow and anything outside ±1 red
func BalanceColour(balance int8) string {
	switch balance {
	case 0:
		return CoGreen
	case -1, +1:
		return CoYellow
	default:
		return CoBright + CoRed
	}
}

// LogInfo - print message in Info level with assigned colour
func LogInfo(log *logger.L, colour string, message string) {
	log.Infof("%s", Colourise(colour, message))
}

// LogWarn - print message in Warn level with assigned colour
func LogWarn(log *logger.L, colour string, message string) {
	log.Warnf("%s", Colourise(colour, message))
}

// LogError - print message in Error level with assigned colour
func LogError(log *logger.L, colour string, message string) {
	log.Errorf("%s", Colourise(colour, message))
}
