// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// setup command handler
//
// commands that do not need the configuration or the logger
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)

	case "demo", "random", "r", "apply", "a":
		return false // continue processing

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--config-file=FILE] [--seed=N] [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  demo                                - build, search and delete in small fixed trees\n")
		fmt.Printf("                                        same as no arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  random [COUNT [DELETES]]   (r)      - insert COUNT random keys then delete DELETES of them\n")
		fmt.Printf("                                        checking the tree after every step\n")
		fmt.Printf("\n")

		fmt.Printf("  apply OP...                (a)      - run operations on an initially empty tree\n")
		fmt.Printf("                                        i:KEY  insert          b:KEY  balanced insert\n")
		fmt.Printf("                                        d:KEY  delete          e:KEY  balanced delete\n")
		fmt.Printf("                                        l:KEY  lookup          p      print the tree\n")
		fmt.Printf("\n")

		if "help" != command && "h" != command && "?" != command {
			exitwithstatus.Exit(1)
		}
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// commands that run after the configuration and logger are set up
func processCommand(w io.Writer, log *logger.L, options *Configuration, highlight avl.Highlighter[int, string], arguments []string) error {

	command := "demo"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	log.Infof("command: %q  arguments: %v", command, arguments)

	switch command {
	case "demo":
		return runDemo(w, log, options, highlight)

	case "random", "r":
		return runRandom(w, log, options, highlight, arguments)

	case "apply", "a":
		return runApply(w, log, options, highlight, arguments)

	default:
		return fault.ErrUnknownCommand
	}
}
