// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
)

// basic defaults (directories are relative to the directory holding
// the configuration file, or the current directory if there is none)
const (
	defaultSeed     = 1
	defaultKeyRange = 10000
	defaultInserts  = 1000
	defaultDeletes  = 600

	defaultLogDirectory = "log"
	defaultLogFile      = "avltree.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// values for print.colour
const (
	colourAuto   = "auto"
	colourAlways = "always"
	colourNever  = "never"
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"avl":             "warn",
		logger.DefaultTag: "critical",
	}
)

// PrintType - how trees are drawn
type PrintType struct {
	Data   bool   `gluamapper:"data" json:"data"`
	Colour string `gluamapper:"colour" json:"colour"`
}

// Configuration - everything read from the configuration file
type Configuration struct {
	Seed     int64                `gluamapper:"seed" json:"seed"`
	KeyRange int                  `gluamapper:"key_range" json:"key_range"`
	Inserts  int                  `gluamapper:"inserts" json:"inserts"`
	Deletes  int                  `gluamapper:"deletes" json:"deletes"`
	Print    PrintType            `gluamapper:"print" json:"print"`
	Logging  logger.Configuration `gluamapper:"logging" json:"logging"`
}

// defaults for every setting
func defaultConfiguration() *Configuration {
	levels := make(LoglevelMap, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}
	return &Configuration{
		Seed:     defaultSeed,
		KeyRange: defaultKeyRange,
		Inserts:  defaultInserts,
		Deletes:  defaultDeletes,
		Print: PrintType{
			Data:   false,
			Colour: colourAuto,
		},
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}
}

// will read decode and verify the configuration, a blank file name
// gives the defaults
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := defaultConfiguration()

	dataDirectory := "."
	if "" != configurationFileName {
		fileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}

		// absolute path to the main directory
		dataDirectory, _ = filepath.Split(fileName)

		if !util.EnsureFileExists(fileName) {
			return nil, fault.ErrNotFoundConfigFile
		}
		if err := configuration.ParseConfigurationFile(fileName, options); nil != err {
			return nil, err
		}
	}

	if err := options.validate(); nil != err {
		return nil, err
	}

	// fail if the log file is not a simple file name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = util.EnsureAbsolute(dataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0o700); nil != err {
		return nil, err
	}

	return options, nil
}

// check the ranges of the values
func (options *Configuration) validate() error {
	if options.KeyRange <= 0 {
		return fault.ErrInvalidKeyRange
	}
	if options.Inserts < 0 || options.Deletes < 0 {
		return fault.ErrInvalidCount
	}
	if options.Inserts > 2*options.KeyRange {
		return fault.ErrInvalidKeyRange
	}
	if options.Deletes > options.Inserts {
		return fault.ErrTooManyDeletions
	}

	options.Print.Colour = strings.ToLower(options.Print.Colour)
	switch options.Print.Colour {
	case colourAuto, colourAlways, colourNever:
	default:
		return fault.ErrInvalidColourMode
	}
	return nil
}
