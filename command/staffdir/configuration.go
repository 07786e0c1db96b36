// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Staffdir Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/staffdir/staffdir/configuration"
	"github.com/staffdir/staffdir/fault"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultEmployeeFile = "employees.csv"

	defaultLogDirectory = "log"
	defaultLogFile      = "staffdir.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "error",
	}
)

// Configuration - the combined configuration for the program
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	EmployeeFile  string               `gluamapper:"employee_file" json:"employee_file"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		EmployeeFile:  defaultEmployeeFile,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// resolve the data directory against the configuration file
	// location; absolute paths pass through unchanged
	switch options.DataDirectory {
	case "":
		return nil, fault.ErrRequiredConfigDir
	case ".":
		options.DataDirectory = dataDirectory // same directory as the configuration file
	default:
		options.DataDirectory = ensureAbsolute(dataDirectory, options.DataDirectory)
	}

	// ensure absolute paths
	options.EmployeeFile = ensureAbsolute(options.DataDirectory, options.EmployeeFile)
	options.Logging.Directory = ensureAbsolute(options.DataDirectory, options.Logging.Directory)

	// fail if the data directory is not a directory
	if info, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !info.IsDir() {
		return nil, fault.ErrConfigDirPath
	}

	// done
	return options, nil
}

// ensureAbsolute - ensure the path is absolute
// if not, prepend the directory to make an absolute path
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
