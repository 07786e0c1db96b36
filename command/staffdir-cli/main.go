// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Staffdir Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "staffdir-cli"
	app.Usage = "query an employee data file"
	app.Version = version

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "file, f",
			Value: "employees.csv",
			Usage: " employee data `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "list",
			Usage:     "print the whole directory in id order",
			ArgsUsage: "\n",
			Flags:     []cli.Flag{},
			Action:    runList,
		},
		{
			Name:      "search",
			Usage:     "look up employees by id",
			ArgsUsage: "ID…\n",
			Flags:     []cli.Flag{},
			Action:    runSearch,
		},
		{
			Name:      "check",
			Usage:     "load the data file and verify the tree invariants",
			ArgsUsage: "\n",
			Flags:     []cli.Flag{},
			Action:    runCheck,
		},
	}

	// the loader logs through a channel, give it somewhere to go
	app.Before = func(c *cli.Context) error {
		logging := logger.Configuration{
			Directory: os.TempDir(),
			File:      "staffdir-cli.log",
			Size:      1048576,
			Count:     2,
			Console:   c.GlobalBool("verbose"),
			Levels: map[string]string{
				logger.DefaultTag: "error",
			},
		}
		return logger.Initialise(logging)
	}
	app.After = func(c *cli.Context) error {
		logger.Finalise()
		return nil
	}

	if err := app.Run(os.Args); nil != err {
		exitwithstatus.Message("Error: %s", err)
	}
}
