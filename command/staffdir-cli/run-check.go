// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Staffdir Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/staffdir/staffdir/fault"
)

func runCheck(c *cli.Context) error {

	d, summary, err := loadDirectory(c)
	if nil != err {
		return err
	}

	fmt.Printf("records: %d  invalid: %d  duplicates: %d\n",
		summary.Loaded, summary.Invalid, summary.Duplicates)
	fmt.Printf("tree height: %d\n", d.Height())

	if c.GlobalBool("verbose") {
		depth := d.Print(false)
		fmt.Printf("printed depth: %d\n", depth)
	}

	if !d.Check() {
		return fault.ErrTreeCheckFailed
	}

	fmt.Println("ok")
	return nil
}
