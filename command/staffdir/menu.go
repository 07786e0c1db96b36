// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Staffdir Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/bitmark-inc/logger"
	"github.com/fatih/color"

	"github.com/staffdir/staffdir/directory"
	"github.com/staffdir/staffdir/employee"
	"github.com/staffdir/staffdir/fault"
	"github.com/staffdir/staffdir/loader"
)

// menu choices
const (
	choiceLoad   = 1
	choicePrint  = 2
	choiceSearch = 3
	choiceExit   = 9
)

var menuTitle = color.New(color.FgCyan, color.Bold).SprintFunc()

// runMenu - the interactive console loop
//
// the directory starts empty; print and search refuse to run until a
// data file has been loaded
func runMenu(conf *Configuration, log *logger.L) {

	d := directory.New()
	dataLoaded := false

	scanner := bufio.NewScanner(os.Stdin)

menu_loop:
	for {
		displayMenu()
		choice, ok := readChoice(scanner)
		if !ok { // end of input
			break menu_loop
		}

		switch choice {

		case choiceLoad:
			// load into a fresh directory so a re-load replaces
			// the current contents instead of piling duplicates
			fresh := directory.New()
			summary, err := loader.Load(conf.EmployeeFile, fresh)
			if nil != err {
				log.Errorf("load error: %s", err)
				fmt.Println("Unable to open file.")
				break
			}
			d.CopyFrom(fresh)
			fresh.Destroy()
			dataLoaded = true
			fmt.Printf("Data loading complete: %d employees loaded", summary.Loaded)
			if n := summary.Invalid + summary.Duplicates; n > 0 {
				fmt.Printf(" (%d errors)", n)
			}
			fmt.Println()
			fmt.Println("Employee data successfully loaded!")

		case choicePrint:
			if !dataLoaded {
				fmt.Println("Please load the employee data first.")
				break
			}
			fmt.Println("Here is the employee directory:")
			fmt.Println()
			d.ForEach(func(r employee.Record) {
				displayRecord(r)
				fmt.Println()
			})

		case choiceSearch:
			if !dataLoaded {
				fmt.Println("Please load the employee data first.")
				break
			}
			fmt.Println("Please enter the Employee ID you're looking for:")
			if !scanner.Scan() {
				break menu_loop
			}
			id := employee.NormaliseID(scanner.Text())
			fmt.Println()

			r, err := d.FindByID(id)
			if fault.IsErrNotFound(err) {
				fmt.Printf("We're sorry. No employee matching the ID %s was found.\n", id)
				break
			}
			fmt.Printf("%s Information:\n", id)
			displayRecord(r)

		case choiceExit:
			fmt.Println("Goodbye!")
			break menu_loop

		default:
			fmt.Printf("%d is not a valid option.\n", choice)
		}
		fmt.Println()
	}
}

// displayMenu - show the main menu options
func displayMenu() {
	fmt.Println(menuTitle("Welcome to the Employee Management System."))
	fmt.Println()
	fmt.Println("1. Load Employee Data.")
	fmt.Println("2. Print Employee Directory.")
	fmt.Println("3. Search for Employee.")
	fmt.Println("9. Exit.")
	fmt.Println()
	fmt.Println("What would you like to do?")
}

// readChoice - read one menu choice, re-prompting on anything that
// is not a number; false only on end of input
func readChoice(scanner *bufio.Scanner) (int, bool) {
	for {
		if !scanner.Scan() {
			return 0, false
		}
		text := scanner.Text()
		if "" == text {
			fmt.Print("Please enter a choice: ")
			continue
		}
		choice, err := strconv.Atoi(text)
		if nil != err {
			fmt.Print("Invalid input. Please enter a number: ")
			continue
		}
		fmt.Println()
		return choice, true
	}
}
