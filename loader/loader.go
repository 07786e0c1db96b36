// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Staffdir Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package loader

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/staffdir/staffdir/directory"
	"github.com/staffdir/staffdir/employee"
	"github.com/staffdir/staffdir/fault"
)

// Summary - per-file load counters
type Summary struct {
	Loaded     int // records inserted
	Invalid    int // lines skipped by parsing or validation
	Duplicates int // records dropped for an already used id
}

// Load - read one employee data file into a directory
func Load(fileName string, d *directory.Directory) (Summary, error) {
	log := logger.New("loader")

	f, err := os.Open(fileName)
	if nil != err {
		if os.IsNotExist(err) {
			return Summary{}, fault.ErrEmployeeFileNotFound
		}
		return Summary{}, err
	}
	defer f.Close()

	log.Infof("loading employee data from: %q", fileName)
	return LoadReader(f, d, log)
}

// LoadReader - read employee data lines into a directory
//
// the reader must contain at least a header line; every later line
// is handled on its own so that one bad record never loses the rest
// of the file
func LoadReader(r io.Reader, d *directory.Directory, log *logger.L) (Summary, error) {
	summary := Summary{}

	c := csv.NewReader(r)
	c.FieldsPerRecord = -1 // lines have 2…6 fields
	c.TrimLeadingSpace = true

	header := true
	lineNumber := 0

read_lines:
	for {
		lineNumber += 1
		fields, err := c.Read()
		if io.EOF == err {
			break read_lines
		}
		if nil != err {
			log.Warnf("line: %d  parse error: %s", lineNumber, err)
			summary.Invalid += 1
			continue read_lines
		}
		if header {
			header = false
			continue read_lines
		}
		if isBlank(fields) {
			continue read_lines
		}
		if len(fields) < 2 {
			log.Warnf("line: %d  insufficient data", lineNumber)
			summary.Invalid += 1
			continue read_lines
		}

		rec := recordFromFields(fields)
		if err := rec.Validate(); nil != err {
			log.Warnf("line: %d  invalid employee %q: %s", lineNumber, rec.ID, err)
			summary.Invalid += 1
			continue read_lines
		}

		if !d.Add(rec) {
			log.Warnf("line: %d  duplicate employee id: %q", lineNumber, rec.ID)
			summary.Duplicates += 1
			continue read_lines
		}
		summary.Loaded += 1
	}

	if 1 == lineNumber {
		return summary, fault.ErrEmployeeFileEmpty
	}

	log.Infof("load complete: %d employees  %d invalid  %d duplicates",
		summary.Loaded, summary.Invalid, summary.Duplicates)
	return summary, nil
}

// build a record from one line, missing optional fields stay empty
func recordFromFields(fields []string) employee.Record {
	field := func(i int) string {
		if i < len(fields) {
			return strings.TrimSpace(fields[i])
		}
		return ""
	}

	r := employee.Record{
		ID:         employee.ID(field(0)),
		Name:       field(1),
		Department: field(2),
		Title:      field(3),
		Manager:    employee.ID(field(4)),
		Skills:     employee.ParseSkills(field(5)),
	}
	return r
}

// a line of entirely empty fields comes from a blank input line
func isBlank(fields []string) bool {
	for _, f := range fields {
		if "" != strings.TrimSpace(f) {
			return false
		}
	}
	return true
}
