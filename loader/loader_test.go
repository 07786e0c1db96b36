// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Staffdir Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package loader_test

import (
	"os"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/staffdir/staffdir/directory"
	"github.com/staffdir/staffdir/employee"
	"github.com/staffdir/staffdir/fault"
	"github.com/staffdir/staffdir/loader"
)

const (
	testingDirName = "testing"
)

func TestMain(m *testing.M) {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)

	rc := m.Run()

	logger.Finalise()
	removeFiles()
	os.Exit(rc)
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

const header = "id,name,department,title,manager,skills\n"

func load(t *testing.T, data string) (*directory.Directory, loader.Summary, error) {
	t.Helper()
	d := directory.New()
	summary, err := loader.LoadReader(strings.NewReader(data), d, logger.New("loader-test"))
	return d, summary, err
}

func TestLoadComplete(t *testing.T) {
	data := header +
		"EMP001,Grace Hopper,Engineering,Rear Admiral,,\"COBOL, Compilers\"\n" +
		"EMP003,Alan Turing,Research,Fellow,EMP001,\"Logic, Cryptanalysis\"\n" +
		"EMP002,Ada Lovelace,Engineering,Analyst,EMP001,Analysis\n"

	d, summary, err := load(t, data)
	assert.NoError(t, err, "load failed")
	assert.Equal(t, loader.Summary{Loaded: 3}, summary, "wrong summary")

	r, err := d.FindByID("EMP001")
	assert.NoError(t, err, "lookup failed")
	assert.Equal(t, "Grace Hopper", r.Name, "wrong name")
	assert.Equal(t, employee.ID(""), r.Manager, "executive has a manager")
	assert.Equal(t, []string{"COBOL", "Compilers"}, r.Skills, "wrong skills")

	r, err = d.FindByID("EMP003")
	assert.NoError(t, err, "lookup failed")
	assert.Equal(t, employee.ID("EMP001"), r.Manager, "wrong manager")

	// listing comes back in id order, not file order
	ids := []string{}
	d.ForEach(func(r employee.Record) {
		ids = append(ids, string(r.ID))
	})
	assert.Equal(t, []string{"EMP001", "EMP002", "EMP003"}, ids, "wrong order")
}

func TestLoadMinimalFields(t *testing.T) {
	data := header + "EMP010,Solo Worker\n"

	d, summary, err := load(t, data)
	assert.NoError(t, err, "load failed")
	assert.Equal(t, loader.Summary{Loaded: 1}, summary, "wrong summary")

	r, err := d.FindByID("EMP010")
	assert.NoError(t, err, "lookup failed")
	assert.Equal(t, "", r.Department, "department not empty")
	assert.Nil(t, r.Skills, "skills not empty")
}

func TestLoadSkipsBadLines(t *testing.T) {
	data := header +
		"EMP001,Grace Hopper\n" +
		"EMP002\n" + // name missing
		"\n" + // blank
		"XYZ003,Bad Prefix\n" + // invalid id
		",No Id\n" + // id missing
		"EMP004,Valid Again\n"

	d, summary, err := load(t, data)
	assert.NoError(t, err, "load failed")
	assert.Equal(t, loader.Summary{Loaded: 2, Invalid: 3}, summary, "wrong summary")
	assert.Equal(t, 2, d.Count(), "wrong count")
}

func TestLoadCountsDuplicates(t *testing.T) {
	data := header +
		"EMP001,Grace Hopper\n" +
		"EMP001,Impostor\n"

	d, summary, err := load(t, data)
	assert.NoError(t, err, "load failed")
	assert.Equal(t, loader.Summary{Loaded: 1, Duplicates: 1}, summary, "wrong summary")

	r, err := d.FindByID("EMP001")
	assert.NoError(t, err, "lookup failed")
	assert.Equal(t, "Grace Hopper", r.Name, "duplicate replaced the record")
}

func TestLoadEmptyFile(t *testing.T) {
	_, _, err := load(t, "")
	assert.Equal(t, fault.ErrEmployeeFileEmpty, err, "wrong error")
	assert.True(t, fault.IsErrProcess(err), "wrong error class")
}

func TestLoadMissingFile(t *testing.T) {
	d := directory.New()
	_, err := loader.Load("no-such-file.csv", d)
	assert.Equal(t, fault.ErrEmployeeFileNotFound, err, "wrong error")
}
