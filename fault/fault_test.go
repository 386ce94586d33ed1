// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/orderedtree/fault"
)

const dir = "testing"

func TestMain(m *testing.M) {
	_ = os.RemoveAll(dir)
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(dir)
	os.Exit(rc)
}

var (
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
	ErrRecordOne   = fault.RecordError("record one")
	ErrRecordTwo   = fault.RecordError("record two")
)

// test that the various classes can be told apart
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		invalid  bool
		notFound bool
		process  bool
		record   bool
	}{
		{ErrInvalidOne, true, false, false, false},
		{ErrInvalidTwo, true, false, false, false},
		{ErrNotFoundOne, false, true, false, false},
		{ErrNotFoundTwo, false, true, false, false},
		{ErrProcessOne, false, false, true, false},
		{ErrProcessTwo, false, false, true, false},
		{ErrRecordOne, false, false, false, true},
		{ErrRecordTwo, false, false, false, true},
		{fault.ErrConcurrentModification, false, false, true, false},
		{fault.ErrNilCompare, true, false, false, false},
		{fault.ErrOrdering, false, false, false, true},
		{fault.ErrAlreadyInitialised, false, false, false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrRecord(err) != e.record {
			t.Errorf("%d: expected 'record' == %v for err = %v", i, e.record, err)
		}
	}
}

func TestPanicWithError(t *testing.T) {
	defer func() {
		r := recover()
		if fault.ErrOrdering != r {
			t.Errorf("recovered: %v  expected: %v", r, fault.ErrOrdering)
		}
	}()
	fault.PanicWithError("check", fault.ErrOrdering)
	t.Fatal("did not panic")
}

func TestInitialise(t *testing.T) {
	if err := fault.Initialise(); nil != err {
		t.Fatalf("initialise error: %s", err)
	}
	if err := fault.Initialise(); fault.ErrAlreadyInitialised != err {
		t.Errorf("second initialise: %v  expected: %v", err, fault.ErrAlreadyInitialised)
	}

	fault.Criticalf("critical: %d", 1)
	fault.Finalise()
}
