// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/venued/fault"
)

var (
	errExistsOne   = fault.ExistsError("exists one")
	errInvalidOne  = fault.InvalidError("invalid one")
	errLengthOne   = fault.LengthError("length one")
	errNotFoundOne = fault.NotFoundError("not found one")
	errProcessOne  = fault.ProcessError("process one")
	errRecordOne   = fault.RecordError("record one")
)

// test that the error classes can be distinguished
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		length   bool
		notFound bool
		process  bool
		record   bool
	}{
		{errExistsOne, true, false, false, false, false, false},
		{errInvalidOne, false, true, false, false, false, false},
		{errLengthOne, false, false, true, false, false, false},
		{errNotFoundOne, false, false, false, true, false, false},
		{errProcessOne, false, false, false, false, true, false},
		{errRecordOne, false, false, false, false, false, true},
		{fault.UndefinedMarket, false, false, false, true, false, false},
		{fault.IncorrectMarketType, false, true, false, false, false, false},
		{fault.EmptyInventory, false, false, false, true, false, false},
		{fault.NoTokensLeft, false, false, false, true, false, false},
		{fault.InvalidSaleMode, false, true, false, false, false, false},
		{fault.NotLive, false, true, false, false, false, false},
		{fault.NotWhitelisted, false, true, false, false, false, false},
		{fault.CurrentlyWhitelisted, false, true, false, false, false, false},
		{fault.WrongValueType, false, true, false, false, false, false},
		{fault.KeyNotFound, false, false, false, true, false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLength(err) != e.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, e.length, err)
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
