/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package errortest provides assertions on error kinds for use in tests.
package errortest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ARM-software/safequeue/commonerrors"
)

// AssertError asserts that err matches one of the `expectedErrors` (see commonerrors.Any).
func AssertError(t *testing.T, err error, expectedErrors ...error) bool {
	t.Helper()
	return check(t, commonerrors.Any(err, expectedErrors...), "error", err, expectedErrors)
}

// AssertErrorDescription asserts that the description of err contains one of the `expectedErrorDescriptions` (see commonerrors.CorrespondTo).
func AssertErrorDescription(t *testing.T, err error, expectedErrorDescriptions ...string) bool {
	t.Helper()
	return check(t, commonerrors.CorrespondTo(err, expectedErrorDescriptions...), "error description", err, expectedErrorDescriptions)
}

// RequireError is the same as AssertError but stops the test on failure.
func RequireError(t *testing.T, err error, expectedErrors ...error) {
	t.Helper()
	if !AssertError(t, err, expectedErrors...) {
		t.FailNow()
	}
}

// RequireErrorDescription is the same as AssertErrorDescription but stops the test on failure.
func RequireErrorDescription(t *testing.T, err error, expectedErrorDescriptions ...string) {
	t.Helper()
	if !AssertErrorDescription(t, err, expectedErrorDescriptions...) {
		t.FailNow()
	}
}

func check[E any](t *testing.T, ok bool, kind string, actual error, expected []E) bool {
	t.Helper()
	if ok {
		return true
	}
	return assert.Failf(t, "failed "+kind+" assertion", "actual: %v\nexpected one of: %+v", actual, expected)
}
