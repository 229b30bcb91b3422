/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package logstest provides loggers to use in tests.
package logstest

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/testr"
	"github.com/sirupsen/logrus"
	logrusTest "github.com/sirupsen/logrus/hooks/test"
	"go.uber.org/zap"

	"github.com/ARM-software/safequeue/logs/logrimp"
)

// NewNullTestLogger returns a logger to nothing
func NewNullTestLogger() logr.Logger {
	return logrimp.NewZapLogger(zap.NewNop())
}

// NewRecordingTestLogger returns a logger which only keeps its records in memory, debug records (V(1)) included.
// Records can be inspected using the hook e.g. hook.LastEntry().Message.
func NewRecordingTestLogger() (logr.Logger, *logrusTest.Hook) {
	internalLogger, hook := logrusTest.NewNullLogger()
	internalLogger.SetLevel(logrus.DebugLevel)
	return logrimp.NewLogrusLogger(internalLogger), hook
}

// NewStdTestLogger returns a test logger to standard output.
func NewStdTestLogger() logr.Logger {
	return logrimp.NewStdOutLogrWithVerbosity(1)
}

// NewTestLogger returns a logger writing to the test output. Debug records (V(1)) are included.
func NewTestLogger(t *testing.T) logr.Logger {
	t.Helper()
	return testr.NewWithOptions(t, testr.Options{Verbosity: 1, LogTimestamp: true})
}
