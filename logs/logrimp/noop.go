/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package logrimp defines some common logr implementations.
package logrimp

import "github.com/go-logr/logr"

// NewNoopLogger returns a logger discarding every record.
func NewNoopLogger() logr.Logger {
	return logr.Discard()
}
