/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package logrimp

import (
	"github.com/bombsimon/logrusr/v4"
	"github.com/go-logr/logr"
	"github.com/sirupsen/logrus"
)

// NewLogrusLogger returns a logr logger backed by logrus.
func NewLogrusLogger(logger logrus.FieldLogger, opts ...logrusr.Option) logr.Logger {
	return logrusr.New(logger, opts...)
}
