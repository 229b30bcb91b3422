/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package queue

import "github.com/ARM-software/safequeue/commonerrors"

var (
	// ErrInvalidConfiguration is returned when a queue is created with invalid options. It matches commonerrors.ErrInvalid.
	ErrInvalidConfiguration = commonerrors.New(commonerrors.ErrInvalid, "invalid queue configuration")
	// ErrCapacityExceeded is returned when enqueuing into a full queue. It matches commonerrors.ErrOutOfRange.
	ErrCapacityExceeded = commonerrors.New(commonerrors.ErrOutOfRange, "queue has reached its full capacity")
)
