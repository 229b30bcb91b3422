/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package config

// IServiceConfiguration defines a configuration which can be loaded from the environment and checked.
type IServiceConfiguration interface {
	// Validate validates configuration entries.
	Validate() error
}
