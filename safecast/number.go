/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package safecast

// IInteger is satisfied by all signed and unsigned integer types.
type IInteger interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// IFloat is satisfied by float32 and float64.
type IFloat interface {
	~float32 | ~float64
}

// IConvertable is satisfied by every numeric type the package can convert.
type IConvertable interface {
	IInteger | IFloat
}
