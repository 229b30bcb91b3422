/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package safecast

import "math"

// ToInt converts any [IConvertable] value to an int.
// Values outside the range of an int are clamped to the closest boundary.
// NaN converts to 0.
func ToInt[C IConvertable](i C) int {
	switch {
	case isNaN(i):
		return 0
	case below(i, math.MinInt):
		return math.MinInt
	case above(i, math.MaxInt):
		return math.MaxInt
	}
	return int(i)
}

// ToInt64 converts any [IConvertable] value to an int64.
// Values outside the range of an int64 are clamped to the closest boundary.
// NaN converts to 0.
func ToInt64[C IConvertable](i C) int64 {
	switch {
	case isNaN(i):
		return 0
	case below(i, math.MinInt64):
		return math.MinInt64
	case above(i, math.MaxInt64):
		return math.MaxInt64
	}
	return int64(i)
}

// ToFloat64 converts any [IConvertable] value to a float64.
func ToFloat64[C IConvertable](i C) float64 {
	return float64(i)
}

func isNaN[C IConvertable](value C) bool {
	return value != value
}

// above states whether value is at or over an upper boundary which is a power of two minus one.
func above[C IConvertable](value C, boundary int64) bool {
	if value <= 0 {
		return false
	}
	switch f := any(value).(type) {
	case float64:
		return f >= float64(boundary)
	case float32:
		return float64(f) >= float64(boundary)
	default:
		// positive integers always fit in an uint64
		return uint64(value) > uint64(boundary)
	}
}

func below[C IConvertable](value C, boundary int64) bool {
	if value >= 0 {
		return false
	}
	switch f := any(value).(type) {
	case float64:
		return f <= float64(boundary)
	case float32:
		return float64(f) <= float64(boundary)
	default:
		return int64(value) < boundary
	}
}
