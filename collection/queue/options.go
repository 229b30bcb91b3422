/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package queue

import (
	"math"
	"slices"

	"github.com/go-logr/logr"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/safequeue/config"
	validationrules "github.com/ARM-software/safequeue/config/validation"
	"github.com/ARM-software/safequeue/field"
	"github.com/ARM-software/safequeue/logs/logrimp"
)

// DefaultCapacity is the capacity of a queue when none is specified. It is effectively unbounded.
const DefaultCapacity = math.MaxInt

const optionsPrefix = "queue"

// Options defines how a queue is created.
type Options[T any] struct {
	// Capacity is the maximum number of elements the queue can hold. It must be higher than 0.
	Capacity int `mapstructure:"capacity" json:"capacity"`
	// InitialValues are copied into the queue at creation. They are not checked against Capacity.
	InitialValues []T `mapstructure:"initial_values" json:"initial_values"`
	// Logger receives debug records. Defaults to a logger discarding everything.
	Logger logr.Logger `mapstructure:"-" json:"-"`
}

// DefaultOptions returns the options used when none are overridden.
func DefaultOptions[T any]() *Options[T] {
	return &Options[T]{
		Capacity:      DefaultCapacity,
		InitialValues: []T{},
		Logger:        logrimp.NewNoopLogger(),
	}
}

// Validate checks the options.
func (o *Options[T]) Validate() error {
	return config.WrapValidationError(field.ToOptionalString(optionsPrefix), validation.ValidateStruct(o,
		validation.Field(&o.Capacity, validationrules.IsStrictlyPositive()),
	))
}

// WithCapacity sets the maximum number of elements a queue can hold.
func WithCapacity[T any](capacity int) func(*Options[T]) {
	return func(o *Options[T]) {
		o.Capacity = capacity
	}
}

// WithInitialValues sets the elements a queue starts with, front first. The values are copied.
func WithInitialValues[T any](values ...T) func(*Options[T]) {
	return func(o *Options[T]) {
		o.InitialValues = slices.Clone(values)
	}
}

// WithLogger sets the logger used for debug records.
func WithLogger[T any](logger logr.Logger) func(*Options[T]) {
	return func(o *Options[T]) {
		o.Logger = logger
	}
}
