/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package queue

import (
	"fmt"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ARM-software/safequeue/commonerrors"
	"github.com/ARM-software/safequeue/config"
	validationrules "github.com/ARM-software/safequeue/config/validation"
	"github.com/ARM-software/safequeue/field"
	"github.com/ARM-software/safequeue/safecast"
)

// Configuration describes a queue in a form which can be loaded from the environment, flags or files.
// Capacity is a float so that non-integral values can be detected and rejected.
type Configuration[T any] struct {
	Capacity      float64 `mapstructure:"capacity" json:"capacity"`
	InitialValues []T     `mapstructure:"initial_values" json:"initial_values"`
}

// DefaultConfiguration returns the configuration corresponding to DefaultOptions.
func DefaultConfiguration[T any]() *Configuration[T] {
	return &Configuration[T]{
		Capacity:      safecast.ToFloat64(DefaultCapacity),
		InitialValues: []T{},
	}
}

// Validate checks that the capacity is a whole number higher than 0.
func (cfg *Configuration[T]) Validate() error {
	return config.WrapValidationError(field.ToOptionalString(optionsPrefix), validation.ValidateStruct(cfg,
		validation.Field(&cfg.Capacity, validationrules.IsWholeNumber(), validationrules.IsStrictlyPositive()),
	))
}

// Options returns an option function applying the configuration.
// Capacities beyond the range of an int are clamped to DefaultCapacity.
func (cfg *Configuration[T]) Options() func(*Options[T]) {
	return func(o *Options[T]) {
		if cfg == nil {
			return
		}
		o.Capacity = safecast.ToInt(cfg.Capacity)
		o.InitialValues = slices.Clone(cfg.InitialValues)
	}
}

const (
	CapacityFlag      = "capacity"
	InitialValuesFlag = "initial-values"
)

// LoadConfiguration loads a queue configuration from the environment (`.env` file and environment variables prefixed with `envVarPrefix`).
// Entries not found fall back to DefaultConfiguration. e.g. with prefix `jobs`, `JOBS_CAPACITY=10` and `JOBS_INITIAL_VALUES=a,b`.
func LoadConfiguration[T any](envVarPrefix string) (*Configuration[T], error) {
	return LoadConfigurationFromViper[T](viper.New(), envVarPrefix)
}

// LoadConfigurationFromViper is the same as LoadConfiguration but uses the viper session provided, e.g. one whose flags were bound using RegisterFlags.
func LoadConfigurationFromViper[T any](viperSession *viper.Viper, envVarPrefix string) (cfg *Configuration[T], err error) {
	cfg = &Configuration[T]{}
	err = config.LoadFromViper(viperSession, envVarPrefix, cfg, DefaultConfiguration[T]())
	if err != nil {
		cfg = nil
		err = commonerrors.WrapError(ErrInvalidConfiguration, err, "")
	}
	return
}

// RegisterFlags adds the `--capacity` and `--initial-values` flags to flagSet and binds them to viperSession.
// A flag which is set takes precedence over the corresponding environment variable.
func RegisterFlags(viperSession *viper.Viper, envVarPrefix string, flagSet *pflag.FlagSet) error {
	if flagSet == nil {
		return commonerrors.New(commonerrors.ErrUndefined, "missing flag set")
	}
	flagSet.Float64(CapacityFlag, safecast.ToFloat64(DefaultCapacity), "maximum number of elements the queue can hold")
	flagSet.StringSlice(InitialValuesFlag, nil, "elements the queue starts with, front first")
	for flagName, key := range map[string]string{CapacityFlag: "capacity", InitialValuesFlag: "initial_values"} {
		err := config.BindFlagToEnv(viperSession, envVarPrefix, envVarName(envVarPrefix, key), flagSet.Lookup(flagName))
		if err != nil {
			return commonerrors.WrapErrorf(commonerrors.ErrUnexpected, err, "could not bind flag %v", flagName)
		}
	}
	return nil
}

func envVarName(envVarPrefix, key string) string {
	return strings.ToUpper(fmt.Sprintf("%v%v%v", envVarPrefix, config.EnvVarSeparator, key))
}

// NewBoundedQueueFromConfiguration creates a queue from a configuration. A nil configuration results in a queue with default options.
// Additional option functions (e.g. WithLogger) are applied after the configuration.
func NewBoundedQueueFromConfiguration[T comparable](cfg *Configuration[T], optFns ...func(*Options[T])) (*BoundedQueue[T], error) {
	if cfg == nil {
		return NewBoundedQueue[T](optFns...)
	}
	if err := cfg.Validate(); err != nil {
		return nil, commonerrors.WrapError(ErrInvalidConfiguration, err, "")
	}
	return NewBoundedQueue[T](append([]func(*Options[T]){cfg.Options()}, optFns...)...)
}
