/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package config loads configurations from the environment (`.env` file, environment variables, flags) and validates them.
package config

import (
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ARM-software/safequeue/commonerrors"
)

const (
	EnvVarSeparator    = "_"
	DotEnvFile         = ".env"
	configKeySeparator = "."
	flagKeyPrefix      = "uniqueprefixforprivateflagbindingkeys123" // Has to be lower case and hopefully unique
)

// Load loads the configuration from the environment (i.e. .env file, environment variables) and puts the entries into the configuration object configurationToSet.
// If not found in the environment, the values will come from the default values defined in defaultConfiguration.
// `envVarPrefix` defines a prefix that ENVIRONMENT variables will use.  E.g. if your prefix is "queue", the env registry will look for env variables that start with "QUEUE_".
// Make sure that the tags on the fields of configurationToSet are properly set using only `[_1-9a-zA-Z]` characters.
func Load(envVarPrefix string, configurationToSet IServiceConfiguration, defaultConfiguration IServiceConfiguration) error {
	return LoadFromViper(viper.New(), envVarPrefix, configurationToSet, defaultConfiguration)
}

// LoadFromViper is the same as `Load` but instead of creating a new viper session, reuse the one provided.
// Viper's precedence order is maintained:
//  1. values set using explicit calls to `Set`
//  2. flags
//  3. environment (variables or `.env`)
//  4. configuration file
//  5. default values (set via flag default values, or calls to `SetDefault` or via `defaultConfiguration` argument provided)
//
// Default values from `defaultConfiguration` take precedence over flag defaults unless they are empty.
func LoadFromViper(viperSession *viper.Viper, envVarPrefix string, configurationToSet IServiceConfiguration, defaultConfiguration IServiceConfiguration) (err error) {
	if viperSession == nil || configurationToSet == nil {
		err = commonerrors.New(commonerrors.ErrUndefined, "missing configuration or viper session")
		return
	}
	if defaultConfiguration != nil {
		var defaults map[string]any
		err = mapstructure.Decode(defaultConfiguration, &defaults)
		if err != nil {
			err = commonerrors.WrapError(commonerrors.ErrMarshalling, err, "could not decode the default configuration")
			return
		}
		err = viperSession.MergeConfigMap(defaults)
		if err != nil {
			return
		}
	}

	// Load .env file contents into environment, if it exists
	_ = godotenv.Load(DotEnvFile)

	setEnvOptions(viperSession, envVarPrefix)

	linkFlagKeysToStructureKeys(viperSession, envVarPrefix)

	err = viperSession.Unmarshal(configurationToSet)
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrInvalid, err, "unable to decode config into struct")
		return
	}
	err = configurationToSet.Validate()
	return
}

// BindFlagToEnv binds pflags to environment variable.
// Envvar is the environment variable string with or without the prefix envVarPrefix
func BindFlagToEnv(viperSession *viper.Viper, envVarPrefix string, envVar string, flag *pflag.Flag) (err error) {
	if viperSession == nil {
		err = commonerrors.New(commonerrors.ErrUndefined, "missing viper session")
		return
	}
	if flag == nil {
		err = commonerrors.Newf(commonerrors.ErrUndefined, "missing flag for environment variable %v", envVar)
		return
	}
	setEnvOptions(viperSession, envVarPrefix)
	shortKey, cleansedEnvVar := generateEnvVarConfigKeys(envVar, envVarPrefix)

	err = viperSession.BindPFlag(shortKey, flag)
	if err != nil {
		return
	}
	err = viperSession.BindEnv(shortKey, cleansedEnvVar)
	return
}

func generateEnvVarConfigKeys(envVar, envVarPrefix string) (shortKey string, cleansedEnvVar string) {
	envVarLower := strings.ToLower(envVar)
	envVarPrefixLower := strings.ToLower(envVarPrefix)
	var short string
	if strings.HasPrefix(envVarLower, envVarPrefixLower) {
		short = strings.TrimPrefix(strings.TrimPrefix(envVarLower, envVarPrefixLower), EnvVarSeparator)
	} else {
		short = envVarLower
	}
	shortKey = flagKeyPrefix + configKeySeparator + strings.ReplaceAll(short, EnvVarSeparator, configKeySeparator)
	cleansedEnvVar = strings.ToUpper(strings.ReplaceAll(envVarPrefix+EnvVarSeparator+short, configKeySeparator, EnvVarSeparator))
	return
}

func isFlagKey(key string) bool {
	return strings.HasPrefix(key, flagKeyPrefix)
}

func setEnvOptions(viperSession *viper.Viper, envVarPrefix string) {
	viperSession.SetEnvPrefix(envVarPrefix)
	viperSession.AllowEmptyEnv(false)

	viperSession.AutomaticEnv()
	viperSession.SetEnvKeyReplacer(strings.NewReplacer(configKeySeparator, EnvVarSeparator))
}

// linkFlagKeysToStructureKeys creates aliases for flags/environment variable keys to real structure keys.
// Viper binding/aliasing does not work well with structured configurations, so binding between flags and structure keys is handled here.
func linkFlagKeysToStructureKeys(viperSession *viper.Viper, envVarPrefix string) {
	keys := viperSession.AllKeys()
	for i := range keys {
		key := keys[i]
		if isFlagKey(key) {
			continue
		}
		flagKey, _ := generateEnvVarConfigKeys(key, envVarPrefix)
		// A set flag takes precedence over the structured configuration value.
		if viperSession.IsSet(flagKey) {
			viperSession.Set(key, viperSession.Get(flagKey))
		} else {
			value := viperSession.Get(flagKey)
			if !isEmpty(value) {
				viperSession.SetDefault(key, value)
				if isEmpty(viperSession.Get(key)) {
					viperSession.Set(key, value)
				}
			}
		}
		viperSession.RegisterAlias(flagKey, key)
	}
}

func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array, reflect.String:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
