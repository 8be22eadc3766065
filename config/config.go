// Copyright 2025 The CarPullers Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jcodagnone/carpullers/pullers"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes the environment variables read, e.g. CARPULLERS_INPUT.
	EnvPrefix = "CARPULLERS"

	// FileName is the optional config file looked up in the working directory,
	// without extension.
	FileName = "carpullers"

	// DefaultInput is the document converted when nothing else is configured.
	DefaultInput = pullers.DefaultInputPath
)

// Config holds the settings shared by all commands.
type Config struct {
	Input    string `mapstructure:"input"`
	Verbose  bool   `mapstructure:"verbose"`
	Progress bool   `mapstructure:"progress"`
}

// Load resolves the configuration. Precedence, highest first: flags set on
// the command line, environment, config file, defaults.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("input", DefaultInput)
	v.SetDefault("verbose", false)
	v.SetDefault("progress", true)

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("binding flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if strings.TrimSpace(cfg.Input) == "" {
		cfg.Input = DefaultInput
	}

	return &cfg, nil
}
