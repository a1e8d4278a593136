/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package config loads the enumx CLI configuration.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"dirpx.dev/enumx/apis"
	libconfig "dirpx.dev/enumx/config"
)

// FileName is the configuration file looked up in the working directory.
const FileName = "enumx.yml"

// EnvPrefix prefixes the environment variables overriding file values.
const EnvPrefix = "ENUMX"

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("enumx(config): invalid configuration")

// Config is the CLI configuration.
type Config struct {
	// BasePath anchors every relative path below.
	BasePath string `mapstructure:"base_path"`
	// Paths are the directories, files or globs holding declaration files.
	Paths []string `mapstructure:"paths"`
	// EnumsDir is where "make" writes new declaration files.
	EnumsDir string `mapstructure:"enums_dir"`
	// TypeScript is the file synchronized by "ts" and "make --typescript".
	TypeScript string `mapstructure:"typescript"`
	// MetadataNewestFirst configures the library, see apis.Config.
	MetadataNewestFirst bool `mapstructure:"metadata_newest_first"`
}

// Load reads path, or enumx.yml in the working directory when path is empty.
// A missing enumx.yml is not an error: defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("base_path", ".")
	v.SetDefault("paths", []string{"enums"})
	v.SetDefault("enums_dir", "enums")
	v.SetDefault("typescript", "resources/js/enums.ts")
	v.SetDefault("metadata_newest_first", true)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every required value is set.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BasePath) == "" {
		return fmt.Errorf("%w: base_path is empty", ErrInvalidConfig)
	}
	if len(c.Paths) == 0 {
		return fmt.Errorf("%w: paths is empty", ErrInvalidConfig)
	}
	for i, p := range c.Paths {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%w: paths[%d] is empty", ErrInvalidConfig, i)
		}
	}
	if strings.TrimSpace(c.EnumsDir) == "" {
		return fmt.Errorf("%w: enums_dir is empty", ErrInvalidConfig)
	}
	return nil
}

// Resolve anchors a relative path on BasePath.
func (c *Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.BasePath, path)
}

// DeclarationPaths returns Paths resolved against BasePath.
func (c *Config) DeclarationPaths() []string {
	out := make([]string, len(c.Paths))
	for i, p := range c.Paths {
		out[i] = c.Resolve(p)
	}
	return out
}

// EnumsPath returns EnumsDir resolved against BasePath.
func (c *Config) EnumsPath() string { return c.Resolve(c.EnumsDir) }

// TypeScriptPath returns TypeScript resolved against BasePath.
func (c *Config) TypeScriptPath() string { return c.Resolve(c.TypeScript) }

// Library returns the library configuration the CLI runs with.
func (c *Config) Library() apis.Config {
	return libconfig.NewConfig(libconfig.WithMetadataNewestFirst(c.MetadataNewestFirst))
}
