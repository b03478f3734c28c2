// Copyright 2025 StreamNative, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package common

import (
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type OutputFormat string

const (
	OutputYAML OutputFormat = "yaml"
	OutputJSON OutputFormat = "json"
)

var ErrInvalidOutputFormat = errors.New("invalid output format")

func (o *OutputFormat) String() string {
	return string(*o)
}

func (o *OutputFormat) Set(s string) error {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case OutputYAML, OutputJSON:
		*o = f
		return nil
	default:
		return errors.Wrapf(ErrInvalidOutputFormat, "'%s', expected yaml or json", s)
	}
}

func (*OutputFormat) Type() string {
	return "format"
}

// Config holds the defaults that may be read from the --conf file. Command
// line flags take precedence over it.
type Config struct {
	Conditions []string     `mapstructure:"conditions"`
	Output     OutputFormat `mapstructure:"output"`
	LogLevel   string       `mapstructure:"log-level"`
}

var (
	ConfigFile string
	Conf       = NewConfig()
)

func NewConfig() Config {
	return Config{
		Output: OutputYAML,
	}
}

// LoadConfig reads the YAML config file at path into a Config seeded with
// the defaults. An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	conf := NewConfig()
	if path == "" {
		return conf, nil
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return conf, errors.Wrapf(err, "failed to read config file '%s'", path)
	}

	if err := v.Unmarshal(&conf, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return conf, errors.Wrap(err, "failed to load config")
	}

	if err := conf.Output.Set(string(conf.Output)); err != nil {
		return conf, err
	}
	return conf, nil
}
