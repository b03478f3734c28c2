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

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/streamnative/criteria/cmd/common"
	"github.com/streamnative/criteria/cmd/filter"
	"github.com/streamnative/criteria/cmd/get"
	"github.com/streamnative/criteria/cmd/has"
	"github.com/streamnative/criteria/common/logging"
)

var (
	logLevelStr string
	rootCmd     = &cobra.Command{
		Use:               "criteria",
		Short:             "Conditional key-value tools",
		Long:              `Inspect key-value documents through conditional lookups and insertions.`,
		PersistentPreRunE: configure,
		SilenceUsage:      true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevelStr, "log-level", "l", logging.DefaultLogLevel.String(), "Set logging level [debug|info|warn|error]")
	rootCmd.PersistentFlags().BoolVarP(&logging.LogJSON, "log-json", "j", false, "Print logs in JSON format")
	rootCmd.PersistentFlags().StringVarP(&common.ConfigFile, "conf", "f", "", "Config file with default conditions and output format")

	rootCmd.AddCommand(filter.Cmd)
	rootCmd.AddCommand(get.Cmd)
	rootCmd.AddCommand(has.Cmd)
}

func configure(cmd *cobra.Command, _ []string) error {
	conf, err := common.LoadConfig(common.ConfigFile)
	if err != nil {
		return err
	}
	common.Conf = conf

	levelStr := logLevelStr
	if !cmd.Flags().Changed("log-level") && conf.LogLevel != "" {
		levelStr = conf.LogLevel
	}
	logLevel, err := logging.ParseLogLevel(levelStr)
	if err != nil {
		return err
	}
	logging.LogLevel = logLevel
	logging.ConfigureLogger()

	slog.Debug("Configured",
		slog.String("config-file", common.ConfigFile),
		slog.Any("conditions", conf.Conditions),
		slog.String("output", conf.Output.String()),
	)
	return nil
}

func main() {
	if _, err := maxprocs.Set(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
