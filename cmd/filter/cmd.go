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

package filter

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/streamnative/criteria/cmd/common"
	"github.com/streamnative/criteria/cmd/flag"
	"github.com/streamnative/criteria/common/criteria"
)

type filterOptions struct {
	conditions []string
	output     common.OutputFormat
}

func (o *filterOptions) Reset() {
	o.conditions = nil
	o.output = common.OutputYAML
}

var (
	Options = filterOptions{output: common.OutputYAML}
	Cmd     = &cobra.Command{
		Use:   "filter FILE",
		Short: "Print the entries that satisfy the conditions",
		Long: `Load the mapping in FILE (yaml or json) and print, in document order,
only the entries whose value satisfies every condition.`,
		Args: cobra.ExactArgs(1),
		RunE: exec,
	}
)

func init() {
	flag.Conditions(Cmd, &Options.conditions)
	flag.Output(Cmd, &Options.output)
}

func exec(cmd *cobra.Command, args []string) error {
	conditions, err := flag.ResolveConditions(cmd, Options.conditions)
	if err != nil {
		return err
	}

	source, err := common.LoadDocument(args[0])
	if err != nil {
		return err
	}

	admitted := criteria.Create[any]()
	for _, e := range source.Entries() {
		ok, err := admitted.PutIf(e.Key, e.Value, conditions...)
		if err != nil {
			return err
		}
		if !ok {
			slog.Debug("Rejected entry", slog.String("key", e.Key))
		}
	}

	slog.Info("Filtered document",
		slog.String("file", args[0]),
		slog.Int("entries", source.Size()),
		slog.Int("admitted", admitted.Size()),
	)
	return common.WriteEntries(cmd.OutOrStdout(), flag.ResolveOutput(cmd, Options.output), admitted)
}
