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

package get

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/streamnative/criteria/cmd/common"
	"github.com/streamnative/criteria/cmd/flag"
)

var ErrKeyNotFound = errors.New("key not found or rejected")

type getOptions struct {
	conditions []string
	output     common.OutputFormat
}

func (o *getOptions) Reset() {
	o.conditions = nil
	o.output = common.OutputYAML
}

var (
	Options = getOptions{output: common.OutputYAML}
	Cmd     = &cobra.Command{
		Use:   "get FILE KEY",
		Short: "Print the value of a key if it satisfies the conditions",
		Long: `Load the mapping in FILE (yaml or json) and print the value stored under
KEY, provided the key is present and its value satisfies every condition.`,
		Args: cobra.ExactArgs(2),
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

	m, err := common.LoadDocument(args[0])
	if err != nil {
		return err
	}

	result, err := m.GetIf(args[1], conditions...)
	if err != nil {
		return err
	}
	value, ok := result.Get()
	if !ok {
		return errors.Wrapf(ErrKeyNotFound, "'%s'", args[1])
	}
	return common.WriteValue(cmd.OutOrStdout(), flag.ResolveOutput(cmd, Options.output), value)
}
