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

package flag

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/streamnative/criteria/cmd/common"
	"github.com/streamnative/criteria/common/criteria"
)

const (
	ConditionFlag = "condition"
	OutputFlag    = "output"
)

func Conditions(cmd *cobra.Command, conf *[]string) {
	cmd.Flags().StringSliceVarP(conf, ConditionFlag, "c", nil,
		"Condition every value must satisfy ["+strings.Join(criteria.ConditionNames(), "|")+"]")
}

func Output(cmd *cobra.Command, conf *common.OutputFormat) {
	cmd.Flags().VarP(conf, OutputFlag, "o", "Output format [yaml|json]")
}

// ResolveConditions returns the conditions given on the command line, or the
// configured ones when the flag was not set.
func ResolveConditions(cmd *cobra.Command, names []string) ([]criteria.Predicate[any], error) {
	if !cmd.Flags().Changed(ConditionFlag) {
		names = common.Conf.Conditions
	}
	return common.ResolveConditions(names)
}

// ResolveOutput returns the output format given on the command line, or the
// configured one when the flag was not set.
func ResolveOutput(cmd *cobra.Command, format common.OutputFormat) common.OutputFormat {
	if !cmd.Flags().Changed(OutputFlag) {
		return common.Conf.Output
	}
	return format
}
