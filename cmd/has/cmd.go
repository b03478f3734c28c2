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

package has

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/streamnative/criteria/cmd/common"
)

var Cmd = &cobra.Command{
	Use:   "has FILE KEY",
	Short: "Report whether a key is present",
	Long:  `Load the mapping in FILE (yaml or json) and print whether KEY is present.`,
	Args:  cobra.ExactArgs(2),
	RunE:  exec,
}

func exec(cmd *cobra.Command, args []string) error {
	m, err := common.LoadDocument(args[0])
	if err != nil {
		return err
	}
	found, err := m.Has(args[1])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), found)
	return err
}
