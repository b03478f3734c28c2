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
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/streamnative/criteria/common/criteria"
)

func WriteValue(out io.Writer, format OutputFormat, value any) error {
	if format == OutputJSON {
		return writeJSON(out, value)
	}
	return writeYAML(out, value)
}

// WriteEntries prints the content of m keeping the insertion order.
func WriteEntries(out io.Writer, format OutputFormat, m *criteria.Map[any]) error {
	if format == OutputJSON {
		return writeJSON(out, m)
	}

	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range m.Entries() {
		value := &yaml.Node{}
		if err := value.Encode(e.Value); err != nil {
			return err
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key},
			value,
		)
	}
	if len(root.Content) == 0 {
		root.Style = yaml.FlowStyle
	}
	return writeYAML(out, root)
}

func writeJSON(out io.Writer, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	_, err = out.Write(append(b, "\n"...))
	return err
}

func writeYAML(out io.Writer, value any) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(value); err != nil {
		return err
	}
	return encoder.Close()
}
