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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_exec(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1\nb: ~\n"), 0o600))

	for _, test := range []struct {
		key string
		out string
	}{
		{"a", "true"},
		{"b", "true"},
		{"c", "false"},
	} {
		t.Run(test.key, func(t *testing.T) {
			actual := new(bytes.Buffer)
			Cmd.SetOut(actual)
			Cmd.SetArgs([]string{path, test.key})
			assert.NoError(t, Cmd.Execute())
			assert.Equal(t, test.out, strings.TrimSpace(actual.String()))
		})
	}
}
