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
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/streamnative/criteria/common/criteria"
)

var ErrInvalidDocument = errors.New("document must be a mapping")

// ParseDocument decodes a YAML or JSON document whose top level is a
// mapping with string keys, keeping the entries in document order.
func ParseDocument(data []byte) ([]criteria.Entry[any], error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse document")
	}
	if doc.Kind == 0 {
		return []criteria.Entry[any]{}, nil
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, ErrInvalidDocument
	}

	root := doc.Content[0]
	entries := make([]criteria.Entry[any], 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i]
		if key.Kind != yaml.ScalarNode || key.ShortTag() != "!!str" {
			return nil, errors.Wrapf(ErrInvalidDocument, "key '%s' at line %d is not a string", key.Value, key.Line)
		}
		var value any
		if err := root.Content[i+1].Decode(&value); err != nil {
			return nil, errors.Wrapf(err, "failed to decode value of key '%s'", key.Value)
		}
		entries = append(entries, criteria.Entry[any]{
			Key:   key.Value,
			Value: value,
		})
	}
	return entries, nil
}

// LoadDocument reads the document at path into a new container.
func LoadDocument(path string) (*criteria.Map[any], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read '%s'", path)
	}
	entries, err := ParseDocument(data)
	if err != nil {
		return nil, err
	}

	m, err := criteria.FromEntries(entries...)
	if err != nil {
		return nil, err
	}
	slog.Debug("Loaded document",
		slog.String("path", path),
		slog.Int("entries", m.Size()),
	)
	return m, nil
}

// ResolveConditions maps condition names to the built-in predicates. Every
// unknown name is reported. No names yields an empty, non-nil list that
// admits every value.
func ResolveConditions(names []string) ([]criteria.Predicate[any], error) {
	conditions := make([]criteria.Predicate[any], 0, len(names))
	var err error
	for _, name := range names {
		condition, e := criteria.Named[any](strings.TrimSpace(name))
		if e != nil {
			err = multierr.Append(err, e)
			continue
		}
		conditions = append(conditions, condition)
	}
	if err != nil {
		return nil, err
	}
	return conditions, nil
}
