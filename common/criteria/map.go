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

// Package criteria provides Map, an insertion-ordered string-keyed container
// whose insertions and lookups can be gated by caller supplied predicates.
//
// The empty string plays the role of the missing key: every operation that
// takes a key rejects it with ErrInvalidArgument, except IfHas and
// GetOptional which simply report it as absent. Values may be nil.
//
// A Map is not safe for concurrent use.
package criteria

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"golang.org/x/exp/constraints"
)

type Entry[V any] struct {
	Key   string
	Value V
}

type Map[V any] struct {
	container *linkedhashmap.Map
}

// slot boxes every stored value. The linkedhashmap reports a nil value as a
// missing key, so a nil is never handed to it directly.
type slot[V any] struct {
	value V
}

func (s slot[V]) String() string {
	return fmt.Sprint(s.value)
}

func (s slot[V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.value)
}

func Create[V any]() *Map[V] {
	return &Map[V]{
		container: linkedhashmap.New(),
	}
}

// From returns a new Map holding a copy of the entries of source, added in
// ascending key order.
func From[V any](source map[string]V) (*Map[V], error) {
	if err := requireSource(source); err != nil {
		return nil, err
	}

	m := Create[V]()
	for _, key := range sortedKeys(source) {
		m.put(key, source[key])
	}
	return m, nil
}

// FromEntries returns a new Map holding the given entries in the given order.
// A repeated key keeps its first position and its last value.
func FromEntries[V any](entries ...Entry[V]) (*Map[V], error) {
	for _, e := range entries {
		if err := requireKey(e.Key); err != nil {
			return nil, err
		}
	}

	m := Create[V]()
	for _, e := range entries {
		m.put(e.Key, e.Value)
	}
	return m, nil
}

func sortedKeys[K constraints.Ordered, V any](source map[K]V) []K {
	keys := make([]K, 0, len(source))
	for k := range source {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// unbox converts a raw stored slot back to V.
func unbox[V any](raw any) V {
	s, _ := raw.(slot[V])
	return s.value
}

func (m *Map[V]) put(key string, value V) {
	m.container.Put(key, slot[V]{value: value})
}

func (m *Map[V]) lookup(key string) (V, bool) {
	raw, found := m.container.Get(key)
	return unbox[V](raw), found
}

func (m *Map[V]) Size() int {
	return m.container.Size()
}

func (m *Map[V]) IsEmpty() bool {
	return m.container.Empty()
}

func (m *Map[V]) ContainsKey(key string) (bool, error) {
	if err := requireKey(key); err != nil {
		return false, err
	}
	_, found := m.container.Get(key)
	return found, nil
}

// ContainsValue reports whether any stored value is deeply equal to value.
func (m *Map[V]) ContainsValue(value V) bool {
	for it := m.container.Iterator(); it.Next(); {
		if reflect.DeepEqual(unbox[V](it.Value()), value) {
			return true
		}
	}
	return false
}

// Get returns the value stored under key. The zero value is returned both
// for a missing key and for a stored nil.
func (m *Map[V]) Get(key string) (V, error) {
	if err := requireKey(key); err != nil {
		var zero V
		return zero, err
	}
	value, _ := m.lookup(key)
	return value, nil
}

// Put stores value under key and returns the value it replaced, or the zero
// value. An existing key keeps its position.
func (m *Map[V]) Put(key string, value V) (V, error) {
	if err := requireKey(key); err != nil {
		var zero V
		return zero, err
	}
	previous, _ := m.lookup(key)
	m.put(key, value)
	return previous, nil
}

func (m *Map[V]) Remove(key string) (V, error) {
	if err := requireKey(key); err != nil {
		var zero V
		return zero, err
	}
	removed, _ := m.lookup(key)
	m.container.Remove(key)
	return removed, nil
}

func (m *Map[V]) Clear() {
	m.container.Clear()
}

func (m *Map[V]) Keys() []string {
	keys := make([]string, 0, m.container.Size())
	for it := m.container.Iterator(); it.Next(); {
		keys = append(keys, it.Key().(string))
	}
	return keys
}

func (m *Map[V]) Values() []V {
	values := make([]V, 0, m.container.Size())
	for it := m.container.Iterator(); it.Next(); {
		values = append(values, unbox[V](it.Value()))
	}
	return values
}

func (m *Map[V]) Entries() []Entry[V] {
	entries := make([]Entry[V], 0, m.container.Size())
	for it := m.container.Iterator(); it.Next(); {
		entries = append(entries, Entry[V]{
			Key:   it.Key().(string),
			Value: unbox[V](it.Value()),
		})
	}
	return entries
}

// PutAll copies every entry of source into the map, in ascending key order.
// Nothing is copied if source is nil or holds an empty key.
func (m *Map[V]) PutAll(source map[string]V) error {
	if err := requireSource(source); err != nil {
		return err
	}
	for _, key := range sortedKeys(source) {
		m.put(key, source[key])
	}
	return nil
}

func (m *Map[V]) String() string {
	var builder strings.Builder
	builder.WriteString("{")

	first := true
	for it := m.container.Iterator(); it.Next(); {
		if !first {
			builder.WriteString(", ")
		}
		builder.WriteString(fmt.Sprintf("%v: %v", it.Key(), it.Value()))
		first = false
	}
	builder.WriteString("}")
	return builder.String()
}

func (m *Map[V]) MarshalJSON() ([]byte, error) {
	return m.container.ToJSON()
}
