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

package criteria

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type object struct {
	id int
}

func TestMap_From(t *testing.T) {
	source := map[string]string{
		"1": "one",
		"2": "two",
		"3": "three",
	}

	m, err := From(source)
	require.NoError(t, err)
	for _, key := range []string{"1", "2", "3"} {
		found, err := m.Has(key)
		assert.NoError(t, err)
		assert.True(t, found)
	}
	assert.Equal(t, 3, m.Size())
	assert.Equal(t, []string{"1", "2", "3"}, m.Keys())

	// the container owns its own copy
	source["4"] = "four"
	delete(source, "1")
	assert.Equal(t, 3, m.Size())
	v, err := m.Get("1")
	assert.NoError(t, err)
	assert.Equal(t, "one", v)
}

func TestMap_FromInvalid(t *testing.T) {
	_, err := From[string](nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = From(map[string]int{"": 1, "a": 2})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestMap_FromEntries(t *testing.T) {
	m, err := FromEntries(
		Entry[int]{Key: "z", Value: 1},
		Entry[int]{Key: "a", Value: 2},
		Entry[int]{Key: "z", Value: 3},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a"}, m.Keys())
	assert.Equal(t, []int{3, 2}, m.Values())

	_, err = FromEntries(Entry[int]{Key: "a"}, Entry[int]{Key: ""})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestMap_SizeAndEmpty(t *testing.T) {
	m := Create[any]()
	assert.True(t, m.IsEmpty())
	assert.Equal(t, 0, m.Size())

	_, _ = m.Put("key1", &object{})
	assert.False(t, m.IsEmpty())
	assert.Equal(t, 1, m.Size())

	_, _ = m.Put("key2", &object{})
	_, _ = m.Put("key3", &object{})
	assert.False(t, m.IsEmpty())
	assert.Equal(t, 3, m.Size())

	m.Clear()
	assert.True(t, m.IsEmpty())
	assert.Equal(t, 0, m.Size())
}

func TestMap_PutGetRemoveScenario(t *testing.T) {
	m := Create[int]()
	assert.Equal(t, 0, m.Size())
	assert.True(t, m.IsEmpty())

	previous, err := m.Put("a", 1)
	assert.NoError(t, err)
	assert.Equal(t, 0, previous)
	assert.Equal(t, 1, m.Size())

	previous, err = m.Put("a", 2)
	assert.NoError(t, err)
	assert.Equal(t, 1, previous)
	v, err := m.Get("a")
	assert.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, m.Size())

	removed, err := m.Remove("a")
	assert.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 0, m.Size())

	removed, err = m.Remove("a")
	assert.NoError(t, err)
	assert.Equal(t, 0, removed)
}

func TestMap_PutReturnsPrevious(t *testing.T) {
	m := Create[any]()
	original := &object{id: 1}

	previous, err := m.Put("key1", original)
	assert.NoError(t, err)
	assert.Nil(t, previous)

	previous, err = m.Put("key1", &object{id: 2})
	assert.NoError(t, err)
	assert.Same(t, original, previous)
}

func TestMap_Contains(t *testing.T) {
	m := Create[any]()

	contains := func(key string) bool {
		found, err := m.ContainsKey(key)
		require.NoError(t, err)
		return found
	}

	assert.False(t, contains("key1"))
	assert.False(t, contains("key2"))
	assert.False(t, m.ContainsValue("value1"))
	assert.False(t, m.ContainsValue("value2"))

	_, _ = m.Put("key1", "value1")
	assert.True(t, contains("key1"))
	assert.False(t, contains("key2"))
	assert.True(t, m.ContainsValue("value1"))
	assert.False(t, m.ContainsValue("value2"))

	_, _ = m.Put("key2", "value2")
	assert.True(t, contains("key1"))
	assert.True(t, contains("key2"))
	assert.True(t, m.ContainsValue("value1"))
	assert.True(t, m.ContainsValue("value2"))

	_, _ = m.Remove("key1")
	assert.False(t, contains("key1"))
	assert.False(t, m.ContainsValue("value1"))
	assert.True(t, contains("key2"))
	assert.True(t, m.ContainsValue("value2"))
}

func TestMap_ContainsValueUsesEquality(t *testing.T) {
	m := Create[any]()
	_, _ = m.Put("a", &object{id: 7})
	_, _ = m.Put("b", nil)
	_, _ = m.Put("c", []int{1, 2})

	assert.True(t, m.ContainsValue(&object{id: 7}))
	assert.False(t, m.ContainsValue(&object{id: 8}))
	assert.True(t, m.ContainsValue(nil))
	assert.True(t, m.ContainsValue([]int{1, 2}))
}

func TestMap_GetMissingAndNil(t *testing.T) {
	m := Create[any]()

	v, err := m.Get("unknownkey")
	assert.NoError(t, err)
	assert.Nil(t, v)

	_, _ = m.Put("key1", "value1")
	v, err = m.Get("key1")
	assert.NoError(t, err)
	assert.Equal(t, "value1", v)

	_, _ = m.Put("k", nil)
	v, err = m.Get("k")
	assert.NoError(t, err)
	assert.Nil(t, v)

	found, err := m.Has("k")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.True(t, m.GetOptional("k").IsNone())
}

func TestMap_NilValueIsPresent(t *testing.T) {
	m := Create[any]()
	_, _ = m.Put("a", 1)
	_, _ = m.Put("k", nil)
	_, _ = m.Put("z", nil)

	found, err := m.ContainsKey("k")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.True(t, m.ContainsValue(nil))
	assert.Equal(t, []string{"a", "k", "z"}, m.Keys())
	assert.Equal(t, []any{1, nil, nil}, m.Values())
	assert.Equal(t, "{a: 1, k: <nil>, z: <nil>}", m.String())

	previous, err := m.Put("k", "v")
	assert.NoError(t, err)
	assert.Nil(t, previous)
	assert.Equal(t, []string{"a", "k", "z"}, m.Keys())

	removed, err := m.Remove("z")
	assert.NoError(t, err)
	assert.Nil(t, removed)
	assert.Equal(t, 2, m.Size())
	assert.Equal(t, []string{"a", "k"}, m.Keys())
	found, _ = m.Has("z")
	assert.False(t, found)
}

func TestMap_NilPointerValue(t *testing.T) {
	m := Create[*object]()
	_, _ = m.Put("k", nil)

	found, err := m.Has("k")
	assert.NoError(t, err)
	assert.True(t, found)

	removed, err := m.Remove("k")
	assert.NoError(t, err)
	assert.Nil(t, removed)
	assert.True(t, m.IsEmpty())
}

func TestMap_RejectsEmptyKey(t *testing.T) {
	m := Create[any]()
	_, _ = m.Put("a", 1)

	_, err := m.Has("")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = m.ContainsKey("")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = m.Get("")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = m.Put("", &object{})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = m.Remove("")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	assert.Equal(t, 1, m.Size())
}

func TestMap_InsertionOrder(t *testing.T) {
	m := Create[int]()
	_, _ = m.Put("c", 1)
	_, _ = m.Put("a", 2)
	_, _ = m.Put("b", 3)
	_, _ = m.Put("c", 4)

	assert.Equal(t, []string{"c", "a", "b"}, m.Keys())
	assert.Equal(t, []int{4, 2, 3}, m.Values())
	assert.Equal(t, []Entry[int]{{"c", 4}, {"a", 2}, {"b", 3}}, m.Entries())

	_, _ = m.Remove("a")
	_, _ = m.Put("a", 5)
	assert.Equal(t, []string{"c", "b", "a"}, m.Keys())

	// snapshots do not alias the container
	keys := m.Keys()
	keys[0] = "x"
	assert.Equal(t, []string{"c", "b", "a"}, m.Keys())
}

func TestMap_PutAll(t *testing.T) {
	m := Create[any]()
	_, _ = m.Put("key1", "old")

	err := m.PutAll(map[string]any{
		"key1": "value1",
		"key2": "value2",
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, m.Size())
	v, _ := m.Get("key1")
	assert.Equal(t, "value1", v)
}

func TestMap_PutAllInvalid(t *testing.T) {
	m := Create[any]()

	assert.ErrorIs(t, m.PutAll(nil), ErrInvalidArgument)

	err := m.PutAll(map[string]any{"": "value1", "key2": "value2"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.True(t, m.IsEmpty())
}

func TestMap_String(t *testing.T) {
	m := Create[int]()
	assert.Equal(t, "{}", m.String())

	_, _ = m.Put("b", 1)
	_, _ = m.Put("a", 2)
	assert.Equal(t, "{b: 1, a: 2}", m.String())
}

func TestMap_MarshalJSON(t *testing.T) {
	m := Create[any]()
	_, _ = m.Put("b", 1)
	_, _ = m.Put("a", "x")
	_, _ = m.Put("c", nil)

	b, err := json.Marshal(m)
	assert.NoError(t, err)
	assert.Equal(t, `{"b":1,"a":"x","c":null}`, string(b))
}
