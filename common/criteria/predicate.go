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
	"reflect"
	"sort"

	"github.com/pkg/errors"
)

// Predicate is a pure admission condition over a candidate value.
type Predicate[V any] func(value V) bool

// IsNull reports whether value is nil: a nil interface, or a nil pointer,
// map, slice, func or chan.
func IsNull[V any](value V) bool {
	return isNil(value)
}

func NotNull[V any](value V) bool {
	return !isNil(value)
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}

// Text is the set of string-like values the string predicates accept. A
// plain string is never null; a nil *string is.
type Text interface {
	~string | *string
}

func textOf[S Text](value S) (text string, present bool) {
	if p, ok := any(value).(*string); ok {
		if p == nil {
			return "", false
		}
		return *p, true
	}
	return reflect.ValueOf(value).String(), true
}

func StringIsNull[S Text](value S) bool {
	_, present := textOf(value)
	return !present
}

func StringNotNull[S Text](value S) bool {
	_, present := textOf(value)
	return present
}

// StringIsEmpty treats a nil *string as empty.
func StringIsEmpty[S Text](value S) bool {
	text, _ := textOf(value)
	return text == ""
}

func StringNotEmpty[S Text](value S) bool {
	return !StringIsEmpty(value)
}

func StringNotNullNotEmpty[S Text](value S) bool {
	text, present := textOf(value)
	return present && text != ""
}

func StringNotNullButEmpty[S Text](value S) bool {
	text, present := textOf(value)
	return present && text == ""
}

// All is satisfied when every predicate is. A nil predicate counts as unsatisfied.
func All[V any](predicates ...Predicate[V]) Predicate[V] {
	return func(value V) bool {
		for _, p := range predicates {
			if p == nil || !p(value) {
				return false
			}
		}
		return true
	}
}

// Any is satisfied when at least one non-nil predicate is.
func Any[V any](predicates ...Predicate[V]) Predicate[V] {
	return func(value V) bool {
		for _, p := range predicates {
			if p != nil && p(value) {
				return true
			}
		}
		return false
	}
}

func Not[V any](predicate Predicate[V]) Predicate[V] {
	if predicate == nil {
		return nil
	}
	return func(value V) bool {
		return !predicate(value)
	}
}

// Narrow adapts a predicate over E to one over V. Values that are not an E
// fail the predicate; a nil value is handed over as the zero E. A nil
// predicate stays nil so that callers still reject it.
func Narrow[V any, E any](predicate Predicate[E]) Predicate[V] {
	if predicate == nil {
		return nil
	}
	return func(value V) bool {
		narrowed, ok := narrow[E](value)
		if !ok {
			return false
		}
		return predicate(narrowed)
	}
}

func narrow[E any](value any) (E, bool) {
	if value == nil {
		var zero E
		return zero, true
	}
	narrowed, ok := value.(E)
	return narrowed, ok
}

const (
	ConditionNull            = "null"
	ConditionNotNull         = "not-null"
	ConditionEmpty           = "empty"
	ConditionNotEmpty        = "not-empty"
	ConditionNotNullNotEmpty = "not-null-not-empty"
	ConditionNotNullButEmpty = "not-null-but-empty"
)

// Named looks up a built-in condition by name. String conditions are
// narrowed, so they reject values that are not strings.
func Named[V any](name string) (Predicate[V], error) {
	switch name {
	case ConditionNull:
		return IsNull[V], nil
	case ConditionNotNull:
		return NotNull[V], nil
	case ConditionEmpty:
		return Narrow[V, string](StringIsEmpty[string]), nil
	case ConditionNotEmpty:
		return Narrow[V, string](StringNotEmpty[string]), nil
	case ConditionNotNullNotEmpty:
		return All[V](NotNull[V], Narrow[V, string](StringNotNullNotEmpty[string])), nil
	case ConditionNotNullButEmpty:
		return All[V](NotNull[V], Narrow[V, string](StringNotNullButEmpty[string])), nil
	default:
		return nil, errors.Wrapf(ErrUnknownCondition, "'%s'", name)
	}
}

// ConditionNames lists the names accepted by Named.
func ConditionNames() []string {
	names := []string{
		ConditionNull,
		ConditionNotNull,
		ConditionEmpty,
		ConditionNotEmpty,
		ConditionNotNullNotEmpty,
		ConditionNotNullButEmpty,
	}
	sort.Strings(names)
	return names
}
