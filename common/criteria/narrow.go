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
	"github.com/pkg/errors"

	"github.com/streamnative/criteria/common/optional"
)

func narrowStored[E any, V any](key string, value V) (E, error) {
	narrowed, ok := narrow[E](value)
	if !ok {
		var zero E
		return zero, errors.Wrapf(ErrTypeMismatch, "value of key '%s' is a %T, not a %T", key, value, zero)
	}
	return narrowed, nil
}

// GetAs behaves like GetIf on a value narrowed to E. A present value that is
// not an E yields ErrTypeMismatch; a stored nil narrows to the zero E.
func GetAs[E any, V any](m *Map[V], key string, conditions ...Predicate[E]) (optional.Optional[E], error) {
	found, err := m.Has(key)
	if err != nil || !found {
		return optional.None[E](), err
	}
	value, _ := m.Get(key)
	narrowed, err := narrowStored[E](key, value)
	if err != nil {
		return optional.None[E](), err
	}
	ok, err := testAll(narrowed, conditions...)
	if err != nil || !ok {
		return optional.None[E](), err
	}
	return optional.Some(narrowed), nil
}

// IfHasAs behaves like IfHasWhen on a value narrowed to E.
func IfHasAs[E any, V any](m *Map[V], key string, action func(E), condition Predicate[E]) (bool, error) {
	if err := requireKey(key); err != nil {
		return false, err
	}
	if action == nil {
		return false, invalidArgument("parameter 'action' cannot be nil")
	}
	if condition == nil {
		return false, invalidArgument("parameter 'condition' cannot be nil")
	}

	found, _ := m.Has(key)
	if !found {
		return false, nil
	}
	value, _ := m.Get(key)
	narrowed, err := narrowStored[E](key, value)
	if err != nil {
		return false, err
	}
	if !condition(narrowed) {
		return false, nil
	}
	action(narrowed)
	return true, nil
}
