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
	"github.com/streamnative/criteria/common/optional"
)

// Has is an alias of ContainsKey.
func (m *Map[V]) Has(key string) (bool, error) {
	return m.ContainsKey(key)
}

// IfHas invokes action with the value stored under key, which may be nil,
// and reports whether it did.
//
// The key is looked up without validation: an empty key is reported as
// absent rather than rejected.
func (m *Map[V]) IfHas(key string, action func(V)) (bool, error) {
	if action == nil {
		return false, invalidArgument("parameter 'action' cannot be nil")
	}
	value, found := m.lookup(key)
	if !found {
		return false, nil
	}
	action(value)
	return true, nil
}

// IfHasWhen invokes action only if key is present and its value satisfies
// condition.
func (m *Map[V]) IfHasWhen(key string, action func(V), condition Predicate[V]) (bool, error) {
	if err := requireKey(key); err != nil {
		return false, err
	}
	if action == nil {
		return false, invalidArgument("parameter 'action' cannot be nil")
	}
	if condition == nil {
		return false, invalidArgument("parameter 'condition' cannot be nil")
	}

	found, err := m.Has(key)
	if err != nil || !found {
		return false, err
	}
	value, _ := m.Get(key)
	ok, err := testAll(value, condition)
	if err != nil || !ok {
		return false, err
	}
	action(value)
	return true, nil
}

// PutIf stores value under key if it satisfies every condition. All
// conditions are checked for nil before any of them is evaluated.
//
// Calling PutIf without conditions passes a nil list and is rejected with
// ErrInvalidArgument; pass an empty slice to store unconditionally.
func (m *Map[V]) PutIf(key string, value V, conditions ...Predicate[V]) (bool, error) {
	if err := requireConditions(conditions); err != nil {
		return false, err
	}
	ok, err := testAll(value, conditions...)
	if err != nil || !ok {
		return false, err
	}
	if _, err := m.Put(key, value); err != nil {
		return false, err
	}
	return true, nil
}

// PutAllIf stores each entry of source whose value satisfies every
// condition. Entries are evaluated independently in ascending key order; a
// rejected entry does not stop the others. A missing condition list is
// rejected as in PutIf.
func (m *Map[V]) PutAllIf(source map[string]V, conditions ...Predicate[V]) error {
	if err := requireSource(source); err != nil {
		return err
	}
	if err := requireConditions(conditions); err != nil {
		return err
	}

	for _, key := range sortedKeys(source) {
		value := source[key]
		ok, err := testAll(value, conditions...)
		if err != nil {
			return err
		}
		if ok {
			m.put(key, value)
		}
	}
	return nil
}

// GetOptional returns the value stored under key, or None when the key is
// missing, empty, or holds nil.
func (m *Map[V]) GetOptional(key string) optional.Optional[V] {
	value, found := m.lookup(key)
	if !found || isNil(value) {
		return optional.None[V]()
	}
	return optional.Some(value)
}

// GetIf returns the value stored under key if it satisfies every condition.
// Unlike GetOptional, a stored nil that passes the conditions is returned
// as Some.
//
// As with PutIf, a call without conditions is rejected with
// ErrInvalidArgument; an empty slice accepts any present value.
func (m *Map[V]) GetIf(key string, conditions ...Predicate[V]) (optional.Optional[V], error) {
	found, err := m.Has(key)
	if err != nil || !found {
		return optional.None[V](), err
	}
	value, _ := m.Get(key)
	ok, err := testAll(value, conditions...)
	if err != nil || !ok {
		return optional.None[V](), err
	}
	return optional.Some(value), nil
}

func requireConditions[V any](conditions []Predicate[V]) error {
	if conditions == nil {
		return invalidArgument("parameter 'conditions' cannot be nil")
	}
	for i, condition := range conditions {
		if condition == nil {
			return invalidArgument("condition %d cannot be nil", i)
		}
	}
	return nil
}

// testAll evaluates conditions in order and stops at the first one that
// fails. Each condition is checked for nil just before it is evaluated, so
// a nil condition behind a failing one goes unnoticed.
func testAll[V any](value V, conditions ...Predicate[V]) (bool, error) {
	if conditions == nil {
		return false, invalidArgument("parameter 'conditions' cannot be nil")
	}
	for i, condition := range conditions {
		if condition == nil {
			return false, invalidArgument("condition %d cannot be nil", i)
		}
		if !condition(value) {
			return false, nil
		}
	}
	return true, nil
}
