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

package optional

import (
	"encoding/json"

	"github.com/pkg/errors"
)

var ErrNoneValue = errors.New("optional: value is not present")

// Optional holds either a value (Some) or nothing (None). Unlike a pointer,
// a present Optional may legitimately wrap a nil value.
type Optional[T any] struct {
	present bool
	value   T
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{
		present: true,
		value:   value,
	}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) IsSome() bool {
	return o.present
}

func (o Optional[T]) IsNone() bool {
	return !o.present
}

// Get returns the wrapped value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// Unwrap returns the wrapped value and panics if there is none.
func (o Optional[T]) Unwrap() T {
	return o.Expect("unwrap called on an empty optional")
}

func (o Optional[T]) Expect(msg string) T {
	if !o.present {
		panic(errors.Wrap(ErrNoneValue, msg))
	}
	return o.value
}

func (o Optional[T]) OrElse(other T) T {
	if !o.present {
		return other
	}
	return o.value
}

// IfSome invokes fn with the wrapped value when present and reports whether
// it did.
func (o Optional[T]) IfSome(fn func(T)) bool {
	if !o.present {
		return false
	}
	fn(o.value)
	return true
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
