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
)

var (
	ErrInvalidArgument  = errors.New("criteria: invalid argument")
	ErrTypeMismatch     = errors.New("criteria: type mismatch")
	ErrUnknownCondition = errors.New("criteria: unknown condition")
)

func invalidArgument(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

func requireKey(key string) error {
	if key == "" {
		return invalidArgument("parameter 'key' cannot be empty")
	}
	return nil
}

func requireSource[V any](source map[string]V) error {
	if source == nil {
		return invalidArgument("parameter 'map' cannot be nil")
	}
	if _, found := source[""]; found {
		return invalidArgument("map cannot contain empty keys")
	}
	return nil
}
