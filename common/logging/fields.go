// Copyright 2015 The LUCI Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// ErrorKey is a logging field key to use for errors.
const ErrorKey = "error"

// Fields maps string keys to arbitrary values.
//
// Fields can be applied to a Context. Loggers created from that Context
// attach the Fields to every message they emit.
type Fields map[string]any

// Copy returns a copy of this Fields with the keys from other overlaid on
// top of it.
func (f Fields) Copy(other Fields) Fields {
	if len(f) == 0 && len(other) == 0 {
		return nil
	}
	ret := make(Fields, len(f)+len(other))
	for k, v := range f {
		ret[k] = v
	}
	for k, v := range other {
		ret[k] = v
	}
	return ret
}

// SortedEntries returns the field keys in lexicographic order.
func (f Fields) SortedEntries() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String returns a string describing the contents of f in a sorted,
// dictionary-like format.
func (f Fields) String() string {
	parts := make([]string, 0, len(f))
	for _, k := range f.SortedEntries() {
		v := f[k]
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		parts = append(parts, fmt.Sprintf("%q:%#v", k, v))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Debugf is a shorthand method to log with these Fields at Debug level.
func (f Fields) Debugf(ctx context.Context, format string, args ...any) {
	emit(SetFields(ctx, f), Debug, format, args)
}

// Infof is a shorthand method to log with these Fields at Info level.
func (f Fields) Infof(ctx context.Context, format string, args ...any) {
	emit(SetFields(ctx, f), Info, format, args)
}

// Warningf is a shorthand method to log with these Fields at Warning level.
func (f Fields) Warningf(ctx context.Context, format string, args ...any) {
	emit(SetFields(ctx, f), Warning, format, args)
}

// Errorf is a shorthand method to log with these Fields at Error level.
func (f Fields) Errorf(ctx context.Context, format string, args ...any) {
	emit(SetFields(ctx, f), Error, format, args)
}

type fieldsKeyType int

var fieldsKey fieldsKeyType

// SetFields adds the additional fields as context for the current Logger. The
// display of these fields depends on the implementation of the Logger. The
// new context will contain the combination of its current Fields, updated
// with the new ones. New fields will overwrite old field values.
func SetFields(ctx context.Context, fields Fields) context.Context {
	return context.WithValue(ctx, fieldsKey, GetFields(ctx).Copy(fields))
}

// SetField is a convenience method for SetFields for a single key/value
// pair.
func SetField(ctx context.Context, key string, value any) context.Context {
	return SetFields(ctx, Fields{key: value})
}

// SetError returns a context whose Fields carry err under ErrorKey.
func SetError(ctx context.Context, err error) context.Context {
	return SetField(ctx, ErrorKey, err)
}

// GetFields returns the current Fields.
//
// This method is used for logger implementations with the understanding that
// the returned fields must not be mutated.
func GetFields(ctx context.Context) Fields {
	if f, ok := ctx.Value(fieldsKey).(Fields); ok {
		return f
	}
	return nil
}
