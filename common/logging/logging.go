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

// Package logging defines a context-carried logging interface.
//
// A Logger is installed into a context.Context through a Factory (see
// SetFactory) and retrieved with Get. The package-level shorthand functions
// (Debugf, Infof, ...) log through whatever Logger is installed, honoring the
// level configured with SetLevel. When no Factory is installed, messages are
// discarded.
package logging

import (
	"context"
)

// Logger is a logging interface.
type Logger interface {
	// Debugf logs a formatted message at Debug level.
	Debugf(format string, args ...any)

	// Infof logs a formatted message at Info level.
	Infof(format string, args ...any)

	// Warningf logs a formatted message at Warning level.
	Warningf(format string, args ...any)

	// Errorf logs a formatted message at Error level.
	Errorf(format string, args ...any)

	// LogCall is a generic logging function. This is oriented more towards
	// utility functions than direct end-user usage.
	//
	// calldepth is the number of stack frames between the caller of the public
	// logging function and LogCall, so that backends may report the right
	// source location.
	LogCall(l Level, calldepth int, format string, args []any)
}

// Factory is a function that returns a Logger instance bound to the
// supplied context.
type Factory func(context.Context) Logger

type factoryKeyType int

var factoryKey factoryKeyType

// SetFactory sets the Logger factory for this context.
//
// The factory will be called each time Get(context) is used.
func SetFactory(ctx context.Context, f Factory) context.Context {
	return context.WithValue(ctx, factoryKey, f)
}

// GetFactory returns the currently-configured logging factory (or nil).
func GetFactory(ctx context.Context) Factory {
	if f, ok := ctx.Value(factoryKey).(Factory); ok {
		return f
	}
	return nil
}

// Get the current Logger, or a logger that ignores all messages if none
// is defined.
func Get(ctx context.Context) Logger {
	if f := GetFactory(ctx); f != nil {
		return f(ctx)
	}
	return Null
}
