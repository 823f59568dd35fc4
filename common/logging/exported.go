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

import "context"

// Debugf logs a message at Debug level through the context's Logger.
func Debugf(ctx context.Context, format string, args ...any) {
	emit(ctx, Debug, format, args)
}

// Infof logs a message at Info level through the context's Logger.
func Infof(ctx context.Context, format string, args ...any) {
	emit(ctx, Info, format, args)
}

// Warningf logs a message at Warning level through the context's Logger.
func Warningf(ctx context.Context, format string, args ...any) {
	emit(ctx, Warning, format, args)
}

// Errorf logs a message at Error level through the context's Logger.
func Errorf(ctx context.Context, format string, args ...any) {
	emit(ctx, Error, format, args)
}

// Logf logs a message at the supplied level through the context's Logger.
func Logf(ctx context.Context, l Level, format string, args ...any) {
	emit(ctx, l, format, args)
}

// emit is called directly by the exported shorthands, so the user's frame is
// two above it.
func emit(ctx context.Context, l Level, format string, args []any) {
	Get(ctx).LogCall(l, 2, format, args)
}
