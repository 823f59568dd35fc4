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

// Package memlogger implements an in-memory logging.Logger, useful in tests
// to assert on what was logged.
package memlogger

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/luci/parfor/common/logging"
)

// LogEntry is a single entry in a MemLogger, containing a message and a
// severity.
type LogEntry struct {
	Level     logging.Level
	Msg       string
	Data      map[string]any
	CallDepth int
}

// MemLogger is an implementation of Logger.
//
// Loggers produced from the same Use call share their entries, so the logger
// retrieved from any derived context sees everything logged through it.
type MemLogger struct {
	ctx context.Context

	lock   *sync.Mutex
	data   *[]LogEntry
	fields map[string]any
}

var _ logging.Logger = (*MemLogger)(nil)

func (m *MemLogger) inner(lvl logging.Level, calldepth int, format string, args []any) {
	if m.ctx != nil && !logging.IsLogging(m.ctx, lvl) {
		return
	}
	m.lock.Lock()
	defer m.lock.Unlock()
	*m.data = append(*m.data, LogEntry{
		Level:     lvl,
		Msg:       fmt.Sprintf(format, args...),
		Data:      m.fields,
		CallDepth: calldepth + 1,
	})
}

// Debugf implements the logging.Logger interface.
func (m *MemLogger) Debugf(format string, args ...any) {
	m.inner(logging.Debug, 1, format, args)
}

// Infof implements the logging.Logger interface.
func (m *MemLogger) Infof(format string, args ...any) {
	m.inner(logging.Info, 1, format, args)
}

// Warningf implements the logging.Logger interface.
func (m *MemLogger) Warningf(format string, args ...any) {
	m.inner(logging.Warning, 1, format, args)
}

// Errorf implements the logging.Logger interface.
func (m *MemLogger) Errorf(format string, args ...any) {
	m.inner(logging.Error, 1, format, args)
}

// LogCall implements the logging.Logger interface.
func (m *MemLogger) LogCall(lvl logging.Level, calldepth int, format string, args []any) {
	m.inner(lvl, calldepth+1, format, args)
}

// Messages returns a copy of all of the messages currently logged.
func (m *MemLogger) Messages() []LogEntry {
	m.lock.Lock()
	defer m.lock.Unlock()
	ret := make([]LogEntry, len(*m.data))
	copy(ret, *m.data)
	return ret
}

// HasFunc returns true iff the MemLogger contains a message for which fn
// returns true.
func (m *MemLogger) HasFunc(fn func(*LogEntry) bool) bool {
	m.lock.Lock()
	defer m.lock.Unlock()
	for i := range *m.data {
		if fn(&(*m.data)[i]) {
			return true
		}
	}
	return false
}

// Reset resets the logged messages recorded so far.
func (m *MemLogger) Reset() {
	m.lock.Lock()
	defer m.lock.Unlock()
	*m.data = nil
}

// Dump dumps the current memory logger contents to the given writer in
// a human-readable format.
func (m *MemLogger) Dump(w io.Writer) error {
	for _, e := range m.Messages() {
		if _, err := fmt.Fprintf(w, "%s %s\n", e.Level, e.Msg); err != nil {
			return err
		}
	}
	return nil
}

// New creates a MemLogger that is not bound to any context. It records every
// message regardless of level.
func New() *MemLogger {
	return &MemLogger{lock: &sync.Mutex{}, data: &[]LogEntry{}}
}

// Use adds a memory backed Logger to Context. Retrieve it with
// logging.Get(ctx).(*MemLogger).
func Use(ctx context.Context) context.Context {
	lock := &sync.Mutex{}
	data := &[]LogEntry{}
	return logging.SetFactory(ctx, func(ctx context.Context) logging.Logger {
		return &MemLogger{
			ctx:    ctx,
			lock:   lock,
			data:   data,
			fields: logging.GetFields(ctx),
		}
	})
}
