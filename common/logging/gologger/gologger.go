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

// Package gologger is a logging.Logger implementation backed by the
// github.com/op/go-logging library.
package gologger

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	gol "github.com/op/go-logging"

	"github.com/luci/parfor/common/logging"
)

// StandardFormat first prints process ID, time, logging level and sequence
// number, all colored. Then the message.
const StandardFormat = `%{color}[P%{pid} %{time:15:04:05.000} %{level:.4s} %{id:03x}]` +
	`%{color:reset} %{message}`

// fieldsPadding is the width messages are padded to before their Fields are
// appended.
const fieldsPadding = 44

// StdConfig is the LoggerConfig instance used by the package-level methods.
var StdConfig = LoggerConfig{Out: os.Stderr, Level: gol.DEBUG}

// LoggerConfig owns a go-logging Logger and hands out logging.Logger
// instances bound to individual contexts.
type LoggerConfig struct {
	// [OPTIONAL] Format is the go-logging format string.
	//
	// Default: StandardFormat.
	Format string

	// [OPTIONAL] Out is the writer that messages are written to.
	//
	// Default: os.Stderr.
	Out io.Writer

	// Level is the go-logging level below which messages are dropped,
	// regardless of the context level.
	//
	// The zero value is gol.CRITICAL; use gol.DEBUG to leave all filtering to
	// the context, as StdConfig does.
	Level gol.Level

	once sync.Once
	gl   *gol.Logger
}

// Use registers a go-logging based logger as the default logger of the
// context.
func (lc *LoggerConfig) Use(ctx context.Context) context.Context {
	return logging.SetFactory(ctx, lc.NewLogger)
}

// NewLogger returns a new logging.Logger instance bound to ctx. If ctx is
// nil, the logger ignores context levels and fields.
func (lc *LoggerConfig) NewLogger(ctx context.Context) logging.Logger {
	l := &loggerImpl{ctx: ctx, gl: lc.goLogger()}
	if ctx != nil {
		l.fields = logging.GetFields(ctx)
	}
	return l
}

func (lc *LoggerConfig) goLogger() *gol.Logger {
	lc.once.Do(func() {
		format := lc.Format
		if format == "" {
			format = StandardFormat
		}
		out := lc.Out
		if out == nil {
			out = os.Stderr
		}
		backend := gol.NewBackendFormatter(
			gol.NewLogBackend(out, "", 0),
			gol.MustStringFormatter(format))

		leveled := gol.AddModuleLevel(backend)
		leveled.SetLevel(lc.Level, "")

		lc.gl = gol.MustGetLogger("")
		lc.gl.SetBackend(leveled)
	})
	return lc.gl
}

// Use adds a default go-logging logger writing to stderr to the context.
func Use(ctx context.Context) context.Context {
	return StdConfig.Use(ctx)
}

type loggerImpl struct {
	ctx    context.Context
	gl     *gol.Logger
	fields logging.Fields
}

var _ logging.Logger = (*loggerImpl)(nil)

func (l *loggerImpl) Debugf(format string, args ...any) {
	l.LogCall(logging.Debug, 1, format, args)
}

func (l *loggerImpl) Infof(format string, args ...any) {
	l.LogCall(logging.Info, 1, format, args)
}

func (l *loggerImpl) Warningf(format string, args ...any) {
	l.LogCall(logging.Warning, 1, format, args)
}

func (l *loggerImpl) Errorf(format string, args ...any) {
	l.LogCall(logging.Error, 1, format, args)
}

// LogCall ignores calldepth: go-logging resolves source locations itself, so
// StandardFormat carries no file information.
func (l *loggerImpl) LogCall(lvl logging.Level, calldepth int, format string, args []any) {
	if l.ctx != nil && !logging.IsLogging(l.ctx, lvl) {
		return
	}

	msg := fmt.Sprintf(format, args...)
	if len(l.fields) > 0 {
		msg = fmt.Sprintf("%-*s %s", fieldsPadding, msg, l.fields)
	}

	switch lvl {
	case logging.Debug:
		l.gl.Debugf("%s", msg)
	case logging.Info:
		l.gl.Infof("%s", msg)
	case logging.Warning:
		l.gl.Warningf("%s", msg)
	default:
		l.gl.Errorf("%s", msg)
	}
}
