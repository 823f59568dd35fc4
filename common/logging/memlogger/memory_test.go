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

package memlogger

import (
	"bytes"
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/luci/parfor/common/logging"
)

func TestLogger(t *testing.T) {
	t.Parallel()

	Convey(`A MemLogger installed in a Context`, t, func() {
		ctx := logging.SetLevel(Use(context.Background()), logging.Debug)
		ml := logging.Get(ctx).(*MemLogger)

		Convey(`records messages at every level`, func() {
			logging.Debugf(ctx, "debug %d", 1)
			logging.Infof(ctx, "info %d", 2)
			logging.Warningf(ctx, "warning %d", 3)
			logging.Errorf(ctx, "error %d", 4)

			msgs := ml.Messages()
			So(msgs, ShouldHaveLength, 4)
			So(msgs[0].Level, ShouldEqual, logging.Debug)
			So(msgs[0].Msg, ShouldEqual, "debug 1")
			So(msgs[3].Level, ShouldEqual, logging.Error)
			So(msgs[3].Msg, ShouldEqual, "error 4")
		})

		Convey(`shares entries with loggers from derived contexts`, func() {
			derived := logging.SetError(ctx, errors.New("boom"))
			logging.Infof(derived, "with an error")

			So(ml.HasFunc(func(e *LogEntry) bool {
				return e.Msg == "with an error" && e.Data[logging.ErrorKey].(error).Error() == "boom"
			}), ShouldBeTrue)
		})

		Convey(`honors the context level`, func() {
			quiet := logging.SetLevel(ctx, logging.Warning)
			logging.Infof(quiet, "dropped")
			logging.Warningf(quiet, "kept")

			msgs := ml.Messages()
			So(msgs, ShouldHaveLength, 1)
			So(msgs[0].Msg, ShouldEqual, "kept")
		})

		Convey(`can be reset and dumped`, func() {
			logging.Infof(ctx, "first")
			ml.Reset()
			logging.Errorf(ctx, "second")

			buf := bytes.Buffer{}
			So(ml.Dump(&buf), ShouldBeNil)
			So(buf.String(), ShouldEqual, "error second\n")
		})
	})

	Convey(`A standalone MemLogger records everything`, t, func() {
		ml := New()
		ml.Debugf("hi")
		So(ml.Messages(), ShouldHaveLength, 1)
	})
}
