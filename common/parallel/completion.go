// Copyright 2026 The LUCI Authors.
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

package parallel

import (
	"github.com/luci/parfor/common/errors"
)

// signal is the one-shot completion signal of a single work item.
//
// The worker writes err and then closes done, exactly once. The waiting
// goroutine reads err only after receiving from done.
type signal struct {
	done chan struct{}
	err  *ActionError
}

func newSignal() *signal {
	return &signal{done: make(chan struct{})}
}

func (s *signal) set(err *ActionError) {
	s.err = err
	close(s.done)
}

// completionSet holds the signals of every item submitted by one call.
type completionSet []*signal

// wait blocks until every signal in the set is set, then returns the
// failures in submission order, or nil.
func (cs completionSet) wait() error {
	var merr errors.MultiError
	for _, s := range cs {
		<-s.done
		if s.err != nil {
			merr = append(merr, s.err)
		}
	}
	return merr.AsError()
}
