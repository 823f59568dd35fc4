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
	"fmt"

	"github.com/luci/parfor/common/errors"
)

// ErrExited is the cause of an ActionError whose action neither returned nor
// panicked, i.e. it called runtime.Goexit (as t.FailNow does).
var ErrExited = errors.New("parallel: action exited without returning (runtime.Goexit)")

// ActionError is the failure of a single work item.
//
// Err is the error returned by the action, or ErrExited if it called
// runtime.Goexit. If the action panicked instead, Panic holds the recovered
// value, Stack the panicking goroutine's stack, and Err an error describing
// the panic (wrapping the value if it was an error).
type ActionError struct {
	// Index is the position of the item in submission order.
	Index int
	// Item is the element (ForEach) or loop index (For) the action ran on.
	Item any

	Err   error
	Panic any
	Stack []byte
}

var _ errors.Wrapped = (*ActionError)(nil)

func (e *ActionError) Error() string {
	return fmt.Sprintf("parallel execution of item #%d failed: %s", e.Index, e.Err)
}

// InnerError implements errors.Wrapped.
func (e *ActionError) InnerError() error { return e.Err }

// Unwrap allows errors.Is and errors.As to see the action's error.
func (e *ActionError) Unwrap() error { return e.Err }

// Failures returns every ActionError found in err, in traversal order.
//
// This includes failures nested in the causes of other failures, which is
// what an action that itself fans out and returns the result produces.
func Failures(err error) []*ActionError {
	var ret []*ActionError
	errors.Walk(err, func(err error) bool {
		if ae, ok := err.(*ActionError); ok {
			ret = append(ret, ae)
		}
		return true
	})
	return ret
}

func panicError(p any) error {
	if err, ok := p.(error); ok {
		return errors.Annotate(err, "panic").Err()
	}
	return errors.Reason("panic: %v", p).Err()
}
