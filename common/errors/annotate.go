// Copyright 2016 The LUCI Authors.
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

package errors

import (
	"fmt"
)

// Annotator is a builder for annotating errors. Obtain one by calling Annotate
// or Reason on an existing error or reason string.
type Annotator struct {
	inner  error
	reason string
}

// Annotate returns a new Annotator which will wrap err with the formatted
// reason.
//
// If this is passed nil, it will return a no-op Annotator whose .Err()
// function will also return nil.
//
// The original error may be recovered by using Wrapped.InnerError, Unwrap
// or errors.Is/As on the returned error.
//
// Rendering the derived error with Error() renders the reason followed by the
// text of the underlying error, e.g. "reading config: file not found".
func Annotate(err error, reason string, args ...any) *Annotator {
	if err == nil {
		return nil
	}
	return &Annotator{err, fmt.Sprintf(reason, args...)}
}

// Reason builds a new Annotator starting with reason, with no underlying
// error. This allows you to use all the formatting directives you would
// normally use with fmt.Sprintf:
//
//	errors.Reason("something bad: %d", 100).Err()
//
// Prefer this form to errors.New(fmt.Sprintf("...")).
func Reason(reason string, args ...any) *Annotator {
	return &Annotator{nil, fmt.Sprintf(reason, args...)}
}

// Err returns the finalized annotated error.
func (a *Annotator) Err() error {
	if a == nil {
		return nil
	}
	return &annotatedError{inner: a.inner, reason: a.reason}
}

type annotatedError struct {
	inner  error
	reason string
}

var _ Wrapped = (*annotatedError)(nil)

func (e *annotatedError) Error() string {
	switch {
	case e.inner == nil:
		return e.reason
	case e.reason == "":
		return e.inner.Error()
	}
	return fmt.Sprintf("%s: %s", e.reason, e.inner)
}

func (e *annotatedError) InnerError() error { return e.inner }
func (e *annotatedError) Unwrap() error     { return e.inner }
