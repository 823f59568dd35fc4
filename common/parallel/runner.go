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
	"context"
	"iter"
	"runtime/debug"
	"slices"

	"github.com/luci/parfor/common/errors"
	"github.com/luci/parfor/common/logging"
)

// FailureFn is invoked for a failed work item.
//
// It runs on the worker goroutine, after the failure was captured and before
// the item is reported complete, so the call it belongs to does not return
// until every FailureFn invocation has returned.
type FailureFn func(ctx context.Context, err *ActionError)

// Runner fans work items out to a Pool.
//
// The zero value (and a nil *Runner) is ready to use. A Runner holds no
// per-call state and may be shared by concurrent calls.
type Runner struct {
	// [OPTIONAL] Pool executes the work items.
	//
	// Default: Unbounded.
	Pool Pool

	// [OPTIONAL] FailureFn is called once for every failed work item, in
	// addition to the failure being returned to the caller.
	//
	// Default: logs the failure at Warning level (Error level for panics,
	// with the stack).
	FailureFn FailureFn
}

// normalized returns a copy of r with defaults populated.
func (r *Runner) normalized() Runner {
	var ret Runner
	if r != nil {
		ret = *r
	}
	if ret.Pool == nil {
		ret.Pool = Unbounded
	}
	if ret.FailureFn == nil {
		ret.FailureFn = logFailure
	}
	return ret
}

func logFailure(ctx context.Context, err *ActionError) {
	ctx = logging.SetError(ctx, err.Err)
	if err.Panic != nil {
		logging.Errorf(ctx, "work item #%d panicked:\n%s", err.Index, err.Stack)
		return
	}
	logging.Warningf(ctx, "work item #%d failed", err.Index)
}

// For invokes fn once for every index in [0, n) and waits for all of them.
//
// See ForEachSeq for the execution and failure semantics. A negative n is an
// error; nothing is run.
func (r *Runner) For(ctx context.Context, n int, fn func(int) error) error {
	if n < 0 {
		return errors.Reason("parallel: negative iteration count %d", n).Err()
	}
	return run(ctx, r, indices(n), fn)
}

// For is Runner.For on the default Runner.
func For(ctx context.Context, n int, fn func(int) error) error {
	return (*Runner)(nil).For(ctx, n, fn)
}

// ForEach invokes fn once for every element of items and waits for all of
// them. r may be nil.
//
// See ForEachSeq for the execution and failure semantics.
func ForEach[T any](ctx context.Context, r *Runner, items []T, fn func(T) error) error {
	return run(ctx, r, slices.Values(items), fn)
}

// ForEachSeq invokes fn once for every element of items and waits for all of
// them. r may be nil.
//
// Elements are submitted to the Runner's Pool in iteration order, one work
// item each, without any throttling beyond what the Pool's Submit imposes.
// Completion order is unspecified. items must be finite.
//
// ForEachSeq returns only after every submitted action returned or panicked.
// A failure of one action does not affect the others. If any failed, the
// result is an errors.MultiError with one *ActionError per failed item, in
// submission order; otherwise it is nil. An empty sequence returns nil
// immediately without touching the Pool.
func ForEachSeq[T any](ctx context.Context, r *Runner, items iter.Seq[T], fn func(T) error) error {
	return run(ctx, r, items, fn)
}

func run[T any](ctx context.Context, r *Runner, items iter.Seq[T], fn func(T) error) error {
	cfg := r.normalized()

	var set completionSet
	for item := range items {
		w := &workItem[T]{
			index:   len(set),
			subject: item,
			body:    fn,
			signal:  newSignal(),
		}
		set = append(set, w.signal)
		cfg.Pool.Submit(func() { w.execute(ctx, cfg.FailureFn) })
	}
	if len(set) == 0 {
		return nil
	}

	logging.Debugf(ctx, "dispatched %d work items", len(set))
	return set.wait()
}

func indices(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < n; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// workItem pairs one subject with the action to run on it.
type workItem[T any] struct {
	index   int
	subject T
	body    func(T) error
	signal  *signal
}

func (w *workItem[T]) execute(ctx context.Context, onFailure FailureFn) {
	var failure *ActionError
	defer func() { w.signal.set(failure) }()
	defer func() {
		if failure != nil {
			onFailure(ctx, failure)
		}
	}()

	// invoke reports through failure rather than a return value: when the
	// action calls runtime.Goexit, only deferred calls still run.
	w.invoke(&failure)
}

func (w *workItem[T]) invoke(failure **ActionError) {
	returned := false
	defer func() {
		switch p := recover(); {
		case p != nil:
			*failure = &ActionError{
				Index: w.index,
				Item:  w.subject,
				Err:   panicError(p),
				Panic: p,
				Stack: debug.Stack(),
			}
		case !returned:
			*failure = &ActionError{Index: w.index, Item: w.subject, Err: ErrExited}
		}
	}()

	err := w.body(w.subject)
	returned = true
	if err != nil {
		*failure = &ActionError{Index: w.index, Item: w.subject, Err: err}
	}
}
