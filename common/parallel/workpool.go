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

package parallel

import (
	"context"
	"iter"
)

// WorkPool executes the tasks a generator pushes into the supplied channel,
// using at most workers goroutines at once. If workers is <= 0, WorkPool is
// unbounded and behaves like FanOutIn.
//
// gen runs in its own goroutine; the channel is closed when it returns.
// Every call gets its own pool, so tasks may call WorkPool again without
// starving their parent.
//
// WorkPool blocks until the generator completes and all tasks have finished.
// Failed tasks are reported like ForEachSeq reports them: an
// errors.MultiError of *ActionError, whose Index is the order in which the
// task was generated.
func WorkPool(ctx context.Context, workers int, gen func(chan<- func() error)) error {
	r := &Runner{}
	if workers > 0 {
		r.Pool = NewBoundedPool(workers)
	}
	return ForEachSeq(ctx, r, generate(gen), func(task func() error) error {
		return task()
	})
}

// FanOutIn is useful to quickly parallelize a group of tasks.
//
// You pass it a function which is expected to push simple `func() error`
// closures into the provided chan. Each function will be executed in parallel
// and their error results will be collated.
//
// This function is equivalent to WorkPool(ctx, 0, gen).
func FanOutIn(ctx context.Context, gen func(chan<- func() error)) error {
	return WorkPool(ctx, 0, gen)
}

func generate(gen func(chan<- func() error)) iter.Seq[func() error] {
	return func(yield func(func() error) bool) {
		ch := make(chan func() error)
		go func() {
			defer close(ch)
			gen(ch)
		}()
		for task := range ch {
			if !yield(task) {
				// Unblock the generator.
				for range ch {
				}
				return
			}
		}
	}
}
