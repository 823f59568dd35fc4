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

	"golang.org/x/sync/semaphore"
)

// Pool executes submitted tasks asynchronously.
//
// Submit must arrange for task to run exactly once on a goroutine other than
// the caller's. It may block until the pool has capacity for the task.
type Pool interface {
	Submit(task func())
}

// PoolFunc adapts an ordinary function to the Pool interface.
type PoolFunc func(task func())

// Submit implements Pool.
func (f PoolFunc) Submit(task func()) { f(task) }

// Unbounded is a Pool that starts a new goroutine for every task.
//
// It never blocks in Submit, so nested ForEach/For calls made from inside
// running actions cannot starve it.
var Unbounded Pool = PoolFunc(func(task func()) { go task() })

// BoundedPool is a Pool that runs at most a fixed number of tasks at once.
//
// Submit blocks the submitting goroutine while all slots are taken, so
// pending work queues up in its callers. Consequently, actions that run on a
// BoundedPool must not themselves fan out onto the same pool and wait: once
// every slot is held by a waiting parent, the children can never start.
type BoundedPool struct {
	sem *semaphore.Weighted
}

var _ Pool = (*BoundedPool)(nil)

// NewBoundedPool returns a pool running at most workers tasks concurrently.
//
// It panics if workers is not positive.
func NewBoundedPool(workers int) *BoundedPool {
	if workers <= 0 {
		panic("parallel: NewBoundedPool requires at least one worker")
	}
	return &BoundedPool{sem: semaphore.NewWeighted(int64(workers))}
}

// Submit implements Pool.
func (p *BoundedPool) Submit(task func()) {
	// Acquire only fails on context cancellation.
	_ = p.sem.Acquire(context.Background(), 1)
	go func() {
		defer p.sem.Release(1)
		task()
	}()
}
