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

// Package parallel runs independent units of work concurrently and joins on
// their completion.
//
// ForEach, ForEachSeq and For submit one work item per element (or loop
// index) to a Pool and block until every item has finished. Items never
// observe each other through this package: an action that needs to produce
// results must write them to storage it owns, such as a pre-sized slice
// indexed by the item's position.
//
// A failing action (one that returns an error or panics) never prevents its
// siblings from running, and never leaves the caller waiting. Once all items
// are done, the caller receives an errors.MultiError containing one
// *ActionError per failed item, in submission order.
//
// There is no cancellation, throttling or result aggregation. Concurrency is
// limited only by the Pool; see BoundedPool for the trade-offs of a
// fixed-size pool.
package parallel
