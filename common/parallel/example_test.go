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

package parallel_test

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/luci/parfor/common/parallel"
)

func ExampleFor() {
	words := []string{"fan", "out", "and", "in"}

	// Each index owns its slot, so no locking is needed.
	upper := make([]string, len(words))
	err := parallel.For(context.Background(), len(words), func(i int) error {
		upper[i] = strings.ToUpper(words[i])
		return nil
	})

	fmt.Println(upper, err)
	// Output: [FAN OUT AND IN] <nil>
}

func ExampleForEach() {
	err := parallel.ForEach(context.Background(), nil, []string{"1", "two", "3"}, func(s string) error {
		_, err := strconv.Atoi(s)
		return err
	})

	fmt.Println(err)
	for _, f := range parallel.Failures(err) {
		fmt.Printf("item %d (%q) failed\n", f.Index, f.Item)
	}
	// Output:
	// parallel execution of item #1 failed: strconv.Atoi: parsing "two": invalid syntax
	// item 1 ("two") failed
}
