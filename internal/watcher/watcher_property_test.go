//go:build property
// +build property

package watcher

import (
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestDebouncerProperties checks batching invariants of the debouncer
func TestDebouncerProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: a flushed batch holds each path once, sorted, last event wins
	properties.Property("flush deduplicates by path", prop.ForAll(
		func(paths []int, kinds []int) bool {
			d := newDebouncer(time.Millisecond)
			last := make(map[string]EventType)
			for i, p := range paths {
				path := fmt.Sprintf("day%d.txt", p)
				kind := EventType(kinds[i%len(kinds)])
				d.pending = append(d.pending, ChangeEvent{Type: kind, Path: path})
				last[path] = kind
			}
			d.flush()

			if len(paths) == 0 {
				return len(d.output) == 0
			}
			events := <-d.output
			if len(events) != len(last) {
				return false
			}
			if !sort.SliceIsSorted(events, func(i, j int) bool { return events[i].Path < events[j].Path }) {
				return false
			}
			for _, e := range events {
				if last[e.Path] != e.Type {
					return false
				}
			}
			return len(d.pending) == 0
		},
		gen.SliceOf(gen.IntRange(1, 25)),
		gen.SliceOfN(4, gen.IntRange(0, 3)),
	))

	properties.TestingRun(t)
}
