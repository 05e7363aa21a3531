// Package errors provides the structured error types shared by the solvers,
// the input reader and the command layer.
//
// Every error that crosses a package boundary is a *PuzzleError carrying a
// type, a stable code and optional location. Callers branch on codes with
// errors.Is against a sentinel built from the same type and code, or with
// HasCode when only the code matters.
package errors

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// DayFailure records a failed solve of one day.
type DayFailure struct {
	Day       int
	Part      int
	Err       error
	Timestamp time.Time
}

// Error implements the error interface
func (f *DayFailure) Error() string {
	if f.Part > 0 {
		return fmt.Sprintf("day %d part %d: %v", f.Day, f.Part, f.Err)
	}
	return fmt.Sprintf("day %d: %v", f.Day, f.Err)
}

// Unwrap returns the underlying error
func (f *DayFailure) Unwrap() error {
	return f.Err
}

// ErrorCollector collects failures across several days so that one bad input
// does not hide the answers of the others.
type ErrorCollector struct {
	failures []DayFailure
	mutex    sync.RWMutex
}

// NewErrorCollector creates a new error collector
func NewErrorCollector() *ErrorCollector {
	return &ErrorCollector{
		failures: make([]DayFailure, 0),
	}
}

// Add records a failure for day. A nil err is ignored.
func (ec *ErrorCollector) Add(day, part int, err error) {
	if err == nil {
		return
	}
	ec.mutex.Lock()
	defer ec.mutex.Unlock()
	ec.failures = append(ec.failures, DayFailure{
		Day:       day,
		Part:      part,
		Err:       err,
		Timestamp: time.Now(),
	})
}

// GetFailures returns all collected failures ordered by day
func (ec *ErrorCollector) GetFailures() []DayFailure {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()
	result := make([]DayFailure, len(ec.failures))
	copy(result, ec.failures)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Day < result[j].Day
	})
	return result
}

// HasErrors returns true if there are any failures
func (ec *ErrorCollector) HasErrors() bool {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()
	return len(ec.failures) > 0
}

// Clear drops all failures
func (ec *ErrorCollector) Clear() {
	ec.mutex.Lock()
	defer ec.mutex.Unlock()
	ec.failures = ec.failures[:0]
}

// Err folds the collected failures into a single solve error, or nil.
func (ec *ErrorCollector) Err() error {
	failures := ec.GetFailures()
	switch len(failures) {
	case 0:
		return nil
	case 1:
		return WrapSolve(failures[0].Err, failures[0].Day, "solve failed")
	}

	days := make([]string, 0, len(failures))
	for _, f := range failures {
		days = append(days, fmt.Sprintf("%d", f.Day))
	}
	pe := NewSolveError(
		ErrCodeSolveFailed,
		fmt.Sprintf("%d days failed (%s)", len(failures), strings.Join(days, ", ")),
		&failures[0],
	)
	return pe.WithContext("failed_days", days)
}
