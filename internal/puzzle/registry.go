// Package puzzle defines the contract every daily solver implements, the
// registry the command layer dispatches through, and the runner that times
// each part.
package puzzle

import (
	"sort"
	"sync"
)

// Solver computes the two answers for one day. Implementations are pure:
// they receive the input lines and keep no state between calls.
type Solver interface {
	Day() int
	Title() string
	PartA(lines []string) (int64, error)
	PartB(lines []string) (int64, error)
}

// Registry maps days to solvers
type Registry struct {
	solvers map[int]Solver
	mutex   sync.RWMutex
}

// NewRegistry creates a registry holding solvers
func NewRegistry(solvers ...Solver) *Registry {
	r := &Registry{
		solvers: make(map[int]Solver, len(solvers)),
	}
	for _, s := range solvers {
		r.Register(s)
	}
	return r
}

// Register adds a solver, replacing any solver already registered for the
// same day. It reports whether a solver was replaced.
func (r *Registry) Register(s Solver) bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	_, exists := r.solvers[s.Day()]
	r.solvers[s.Day()] = s
	return exists
}

// Get retrieves the solver for day
func (r *Registry) Get(day int) (Solver, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	s, ok := r.solvers[day]
	return s, ok
}

// All returns every solver ordered by day
func (r *Registry) All() []Solver {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	result := make([]Solver, 0, len(r.solvers))
	for _, s := range r.solvers {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Day() < result[j].Day()
	})
	return result
}

// Days returns the registered days in ascending order
func (r *Registry) Days() []int {
	all := r.All()
	days := make([]int, len(all))
	for i, s := range all {
		days[i] = s.Day()
	}
	return days
}

// Count returns the number of registered solvers
func (r *Registry) Count() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.solvers)
}
