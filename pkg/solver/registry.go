package solver

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tduindam/aoc-2022/pkg/calories"
	"github.com/tduindam/aoc-2022/pkg/rps"
	"github.com/tduindam/aoc-2022/pkg/rucksack"
)

// ErrUnknownDay is returned when no solver is registered for a day.
var ErrUnknownDay = errors.New("no solver registered for day")

// Registry maps puzzle days to solvers.
type Registry struct {
	solvers map[int]Solver
}

// NewRegistry creates a registry holding the given solvers.
// It panics on duplicate days, which is a programming error.
func NewRegistry(solvers ...Solver) *Registry {
	r := &Registry{solvers: make(map[int]Solver, len(solvers))}
	for _, s := range solvers {
		if err := r.Register(s); err != nil {
			panic(err)
		}
	}
	return r
}

// DefaultRegistry returns a registry with every built-in puzzle.
func DefaultRegistry() *Registry {
	return NewRegistry(
		calories.New(),
		rps.New(),
		rucksack.New(),
	)
}

// Register adds a solver. It fails if the day is already taken.
func (r *Registry) Register(s Solver) error {
	if existing, ok := r.solvers[s.Day()]; ok {
		return fmt.Errorf("day %d already registered to %q", s.Day(), existing.Name())
	}
	r.solvers[s.Day()] = s
	return nil
}

// Lookup returns the solver for day.
func (r *Registry) Lookup(day int) (Solver, error) {
	s, ok := r.solvers[day]
	if !ok {
		return nil, fmt.Errorf("%w %d (available: %v)", ErrUnknownDay, day, r.Days())
	}
	return s, nil
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.solvers))
	for d := range r.solvers {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// Solvers returns the registered solvers ordered by day.
func (r *Registry) Solvers() []Solver {
	days := r.Days()
	out := make([]Solver, len(days))
	for i, d := range days {
		out[i] = r.solvers[d]
	}
	return out
}
