// Package trace accumulates a histogram of retired instructions over a run.
package trace

import "bw8/isa"

// Trace counts how many times each distinct Instruction value retired
// during a run. isa.Instruction is a flat comparable struct, so it works
// directly as a map key.
type Trace map[isa.Instruction]int

// New returns an empty Trace.
func New() Trace {
	return make(Trace)
}

// Retire records one successful completion of inst.
func (t Trace) Retire(inst isa.Instruction) {
	t[inst]++
}

// Len reports the number of instructions retired, counting repeats.
func (t Trace) Len() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

// Count reports how many times inst retired.
func (t Trace) Count(inst isa.Instruction) int {
	return t[inst]
}

// ReachedBreakpoint is the second half of a run's result: whether the run
// ended because the bus signalled a breakpoint, as opposed to running out
// of cycle budget or hitting a halt.
type ReachedBreakpoint bool

const (
	Did    ReachedBreakpoint = true
	DidNot ReachedBreakpoint = false
)
