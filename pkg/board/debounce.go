package board

import "time"

// SearchDebounce is the pause between the last keystroke and propagation of
// the search text into the query state.
const SearchDebounce = 300 * time.Millisecond

// Debouncer is a timer-based coalescing policy for rapid input changes: a
// pending value and a generation counter. Each Touch supersedes earlier
// generations; only a Fire carrying the latest generation commits.
//
// The caller owns the actual timer (time.AfterFunc, tea.Tick, ...): schedule
// one per Touch for SearchDebounce later, then call Fire with the returned
// generation when it goes off.
type Debouncer struct {
	pending string
	gen     int
	active  bool
}

// Touch records a new pending value and returns the generation to pass to
// Fire once the delay elapses.
func (d *Debouncer) Touch(value string) int {
	d.pending = value
	d.gen++
	d.active = true
	return d.gen
}

// Fire attempts to commit the generation's value. It returns false when a
// later Touch superseded the generation or the debouncer was cancelled.
func (d *Debouncer) Fire(gen int) (string, bool) {
	if !d.active || gen != d.gen {
		return "", false
	}
	d.active = false
	return d.pending, true
}

// Cancel drops any pending value, for component teardown.
func (d *Debouncer) Cancel() {
	d.active = false
}
