// Package: eqgraph/clock
//
// clock.go — the Clock type, the process-wide stamp counter, and the
// staleness comparisons used by the evaluation cache.

package clock

// counter is the process-wide stamp source. It is plain (not atomic) because
// the evaluation model is single-threaded by contract; see package doc.
var counter uint64

// Reset reinitializes the process-wide stamp counter.
//
// Intended for the start of a fitting session (or a test) that wants
// deterministic stamps. Clocks created before Reset keep their old stamps,
// so mixing pre- and post-Reset clocks in one graph is a caller error.
func Reset() {
	counter = 0
}

// Clock is a monotonically increasing version stamp with an optional list of
// observed subjects. A Clock is owned one-to-one by its node; subjects are
// observed, never owned.
//
// The zero value is ready to use: stamp 0, no subjects.
type Clock struct {
	// stamp is the last value issued to (via Click) or absorbed by
	// (via Observe) this clock.
	stamp uint64

	// subjects are the clocks whose progress this clock must have observed
	// before it can be considered up to date. Order is insertion order;
	// duplicates are not stored.
	subjects []*Clock
}

// New returns a fresh Clock with no subjects and a zero stamp.
func New() *Clock {
	return &Clock{}
}

// Click advances this clock to a stamp guaranteed greater than any stamp
// previously issued by the process-wide counter. After Click the clock is
// GTE every other clock in existence — until someone else clicks.
func (c *Clock) Click() {
	counter++
	c.stamp = counter
}

// Stamp reports the raw stamp value. Exposed for diagnostics and tests;
// production code should use GTE/After instead of comparing stamps directly.
func (c *Clock) Stamp() uint64 {
	return c.stamp
}

// AddSubject registers s as a dependency of this clock. Until this clock
// next Clicks or Observes, it is stale relative to any progress s makes.
// Adding nil or an already-registered subject is a no-op.
func (c *Clock) AddSubject(s *Clock) {
	// 1. Reject degenerate inputs.
	if s == nil || s == c {
		return
	}
	// 2. Deduplicate: a subject is observed once, no matter how many
	//    children share it.
	for _, have := range c.subjects {
		if have == s {
			return
		}
	}
	// 3. Record in insertion order.
	c.subjects = append(c.subjects, s)
}

// RemoveSubject detaches s from this clock's subject list.
// Removing an unknown subject is a no-op.
func (c *Clock) RemoveSubject(s *Clock) {
	for i, have := range c.subjects {
		if have == s {
			c.subjects = append(c.subjects[:i], c.subjects[i+1:]...)
			return
		}
	}
}

// Subjects returns the observed clocks in insertion order. The returned
// slice is a copy; mutating it does not affect the clock.
func (c *Clock) Subjects() []*Clock {
	out := make([]*Clock, len(c.subjects))
	copy(out, c.subjects)
	return out
}

// latest reports the newest stamp reachable from c: its own stamp or the
// latest of any subject, transitively. seen guards against subject cycles.
func (c *Clock) latest(seen map[*Clock]bool) uint64 {
	if seen[c] {
		return 0
	}
	seen[c] = true

	max := c.stamp
	var ls uint64
	for _, s := range c.subjects {
		if ls = s.latest(seen); ls > max {
			max = ls
		}
	}
	return max
}

// GTE reports whether this clock has observed everything o has produced so
// far — that is, whether c's stamp is at least the newest stamp reachable
// from o (including o's subjects, transitively). GTE against nil is true.
func (c *Clock) GTE(o *Clock) bool {
	if o == nil {
		return true
	}
	return c.stamp >= o.latest(make(map[*Clock]bool))
}

// After reports whether this clock is strictly newer than everything
// reachable from o. After against nil is true.
func (c *Clock) After(o *Clock) bool {
	if o == nil {
		return true
	}
	return c.stamp > o.latest(make(map[*Clock]bool))
}

// Observe absorbs the newest stamp reachable from this clock's subjects
// without issuing a new one. After Observe, the clock is GTE all of its
// subjects but no newer than the newest of them. Useful for read-only
// observers (an optimizer polling an aggregate clock) that must not
// disturb the global ordering.
func (c *Clock) Observe() {
	if l := c.latest(make(map[*Clock]bool)); l > c.stamp {
		c.stamp = l
	}
}
