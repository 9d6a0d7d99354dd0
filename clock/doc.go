// Package clock implements the logical clock that drives cache invalidation
// throughout eqgraph. Every node in an equation graph owns one Clock; the
// clock answers the single question that matters during re-evaluation:
// "has X changed since Y last looked?" — without re-walking the graph.
//
// Model:
//   - One process-wide monotonic counter issues stamps. Click() advances a
//     clock to a stamp strictly greater than any previously issued stamp.
//   - AddSubject(s) registers s as a dependency: this clock is considered
//     stale relative to s (and, transitively, s's own subjects) until it next
//     Clicks or Observes.
//   - GTE(o) reports whether this clock has observed everything o has
//     produced so far. A node recomputes its cached value iff its clock is
//     not GTE the clocks of all of its children; after recomputation it
//     Clicks and thereby becomes GTE them. There is no separate dirty bit.
//
// The counter is deliberately plain (not atomic): evaluation is
// single-threaded by contract. Call Reset() at the start of a fitting
// session rather than relying on process-lifetime state.
//
// Complexity:
//   - Click/Observe:   O(subjects) transitively (memoized per call).
//   - GTE/After:       O(subjects) transitively (memoized per call).
//
// Errors: none. Clock operations cannot fail; misuse (subject cycles) is
// tolerated — traversal marks visited clocks and terminates.
package clock
