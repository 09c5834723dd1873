// Package incremental provides the change-tracked data sources the snapshot
// pipeline is built on.
//
// A Provider hands out its current value together with a Version. Consumers
// remember the version they last computed from and only recompute when it
// moves. Versions are opaque; the only valid operation on them is equality.
// Structural equality is decided with go-cmp.
//
// Two kinds of provider exist:
//   - Source is the input side. The host pushes values into it with Set, and
//     the version only moves when the new value is structurally different
//     from the current one. Equal values map to equal versions for as long
//     as the source still remembers them, so an edit that is reverted
//     restores the earlier version.
//   - Select derives one provider from another. It recomputes lazily when
//     the upstream version changes, and its own version only advances when
//     the derived value changes, so consumers of a derived boolean are not
//     disturbed by unrelated upstream edits.
package incremental
