// Package sink receives the snapshots produced by a build pass.
//
// Sink is the narrow contract the generator registers artifacts through. Pass
// enforces that a hint name is registered at most once per build pass. The
// concrete sinks cover the reference host: Memory keeps a pass in memory, Dir
// mirrors a pass into a directory of text files, and Check compares a pass
// against such a directory for regression checks.
package sink
