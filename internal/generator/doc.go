// Package generator wires the host's configuration sources into the five
// snapshot pipelines.
//
// Each pipeline is a Stage pairing the shared feature gate with one source
// and one formatter. A Stage only invokes its formatter when the gate is on,
// and only again when the gate or the source version changes. The Generator
// evaluates every stage of a build pass and registers the present results
// with an output sink under their hint names.
package generator
