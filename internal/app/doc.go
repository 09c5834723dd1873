// Package app wires the host loaders, the snapshot generator and the output
// sinks into the generate, check and watch workflows.
package app
