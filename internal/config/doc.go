// Package config defines the read-only data contract between a build host
// and the snapshot pipeline: the shapes of the configuration sources the host
// exposes (option tables, additional texts, parse options, syntax trees and
// compilation metadata), along with the Loader interface used by concrete
// host adapters to produce them.
//
// The `config.Model` is the single source of truth for one build pass. The
// core packages only ever read from it. Concrete loaders, such as for HCL and
// YAML, are provided in separate packages.
package config
