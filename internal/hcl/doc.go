// Package hcl provides the HCL implementation of the config.Loader
// interface. It parses host state files, evaluates their expressions into
// cty values and translates the result into the format-agnostic config.Model.
//
// Option tables are written as HCL object expressions. They are read with
// hcl.ExprMap so keys keep the order they appear in the file, and a literal
// `null` stays distinguishable from an empty string.
package hcl
