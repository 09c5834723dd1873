// Package yamlhost provides the YAML implementation of the config.Loader
// interface.
//
// Documents follow the same shape as the HCL host files. Option tables are
// decoded from yaml.v3 nodes rather than Go maps so mapping order survives,
// and an empty or `null` value is kept as the null state.
package yamlhost
