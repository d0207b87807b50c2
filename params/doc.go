// Package params extracts the scalar parameters of an RCE model configuration
// (params_ver2.in) by line position, and documents them as an aligned text table
// written next to an archival copy of the configuration.
package params
