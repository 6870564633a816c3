// Package config loads the host settings: the active environment, where
// environments and base modules live, and how to log. Settings come from
// defaults, an optional config file, MODFUNCS_* environment variables and
// command-line flags, in increasing order of precedence.
package config
