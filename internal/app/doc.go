// Package app wires the host together: settings, the module registry, the
// path resolver and existence checker, and the HCL evaluator with its
// function table. It is independent of any entrypoint like the CLI.
package app
