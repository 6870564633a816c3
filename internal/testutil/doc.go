// Package testutil holds fixtures shared by the test suites: an in-memory
// Puppet-style code tree, a thread-safe log buffer and an App harness.
package testutil
