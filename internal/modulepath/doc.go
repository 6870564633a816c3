// Package modulepath implements module-relative path resolution.
//
// A reference is either a plain filesystem path or a pseudo URI pointing into
// the files/ directory of a module:
//
//	puppet:///modules/<module>/<path>
//	puppet:///<module>/<path>
//
// Both URI forms resolve identically. Module roots are looked up through a
// Locator scoped to a single environment, so the package never needs to know
// how modules are laid out on disk. Resolution is a pure function of the
// reference and the locator's state; nothing is cached between calls.
package modulepath
