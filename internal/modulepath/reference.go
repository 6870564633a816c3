package modulepath

import "strings"

const (
	// SchemePrefix marks a module-relative reference.
	SchemePrefix = "puppet:///"

	// modulesSegment is the optional mount point after the scheme.
	modulesSegment = "modules/"

	// FilesDir is the module subdirectory that references point into.
	FilesDir = "files"
)

// IsModuleReference reports whether ref uses the module-relative scheme.
func IsModuleReference(ref string) bool {
	return strings.HasPrefix(ref, SchemePrefix)
}

// SplitReference breaks a module-relative reference into the module name and
// the path relative to the module's files directory. The optional "modules/"
// segment is dropped. ok is false when ref is not a module reference.
//
// The returned strings are fresh slices of ref; ref itself is never modified.
func SplitReference(ref string) (moduleName, relPath string, ok bool) {
	rest, ok := strings.CutPrefix(ref, SchemePrefix)
	if !ok {
		return "", "", false
	}
	rest, _ = strings.CutPrefix(rest, modulesSegment)
	moduleName, relPath, _ = strings.Cut(rest, "/")
	return moduleName, relPath, true
}
