// Package registry discovers environments and modules on disk.
//
// The layout follows Puppet's directory environments:
//
//	<environment_path>/
//	  production/
//	    environment.conf      # optional, INI: modulepath = site:modules:$basemodulepath
//	    modules/
//	      my_module/
//	        metadata.json     # optional
//	        files/
//
// An environment's module path is an ordered list of directories. Relative
// entries are resolved against the environment directory and the token
// $basemodulepath expands to the globally configured base module path. When
// a module name appears in several directories the first one wins.
//
// The Registry implements modulepath.Locator. It reads the filesystem through
// an afero.Fs on every call and keeps no cache, so changes on disk are visible
// to the next lookup.
package registry
