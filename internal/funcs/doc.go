// Package funcs exposes module path resolution to HCL as cty functions.
//
//	module_path("my_module")                          # "/etc/puppet/modules/my_module"
//	exists("puppet:///modules/my_module/config.yml")  # true or false
//	exists(["/etc/resolv.conf"])                      # array-style invocation
//
// Arguments are normalised at this boundary before the core is called: a
// list or tuple passed as the first argument replaces the whole argument
// list, exactly one effective argument is required and it must be a string.
package funcs
