// Package hcl is the evaluation host for module path functions. It parses
// HCL expressions and documents, evaluates them against an hcl.EvalContext
// carrying the function table and host variables, and converts the results
// into JSON, YAML or native Go values.
//
// A document is a flat HCL (or HCL JSON) file of attributes:
//
//	ssh_config   = module_path("ssh")
//	has_override = exists("puppet:///modules/ssh/sshd_config.${environment}")
//
// Blocks are not allowed. Evaluation stops at the first failing attribute.
package hcl
