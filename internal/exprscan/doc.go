// Package exprscan reports which functions and variables HCL expressions use,
// without evaluating them.
package exprscan
