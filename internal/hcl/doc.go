// Package hcl provides the HCL implementation of config.Loader. Files are
// parsed with hclparse, decoded with gohcl into the schema structs of this
// package and merged, in order, over config.Default().
//
// Expressions are evaluated with a context exposing the built-in settings as
// `defaults` plus a few functions from the cty standard library, so a file
// can extend rather than restate a keyword list:
//
//	match_three {
//	  keywords = concat(defaults.match_three.keywords, ["LAMBDA"])
//	}
package hcl
