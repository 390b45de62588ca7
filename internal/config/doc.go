// Package config defines the format-agnostic game settings, their defaults
// and validation, along with the Loader interface implemented by concrete
// file formats such as HCL.
//
// Settings are the single source of truth for board sizes, keyword pools,
// the element chart and the match-3 server address.
package config
