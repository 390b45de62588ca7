// Package element holds the elemental damage chart of Adventure Mode and the
// resistance/accuracy rule. Charts are plain data owned by the caller; the
// package keeps no mutable state.
package element
