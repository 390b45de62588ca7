// Package render draws boards and reference charts as box-drawn text tables
// for terminal output. Rendering is a read-only projection: nothing in this
// package mutates game state.
package render
