// Package app wires the game together: it owns the logger, loads settings
// through a config.Loader and runs the requested features (the introduction
// and element chart, board previews, the save file and the match-3 server).
package app
