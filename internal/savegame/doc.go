// Package savegame reads and writes whole game-state values as msgpack
// blobs. There is no versioning and no partial load.
package savegame
