package savegame

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
)

// ErrCorrupt is returned by Load when the file does not decode.
var ErrCorrupt = errors.New("corrupt save file")

// Save encodes v and replaces path with the result. The file is written
// next to path first and renamed into place, so a failed save leaves the
// previous file intact.
func Save(path string, v any) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriter(tmp)
	if err = msgpack.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encoding save %s: %w", path, err)
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("writing save %s: %w", path, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("syncing save %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing save %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing save %s: %w", path, err)
	}
	return nil
}

// Load decodes the file at path into v, which must be a pointer. A missing
// file is reported with an error matching fs.ErrNotExist.
func Load(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening save: %w", err)
	}
	defer f.Close()

	if err := msgpack.NewDecoder(bufio.NewReader(f)).Decode(v); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCorrupt, path, err)
	}
	return nil
}
