package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cryptodemo/internal/domain/types"
)

// decodeReport reads one report file. ok is false when the file disappeared
// after the directory listing.
func decodeReport(path string) (r types.Report, ok bool, err error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return r, false, nil
	}
	if err != nil {
		return r, false, err
	}
	if err := json.Unmarshal(b, &r); err != nil {
		return r, false, err
	}
	if r.Kind == "" {
		return r, false, fmt.Errorf("no report kind")
	}
	return r, true, nil
}

// encodeReport replaces path with r as indented JSON. The bytes are
// written to a hidden sibling and renamed, so readers never see a partial
// report.
func encodeReport(path string, r types.Report, perm os.FileMode) error {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	renamed := false
	defer func() {
		if !renamed {
			_ = os.Remove(tmp)
		}
	}()

	_, werr := f.Write(b)
	if werr == nil {
		werr = f.Chmod(perm)
	}
	if werr == nil {
		werr = f.Sync()
	}
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return werr
	}
	if err := os.Rename(tmp, path); err != nil {
		return err
	}
	renamed = true
	return nil
}
