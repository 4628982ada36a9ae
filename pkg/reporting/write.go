package reporting

import (
	"os"
	"path/filepath"

	"github.com/agentstation/recon/pkg/constants"
	"github.com/agentstation/recon/pkg/errors"
)

// writeFileAtomic writes data to dir/name via a temporary file and rename, so
// readers never observe a partially written report. Returns the final path.
func writeFileAtomic(dir, name string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return "", errors.WrapIO("create", dir, err)
	}

	finalPath := filepath.Join(dir, name)
	tmpPath := finalPath + ".tmp"

	if err := os.WriteFile(tmpPath, data, constants.FilePermissions); err != nil {
		return "", errors.WrapIO("write", tmpPath, err)
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		// Best effort cleanup; the rename failure is the error that matters.
		_ = os.Remove(tmpPath)
		return "", errors.WrapIO("rename", finalPath, err)
	}

	return finalPath, nil
}
