// Package backup locates the user's cloud sync folder and copies the
// database file in and out of it.
package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Well-known sync folder names, probed in order under the home dir.
var syncFolderNames = []string{
	"OneDrive",
	"Dropbox",
	"Google Drive",
}

const backupSubdir = "ClassRecordBackups"

// DetectSyncDir returns the backup target directory. An explicit
// override wins; otherwise the first well-known sync folder found in
// the home directory is used, falling back to the home directory
// itself. The ClassRecordBackups subdirectory is created on demand.
func DetectSyncDir(override string) (string, error) {
	base := override
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = home
		for _, name := range syncFolderNames {
			candidate := filepath.Join(home, name)
			if info, err := os.Stat(candidate); err == nil && info.IsDir() {
				base = candidate
				break
			}
		}
	}

	dir := filepath.Join(base, backupSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}
	return dir, nil
}

// FileName builds a timestamped backup name, e.g.
// classrecord-20260831-154500.db.
func FileName(at time.Time) string {
	return fmt.Sprintf("classrecord-%s.db", at.Format("20060102-150405"))
}

// CopyFile copies src to dst and returns the number of bytes written.
// dst is replaced atomically via a temp file so a crash mid-copy never
// leaves a truncated backup behind.
func CopyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".backup-*")
	if err != nil {
		return 0, err
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, in)
	if err != nil {
		tmp.Close()
		return 0, err
	}
	if err := tmp.Close(); err != nil {
		return 0, err
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return 0, err
	}
	return n, nil
}
