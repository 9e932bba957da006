package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDetectSyncDirPrefersKnownFolders(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if err := os.Mkdir(filepath.Join(home, "Dropbox"), 0o755); err != nil {
		t.Fatal(err)
	}

	dir, err := DetectSyncDir("")
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join(home, "Dropbox", "ClassRecordBackups") {
		t.Errorf("dir = %s, want Dropbox backup dir", dir)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Error("backup dir was not created")
	}
}

func TestDetectSyncDirFallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir, err := DetectSyncDir("")
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join(home, "ClassRecordBackups") {
		t.Errorf("dir = %s, want home backup dir", dir)
	}
}

func TestDetectSyncDirHonorsOverride(t *testing.T) {
	override := t.TempDir()

	dir, err := DetectSyncDir(override)
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join(override, "ClassRecordBackups") {
		t.Errorf("dir = %s, want override backup dir", dir)
	}
}

func TestFileNameIsTimestamped(t *testing.T) {
	at := time.Date(2026, 8, 31, 15, 45, 0, 0, time.UTC)
	name := FileName(at)
	if name != "classrecord-20260831-154500.db" {
		t.Errorf("name = %s", name)
	}
}

func TestCopyFileReplacesDestination(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.db")
	dst := filepath.Join(dir, "dst.db")

	if err := os.WriteFile(src, []byte("fresh content"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dst, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	n, err := CopyFile(src, dst)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(len("fresh content")) {
		t.Errorf("copied %d bytes, want %d", n, len("fresh content"))
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "fresh content" {
		t.Errorf("dst = %q", got)
	}

	// No temp droppings left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".backup-") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestCopyFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	if _, err := CopyFile(filepath.Join(dir, "nope.db"), filepath.Join(dir, "out.db")); err == nil {
		t.Fatal("expected an error for a missing source")
	}
}
