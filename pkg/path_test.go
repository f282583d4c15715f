package pkg

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestPrefix(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/usr/bin/jsonpp", "jsonpp"},
		{"/tmp/__debug_bin3141592", Name},
		{"/opt/.jsonpp.bin", "jsonpp"},
		{"/opt/jsonpp.exe", "jsonpp"},
		{"/tmp/...", Name},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := prefix(filepath.FromSlash(tt.path)); got != tt.want {
				t.Errorf("prefix(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestUserDir_Lookup(t *testing.T) {
	dir := t.TempDir()

	got := userDir(func() (string, error) { return dir, nil }, ".config")
	if want := filepath.Join(dir, Prefix()); got != want {
		t.Errorf("userDir = %q, want %q", got, want)
	}
}

func TestUserDir_Fallback(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	got := userDir(func() (string, error) { return "", errors.New("unset") }, ".cache")
	if filepath.Base(filepath.Dir(got)) != ".cache" {
		t.Errorf("userDir fallback = %q, want a .cache directory", got)
	}
}
