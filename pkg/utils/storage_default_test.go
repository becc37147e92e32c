//go:build !android

package utils

import "testing"

func TestEnsureStorageDir_Desktop(t *testing.T) {
	if err := EnsureStorageDir(); err != nil {
		t.Errorf("EnsureStorageDir() = %v, want nil on desktop", err)
	}
}
