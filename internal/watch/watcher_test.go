package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDescriptorWatcher_FiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pom.xml")
	require.NoError(t, os.WriteFile(path, []byte("<project/>"), 0o600))

	var calls atomic.Int32
	w, err := NewDescriptorWatcher(path, 20*time.Millisecond, func(context.Context) {
		calls.Add(1)
	})
	require.NoError(t, err)
	require.Equal(t, path, w.Path())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register the directory.
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("<project><version>2</version></project>"), 0o600)
		return calls.Load() > 0
	}, 5*time.Second, 100*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestDescriptorWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pom.xml")
	require.NoError(t, os.WriteFile(path, []byte("<project/>"), 0o600))

	var calls atomic.Int32
	w, err := NewDescriptorWatcher(path, 10*time.Millisecond, func(context.Context) {
		calls.Add(1)
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	go func() {
		time.Sleep(100 * time.Millisecond)
		_ = os.WriteFile(filepath.Join(dir, "README.md"), []byte("x"), 0o600)
	}()

	require.NoError(t, w.Run(ctx))
	require.Zero(t, calls.Load())
}

func TestDescriptorWatcher_MissingDirectory(t *testing.T) {
	w, err := NewDescriptorWatcher(filepath.Join(t.TempDir(), "gone", "pom.xml"), 0, func(context.Context) {})
	require.NoError(t, err)

	err = w.Run(context.Background())
	require.Error(t, err)
}
