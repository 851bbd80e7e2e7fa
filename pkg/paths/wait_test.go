package paths_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/pathkit/pkg/paths"
)

func TestWaitFor(t *testing.T) {
	t.Parallel()

	t.Run("existing path returns immediately", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		file := filepath.Join(dir, "ready")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

		assert.True(t, paths.WaitFor(t.Context(), file, time.Second))
	})
	t.Run("path appearing during the wait", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		file := filepath.Join(dir, "late")

		go func() {
			time.Sleep(50 * time.Millisecond)
			_ = os.WriteFile(file, []byte("x"), 0o600)
		}()

		assert.True(t, paths.WaitFor(t.Context(), file, 5*time.Second))
	})
	t.Run("directory appearing during the wait", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sub := filepath.Join(dir, "sub")

		go func() {
			time.Sleep(50 * time.Millisecond)
			_ = os.Mkdir(sub, 0o750)
		}()

		assert.True(t, paths.WaitFor(t.Context(), sub, 5*time.Second))
	})
	t.Run("parent directory created during the wait", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		file := filepath.Join(dir, "sub", "late")

		go func() {
			time.Sleep(50 * time.Millisecond)
			_ = os.MkdirAll(filepath.Dir(file), 0o750)
			_ = os.WriteFile(file, []byte("x"), 0o600)
		}()

		assert.True(t, paths.WaitFor(t.Context(), file, 5*time.Second))
	})
	t.Run("symlink target appearing during the wait", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		target := filepath.Join(dir, "target")
		link := filepath.Join(dir, "link")
		require.NoError(t, os.Symlink(target, link))

		go func() {
			time.Sleep(50 * time.Millisecond)
			_ = os.WriteFile(target, []byte("x"), 0o600)
		}()

		assert.True(t, paths.WaitFor(t.Context(), link, 5*time.Second))
	})
	t.Run("timeout on missing path", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		assert.False(t, paths.WaitFor(t.Context(), filepath.Join(dir, "never"), 50*time.Millisecond))
	})
	t.Run("dangling symlink waits for its target", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		link := filepath.Join(dir, "link")
		require.NoError(t, os.Symlink(filepath.Join(dir, "target"), link))

		require.True(t, paths.Exists(link, false))
		assert.False(t, paths.WaitFor(t.Context(), link, 50*time.Millisecond))
	})
	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		assert.False(t, paths.WaitFor(ctx, filepath.Join(dir, "never"), time.Second))
	})
}

func TestWaitForAll(t *testing.T) {
	t.Parallel()

	t.Run("all paths exist", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		a := filepath.Join(dir, "a")
		b := filepath.Join(dir, "b")
		require.NoError(t, os.WriteFile(a, []byte("x"), 0o600))
		require.NoError(t, os.WriteFile(b, []byte("x"), 0o600))

		require.NoError(t, paths.WaitForAll(t.Context(), []string{a, b}, time.Second))
	})
	t.Run("no paths", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, paths.WaitForAll(t.Context(), nil, time.Second))
	})
	t.Run("missing paths aggregate errors", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		err := paths.WaitForAll(t.Context(), []string{
			filepath.Join(dir, "never-a"),
			filepath.Join(dir, "never-b"),
		}, 50*time.Millisecond)
		require.ErrorIs(t, err, paths.ErrWaitTimeout)
		assert.Contains(t, err.Error(), "never-a")
		assert.Contains(t, err.Error(), "never-b")
	})
	t.Run("only missing paths are reported", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		ok := filepath.Join(dir, "ok")
		require.NoError(t, os.WriteFile(ok, []byte("x"), 0o600))

		err := paths.WaitForAll(t.Context(), []string{
			ok,
			filepath.Join(dir, "never"),
		}, 50*time.Millisecond)
		require.ErrorIs(t, err, paths.ErrWaitTimeout)
		assert.Contains(t, err.Error(), "never")
		assert.NotContains(t, err.Error(), "/ok")
	})
}
