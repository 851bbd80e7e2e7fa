package paths

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/semaphore"

	"github.com/macropower/pathkit/pkg/pathutil"
)

// ErrWaitTimeout indicates a path did not appear before the deadline.
var ErrWaitTimeout = errors.New("timed out waiting for path")

// pollInterval bounds the latency of the fallback existence poll.
const pollInterval = 10 * time.Millisecond

// WaitFor blocks until a file or directory exists at path, reporting whether
// it appeared before timeout elapsed or ctx was canceled. Existence follows
// symlinks, so a dangling link keeps waiting for its target. Creation events
// on the parent directory provide the fast path; a polling ticker covers
// paths whose parent does not exist yet and creations racing watcher setup.
func WaitFor(ctx context.Context, path string, timeout time.Duration) bool {
	if Exists(path, true) {
		return true
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	events := watchParent(ctx, path)

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return Exists(path, true)
		case <-events:
			if Exists(path, true) {
				return true
			}
		case <-ticker.C:
			if Exists(path, true) {
				return true
			}
		}
	}
}

// watchParent streams creation events from the directory containing path. It
// returns nil when a watcher cannot be established, leaving the caller on
// the polling path alone.
func watchParent(ctx context.Context, path string) <-chan fsnotify.Event {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Debug("filesystem watcher unavailable, polling only",
			slog.String("path", path),
			slog.Any("err", err),
		)

		return nil
	}

	dir := pathutil.Dir(path)

	err = watcher.Add(dir)
	if err != nil {
		slog.Debug("cannot watch parent directory, polling only",
			slog.String("dir", dir),
			slog.Any("err", err),
		)

		watcher.Close() //nolint:errcheck // Best-effort close.

		return nil
	}

	events := make(chan fsnotify.Event, 1)

	go func() {
		defer watcher.Close() //nolint:errcheck // Best-effort close.

		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}

				if ev.Op.Has(fsnotify.Create) {
					select {
					case events <- ev:
					default:
					}
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}

				slog.Debug("watch error", slog.String("dir", dir), slog.Any("err", err))
			}
		}
	}()

	return events
}

// WaitForAll waits for every path concurrently, bounding in-flight waits to
// GOMAXPROCS. The returned error aggregates one entry per path that did not
// appear before timeout.
func WaitForAll(ctx context.Context, paths []string, timeout time.Duration) error {
	workerCount := int64(runtime.GOMAXPROCS(0))
	sem := semaphore.NewWeighted(workerCount)
	errChan := make(chan error, len(paths))

	for _, path := range paths {
		err := sem.Acquire(ctx, 1)
		if err != nil {
			return fmt.Errorf("wait for %q: %w", path, err)
		}

		go func() {
			defer sem.Release(1)

			if !WaitFor(ctx, path, timeout) {
				errChan <- fmt.Errorf("%w: %s", ErrWaitTimeout, path)
			}
		}()
	}

	err := sem.Acquire(ctx, workerCount)
	if err != nil {
		return fmt.Errorf("wait for paths: %w", err)
	}

	close(errChan)

	var merr error
	for err := range errChan {
		merr = multierror.Append(merr, err)
	}

	return merr
}
