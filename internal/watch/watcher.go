package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
)

// RunFunc is called each time the watcher triggers a regeneration.
type RunFunc func(ctx context.Context) (*RunResult, error)

// RunResult holds the output of a single generation.
type RunResult struct {
	// OutputPath is where the pom was written. Empty for stdout.
	OutputPath string

	// Changed reports whether the pom on disk was modified.
	Changed bool

	// Dependencies maps groupId:artifactId[:classifier] to the declared version.
	Dependencies map[string]string

	Plugins  int
	Profiles int
}

// ValidateFunc is called after each generation to validate the output.
type ValidateFunc func(ctx context.Context, outputPath string) error

// Options configures the watch behaviour.
type Options struct {
	// Files are the files to watch: the descriptor and, optionally, the
	// config file.
	Files []string

	// Debounce is the quiet period before triggering a rebuild.
	Debounce time.Duration

	// Validate enables validation of the written pom after each generation.
	Validate bool

	// ValidateFn is called after each generation when Validate is true.
	// If nil, validation is skipped even when Validate is true.
	ValidateFn ValidateFunc

	// Logger is used for structured logging.
	Logger *slog.Logger

	// Out is the writer for user-facing status messages.
	Out io.Writer
}

// DefaultOptions returns sensible default watch options.
func DefaultOptions() Options {
	return Options{
		Debounce: 300 * time.Millisecond,
		Validate: true,
		Logger:   slog.Default(),
		Out:      os.Stderr,
	}
}

// Run starts the file watcher and blocks until the context is cancelled
// or a SIGINT/SIGTERM signal is received.
//
// Directories are watched rather than files, because editors commonly save
// by writing a new file and renaming it over the old one.
func Run(ctx context.Context, opts Options, runFn RunFunc) error {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	if opts.Out == nil {
		opts.Out = io.Discard
	}

	if len(opts.Files) == 0 {
		return errors.New("no files to watch")
	}

	targets, err := resolveTargets(opts.Files)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range watchDirs(targets) {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching directory %q: %w", dir, err)
		}
	}

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_, _ = fmt.Fprintf(opts.Out, "watching %s (debounce=%s, validate=%t)\n",
		strings.Join(opts.Files, ", "), opts.Debounce, opts.Validate)

	r := &runner{opts: opts, runFn: runFn}
	r.run(sigCtx, "(initial)")

	debouncer := NewDebouncer(opts.Debounce, func(paths []string) {
		r.run(sigCtx, displayPaths(paths))
	})
	defer debouncer.Stop()

	for {
		select {
		case <-sigCtx.Done():
			_, _ = fmt.Fprintln(opts.Out, "\nshutting down watcher")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !isRelevant(event) {
				continue
			}

			if _, watched := targets[filepath.Clean(event.Name)]; !watched {
				continue
			}

			debouncer.Trigger(event.Name)

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			opts.Logger.Error("watcher error", slog.String("error", watchErr.Error()))
		}
	}
}

// runner serialises generations and remembers the previous dependency set.
type runner struct {
	opts  Options
	runFn RunFunc

	mu   sync.Mutex
	prev map[string]string
	ran  bool
}

func (r *runner) run(ctx context.Context, trigger string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := r.opts.Out
	now := time.Now().Format("15:04:05")

	result, err := r.runFn(ctx)
	if err != nil {
		_, _ = fmt.Fprintf(out, "[%s] %s -> ERROR: %v\n", now, trigger, err)
		return
	}

	status := "unchanged"
	if result.Changed {
		status = "written"
	}

	_, _ = fmt.Fprintf(out, "[%s] %s -> OK, pom %s (%d dependencies, %d plugins, %d profiles)\n",
		now, trigger, status, len(result.Dependencies), result.Plugins, result.Profiles)

	if r.ran {
		if changes := DependencyDiff(r.prev, result.Dependencies); len(changes) > 0 {
			_, _ = fmt.Fprintf(out, "  dependencies: %s\n", DependencyDiffSummary(changes))

			for _, c := range changes {
				r.opts.Logger.Debug("dependency change",
					slog.String("kind", c.Kind), slog.String("id", c.ID), slog.String("detail", c.Detail))
			}
		}
	}

	r.prev = result.Dependencies
	r.ran = true

	if r.opts.Validate && r.opts.ValidateFn != nil && result.OutputPath != "" {
		if validateErr := r.opts.ValidateFn(ctx, result.OutputPath); validateErr != nil {
			_, _ = fmt.Fprintf(out, "  validate: FAILED: %v\n", validateErr)
			return
		}

		_, _ = fmt.Fprintf(out, "  validate: OK\n")
	}
}

// resolveTargets returns the cleaned absolute paths of files.
func resolveTargets(files []string) (map[string]struct{}, error) {
	targets := make(map[string]struct{}, len(files))

	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, fmt.Errorf("resolving %q: %w", f, err)
		}

		if _, err := os.Stat(abs); err != nil {
			return nil, fmt.Errorf("watching file %q: %w", f, err)
		}

		targets[filepath.Clean(abs)] = struct{}{}
	}

	return targets, nil
}

func watchDirs(targets map[string]struct{}) []string {
	seen := make(map[string]bool, len(targets))

	var dirs []string

	for t := range targets {
		dir := filepath.Dir(t)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}

	return dirs
}

func displayPaths(paths []string) string {
	names := make([]string, 0, len(paths))
	for _, p := range paths {
		names = append(names, filepath.Base(p))
	}

	return strings.Join(names, ", ")
}

// isRelevant filters out events that cannot change file content.
func isRelevant(event fsnotify.Event) bool {
	if event.Op == 0 {
		return false
	}

	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}

	name := filepath.Base(event.Name)

	if strings.HasSuffix(name, "~") || strings.HasSuffix(name, ".swp") || strings.HasPrefix(name, "#") {
		return false
	}

	return true
}
