package watch

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Debouncer
// ---------------------------------------------------------------------------

func TestDebouncer_SingleEvent(t *testing.T) {
	var callCount atomic.Int32
	var lastPaths atomic.Value

	d := NewDebouncer(50*time.Millisecond, func(paths []string) {
		callCount.Add(1)
		lastPaths.Store(paths)
	})
	defer d.Stop()

	d.Trigger("pomgen.yaml")

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), callCount.Load())
	assert.Equal(t, []string{"pomgen.yaml"}, lastPaths.Load())
}

func TestDebouncer_MultipleEventsCoalesced(t *testing.T) {
	var callCount atomic.Int32
	var lastPaths atomic.Value

	d := NewDebouncer(100*time.Millisecond, func(paths []string) {
		callCount.Add(1)
		lastPaths.Store(paths)
	})
	defer d.Stop()

	for range 10 {
		d.Trigger("pomgen.yaml")
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), callCount.Load())
	assert.Equal(t, []string{"pomgen.yaml"}, lastPaths.Load())
}

func TestDebouncer_CollectsDistinctPaths(t *testing.T) {
	var lastPaths atomic.Value

	d := NewDebouncer(50*time.Millisecond, func(paths []string) {
		lastPaths.Store(paths)
	})
	defer d.Stop()

	d.Trigger("pomgen.yaml")
	d.Trigger(".pomgen.yaml")
	d.Trigger("pomgen.yaml")

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, []string{".pomgen.yaml", "pomgen.yaml"}, lastPaths.Load())
}

func TestDebouncer_Stop(t *testing.T) {
	var callCount atomic.Int32

	d := NewDebouncer(50*time.Millisecond, func([]string) {
		callCount.Add(1)
	})

	d.Trigger("pomgen.yaml")
	d.Stop()

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(0), callCount.Load())
}

// ---------------------------------------------------------------------------
// DependencyDiff
// ---------------------------------------------------------------------------

func TestDependencyDiff(t *testing.T) {
	prev := map[string]string{
		"org.springframework.boot:spring-boot-starter-web": "",
		"org.postgresql:postgresql":                        "42.6.0",
		"com.h2database:h2":                                "",
	}
	curr := map[string]string{
		"org.springframework.boot:spring-boot-starter-web": "",
		"org.postgresql:postgresql":                        "42.7.3",
		"org.flywaydb:flyway-core":                         "${flyway.version}",
	}

	changes := DependencyDiff(prev, curr)

	assert.Equal(t, []DependencyChange{
		{Kind: "removed", ID: "com.h2database:h2", Detail: ""},
		{Kind: "added", ID: "org.flywaydb:flyway-core", Detail: "${flyway.version}"},
		{Kind: "version-changed", ID: "org.postgresql:postgresql", Detail: "42.6.0 -> 42.7.3"},
	}, changes)
}

func TestDependencyDiff_ManagedVersion(t *testing.T) {
	changes := DependencyDiff(map[string]string{"g:a": "1.0"}, map[string]string{"g:a": ""})
	require.Len(t, changes, 1)
	assert.Equal(t, "1.0 -> managed", changes[0].Detail)
}

func TestDependencyDiff_NoChanges(t *testing.T) {
	deps := map[string]string{"g:a": "1.0"}
	assert.Empty(t, DependencyDiff(deps, deps))
	assert.Empty(t, DependencyDiff(nil, nil))
}

func TestDependencyDiffSummary(t *testing.T) {
	tests := []struct {
		name    string
		changes []DependencyChange
		want    string
	}{
		{
			name:    "no changes",
			changes: nil,
			want:    "no dependency changes",
		},
		{
			name: "added only",
			changes: []DependencyChange{
				{Kind: "added", ID: "a:a"},
				{Kind: "added", ID: "b:b"},
			},
			want: "+2 dependency(ies) added",
		},
		{
			name: "mixed",
			changes: []DependencyChange{
				{Kind: "added", ID: "a:a"},
				{Kind: "removed", ID: "b:b"},
				{Kind: "version-changed", ID: "c:c"},
			},
			want: "+1 dependency(ies) added, -1 dependency(ies) removed, ~1 version(s) changed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DependencyDiffSummary(tt.changes))
		})
	}
}

// ---------------------------------------------------------------------------
// isRelevant
// ---------------------------------------------------------------------------

func TestIsRelevant(t *testing.T) {
	tests := []struct {
		name string
		path string
		op   fsnotify.Op
		want bool
	}{
		{"yaml write", "pomgen.yaml", fsnotify.Write, true},
		{"toml write", "pomgen.toml", fsnotify.Write, true},
		{"config file", ".pomgen.yaml", fsnotify.Write, true},
		{"create event", "pomgen.yaml", fsnotify.Create, true},
		{"remove event", "pomgen.yaml", fsnotify.Remove, true},
		{"rename event", "pomgen.yaml", fsnotify.Rename, true},
		{"swap file", "pomgen.yaml.swp", fsnotify.Write, false},
		{"backup tilde", "pomgen.yaml~", fsnotify.Write, false},
		{"emacs hash", "#pomgen.yaml#", fsnotify.Write, false},
		{"zero op", "pomgen.yaml", 0, false},
		{"chmod only", "pomgen.yaml", fsnotify.Chmod, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := fsnotify.Event{Name: tt.path, Op: tt.op}
			assert.Equal(t, tt.want, isRelevant(event))
		})
	}
}

func TestWatchDirs_Deduplicates(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "pomgen.yaml")
	b := filepath.Join(dir, ".pomgen.yaml")
	require.NoError(t, os.WriteFile(a, nil, 0o600))
	require.NoError(t, os.WriteFile(b, nil, 0o600))

	targets, err := resolveTargets([]string{a, b})
	require.NoError(t, err)
	assert.Len(t, targets, 2)
	assert.Equal(t, []string{dir}, watchDirs(targets))
}

func TestDisplayPaths(t *testing.T) {
	assert.Equal(t, "pomgen.yaml, .pomgen.yaml", displayPaths([]string{"/a/pomgen.yaml", "/b/.pomgen.yaml"}))
}

// ---------------------------------------------------------------------------
// Run (integration)
// ---------------------------------------------------------------------------

// syncBuffer guards a bytes.Buffer shared with the watcher goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func writeDescriptor(t *testing.T, dir string) string {
	t.Helper()

	p := filepath.Join(dir, "pomgen.yaml")
	require.NoError(t, os.WriteFile(p, []byte("project:\n  groupId: com.example\n"), 0o600))

	return p
}

func TestRun_GracefulShutdown(t *testing.T) {
	descriptor := writeDescriptor(t, t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())

	var runCount atomic.Int32

	opts := DefaultOptions()
	opts.Files = []string{descriptor}
	opts.Debounce = 50 * time.Millisecond
	opts.Out = io.Discard

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, opts, func(_ context.Context) (*RunResult, error) {
			runCount.Add(1)
			return &RunResult{Changed: true}, nil
		})
	}()

	time.Sleep(200 * time.Millisecond)
	assert.GreaterOrEqual(t, runCount.Load(), int32(1))

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not shut down in time")
	}
}

func TestRun_FileChangeTriggersRebuild(t *testing.T) {
	dir := t.TempDir()
	descriptor := writeDescriptor(t, dir)
	unrelated := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(unrelated, []byte("docs"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var runCount atomic.Int32

	out := &syncBuffer{}
	opts := DefaultOptions()
	opts.Files = []string{descriptor}
	opts.Debounce = 50 * time.Millisecond
	opts.Out = out

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, opts, func(_ context.Context) (*RunResult, error) {
			n := runCount.Add(1)

			deps := map[string]string{"org.springframework.boot:spring-boot-starter-web": ""}
			if n > 1 {
				deps["org.postgresql:postgresql"] = ""
			}

			return &RunResult{Changed: true, Dependencies: deps}, nil
		})
	}()

	time.Sleep(200 * time.Millisecond)
	initialRuns := runCount.Load()

	require.NoError(t, os.WriteFile(unrelated, []byte("more docs"), 0o600))
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, initialRuns, runCount.Load(), "unwatched file must not trigger a rebuild")

	require.NoError(t, os.WriteFile(descriptor, []byte("project:\n  groupId: com.acme\n"), 0o600))
	time.Sleep(300 * time.Millisecond)
	assert.Greater(t, runCount.Load(), initialRuns, "descriptor change should trigger rebuild")

	cancel()
	<-done

	assert.Contains(t, out.String(), "(initial) -> OK, pom written (1 dependencies")
	assert.Contains(t, out.String(), "pomgen.yaml -> OK")
	assert.Contains(t, out.String(), "dependencies: +1 dependency(ies) added")
}

func TestRun_ValidateFn(t *testing.T) {
	descriptor := writeDescriptor(t, t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())

	out := &syncBuffer{}
	opts := DefaultOptions()
	opts.Files = []string{descriptor}
	opts.Debounce = 50 * time.Millisecond
	opts.Out = out
	opts.ValidateFn = func(_ context.Context, path string) error {
		return errors.New("bad pom at " + path)
	}

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, opts, func(_ context.Context) (*RunResult, error) {
			return &RunResult{OutputPath: "pom.xml"}, nil
		})
	}()

	time.Sleep(200 * time.Millisecond)
	cancel()
	<-done

	assert.Contains(t, out.String(), "pom unchanged")
	assert.Contains(t, out.String(), "validate: FAILED: bad pom at pom.xml")
}

// ---------------------------------------------------------------------------
// DefaultOptions
// ---------------------------------------------------------------------------

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, 300*time.Millisecond, opts.Debounce)
	assert.True(t, opts.Validate)
	assert.NotNil(t, opts.Logger)
	assert.NotNil(t, opts.Out)
}

// ---------------------------------------------------------------------------
// Run error paths
// ---------------------------------------------------------------------------

func TestRun_NoFiles(t *testing.T) {
	opts := DefaultOptions()
	opts.Out = io.Discard

	err := Run(context.Background(), opts, func(_ context.Context) (*RunResult, error) {
		return &RunResult{}, nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no files to watch")
}

func TestRun_MissingFile(t *testing.T) {
	opts := DefaultOptions()
	opts.Files = []string{"/nonexistent/pomgen/12345/pomgen.yaml"}
	opts.Out = io.Discard

	err := Run(context.Background(), opts, func(_ context.Context) (*RunResult, error) {
		return &RunResult{}, nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "watching file")
}

func TestRun_RunFuncError(t *testing.T) {
	descriptor := writeDescriptor(t, t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())

	out := &syncBuffer{}
	opts := DefaultOptions()
	opts.Files = []string{descriptor}
	opts.Debounce = 50 * time.Millisecond
	opts.Out = out

	var callCount atomic.Int32

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, opts, func(_ context.Context) (*RunResult, error) {
			callCount.Add(1)
			return nil, errors.New("invalid descriptor")
		})
	}()

	time.Sleep(200 * time.Millisecond)
	assert.GreaterOrEqual(t, callCount.Load(), int32(1))

	cancel()
	<-done

	assert.Contains(t, out.String(), "ERROR: invalid descriptor")
}

func TestRun_ExtraFiles(t *testing.T) {
	descriptor := writeDescriptor(t, t.TempDir())

	configFile := filepath.Join(t.TempDir(), ".pomgen.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("log-level: info\n"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())

	opts := DefaultOptions()
	opts.Files = []string{descriptor, configFile}
	opts.Debounce = 50 * time.Millisecond
	opts.Out = io.Discard

	var runCount atomic.Int32

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, opts, func(_ context.Context) (*RunResult, error) {
			runCount.Add(1)
			return &RunResult{}, nil
		})
	}()

	time.Sleep(200 * time.Millisecond)
	initialRuns := runCount.Load()

	require.NoError(t, os.WriteFile(configFile, []byte("log-level: debug\n"), 0o600))
	time.Sleep(300 * time.Millisecond)
	assert.Greater(t, runCount.Load(), initialRuns, "config file change should trigger rebuild")

	cancel()
	<-done
}
