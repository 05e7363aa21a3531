package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestEventTypeString(t *testing.T) {
	testCases := []struct {
		eventType EventType
		expected  string
	}{
		{EventTypeCreated, "created"},
		{EventTypeModified, "modified"},
		{EventTypeDeleted, "deleted"},
		{EventTypeRenamed, "renamed"},
		{EventType(42), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.eventType.String())
		})
	}
}

func TestEventTypeOf(t *testing.T) {
	assert.Equal(t, EventTypeCreated, eventTypeOf(fsnotify.Create))
	assert.Equal(t, EventTypeModified, eventTypeOf(fsnotify.Write))
	assert.Equal(t, EventTypeDeleted, eventTypeOf(fsnotify.Remove))
	assert.Equal(t, EventTypeRenamed, eventTypeOf(fsnotify.Rename))
	assert.Equal(t, EventTypeModified, eventTypeOf(fsnotify.Chmod))
}

func TestNewFileWatcher(t *testing.T) {
	watcher, err := NewFileWatcher(100*time.Millisecond, nil)
	require.NoError(t, err)
	defer watcher.Stop()

	assert.NotNil(t, watcher.watcher)
	assert.NotNil(t, watcher.debouncer)
	assert.Empty(t, watcher.filters)
	assert.Empty(t, watcher.handlers)

	_, err = NewFileWatcher(0, nil)
	assert.Error(t, err)
}

func TestFileWatcherAddPath(t *testing.T) {
	watcher, err := NewFileWatcher(100*time.Millisecond, nil)
	require.NoError(t, err)
	defer watcher.Stop()

	assert.NoError(t, watcher.AddPath(t.TempDir()))
	assert.Error(t, watcher.AddPath("/non/existent/path"))
	assert.Error(t, watcher.AddPath("bad\x00path"))
}

func TestFilters(t *testing.T) {
	target := filepath.Join("input", "day3.txt")
	filter := PathFilter(target)
	assert.True(t, filter("input/./day3.txt"))
	assert.False(t, filter("input/day4.txt"))

	assert.True(t, TextFilter("day1.txt"))
	assert.False(t, TextFilter("day1.go"))

	assert.True(t, NoHiddenFilter("input/day1.txt"))
	assert.False(t, NoHiddenFilter("input/.day1.txt.swp"))

	assert.True(t, NoEditorTempFilter("day1.txt"))
	for _, name := range []string{"day1.txt~", "day1.txt.swp", "#day1.txt#", "4913"} {
		assert.False(t, NoEditorTempFilter(filepath.Join("input", name)), name)
	}
}

func TestDebouncerDeduplicates(t *testing.T) {
	d := newDebouncer(10 * time.Millisecond)
	d.pending = []ChangeEvent{
		{Type: EventTypeCreated, Path: "b.txt"},
		{Type: EventTypeModified, Path: "a.txt"},
		{Type: EventTypeModified, Path: "b.txt"},
	}
	d.flush()

	select {
	case events := <-d.output:
		require.Len(t, events, 2)
		assert.Equal(t, "a.txt", events[0].Path)
		assert.Equal(t, "b.txt", events[1].Path)
		assert.Equal(t, EventTypeModified, events[1].Type)
	default:
		t.Fatal("expected a batch")
	}
	assert.Empty(t, d.pending)

	// Empty flush sends nothing
	d.flush()
	assert.Len(t, d.output, 0)
}

func TestFileWatcherWatchFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "day1.txt")
	other := filepath.Join(dir, "day2.txt")
	require.NoError(t, os.WriteFile(target, []byte("1abc2\n"), 0o644))

	watcher, err := NewFileWatcher(50*time.Millisecond, nil)
	require.NoError(t, err)
	defer watcher.Stop()

	require.NoError(t, watcher.WatchFile(target))

	var mu sync.Mutex
	var batches [][]ChangeEvent
	received := make(chan struct{}, 10)
	watcher.AddHandler(func(_ context.Context, events []ChangeEvent) error {
		mu.Lock()
		batches = append(batches, events)
		mu.Unlock()
		received <- struct{}{}
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, watcher.Start(ctx))
	assert.Error(t, watcher.Start(ctx))

	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0o644))
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(target, []byte("pqr3stu8vwx\n"), 0o644))
	}

	select {
	case <-received:
	case <-time.After(2 * time.Second):
		t.Fatal("no change batch received")
	}

	mu.Lock()
	defer mu.Unlock()
	for _, batch := range batches {
		for _, event := range batch {
			assert.Equal(t, target, event.Path)
		}
	}
}

func TestFileWatcherStopWithoutCancel(t *testing.T) {
	watcher, err := NewFileWatcher(20*time.Millisecond, nil)
	require.NoError(t, err)
	require.NoError(t, watcher.AddPath(t.TempDir()))
	require.NoError(t, watcher.Start(context.Background()))

	assert.NoError(t, watcher.Stop())
	// Second stop is a no-op
	assert.NoError(t, watcher.Stop())
}
