package watch

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func waitFor(t *testing.T, ch <-chan fsnotify.Event) fsnotify.Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("no event received")
	}
	return fsnotify.Event{}
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "design.html")
	other := filepath.Join(dir, "other.txt")
	if err := os.WriteFile(target, []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}

	events := make(chan fsnotify.Event, 16)
	var calls atomic.Int32
	w, err := Files([]string{target}, Options{Debounce: 100 * time.Millisecond}, func(ev fsnotify.Event) {
		calls.Add(1)
		events <- ev
	})
	if err != nil {
		t.Fatalf("Files() error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(other, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(target, []byte{byte('b' + i)}, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	ev := waitFor(t, events)
	abs, _ := filepath.Abs(target)
	if ev.Name != abs && ev.Name != target {
		t.Errorf("event for %q", ev.Name)
	}

	time.Sleep(300 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("burst of writes triggered %d callbacks, want 1", got)
	}
}

func TestDir(t *testing.T) {
	root := t.TempDir()
	events := make(chan fsnotify.Event, 16)
	w, err := Dir(root, Options{Debounce: 20 * time.Millisecond}, func(ev fsnotify.Event) {
		events <- ev
	})
	if err != nil {
		t.Fatalf("Dir() error = %v", err)
	}
	defer w.Close()

	sub := filepath.Join(root, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	waitFor(t, events)

	if err := os.WriteFile(filepath.Join(sub, "f.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	ev := waitFor(t, events)
	if filepath.Dir(ev.Name) != sub {
		t.Errorf("event for %q, want a file of the new directory", ev.Name)
	}
}

func TestCloseDropsPending(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "f")
	var calls atomic.Int32
	w, err := Files([]string{target}, Options{Debounce: time.Second}, func(fsnotify.Event) { calls.Add(1) })
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(target, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(100 * time.Millisecond)
	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	time.Sleep(1200 * time.Millisecond)
	if got := calls.Load(); got != 0 {
		t.Errorf("%d callbacks after Close", got)
	}
}

func TestDirMissing(t *testing.T) {
	if _, err := Dir(filepath.Join(t.TempDir(), "nope"), Options{}, func(fsnotify.Event) {}); err == nil {
		t.Error("Dir() on a missing directory must fail")
	}
}
