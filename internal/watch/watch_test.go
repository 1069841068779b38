package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/zhubert/tsplay/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)
	code := m.Run()
	logger.Reset()
	os.Exit(code)
}

// nextMsg runs the watcher's command with a deadline
func nextMsg(t *testing.T, w *Watcher) (ChangedMsg, bool) {
	t.Helper()
	got := make(chan any, 1)
	go func() { got <- w.Next()() }()

	select {
	case msg := <-got:
		if msg == nil {
			return ChangedMsg{}, false
		}
		return msg.(ChangedMsg), true
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for a change")
		return ChangedMsg{}, false
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.ts")
	if err := os.WriteFile(path, []byte("let a = 1;"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := New(path, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("let a = 2;"), 0644); err != nil {
		t.Fatal(err)
	}

	msg, ok := nextMsg(t, w)
	if !ok {
		t.Fatal("watcher closed early")
	}
	if msg.Err != nil {
		t.Fatalf("ChangedMsg.Err = %v", msg.Err)
	}
	if msg.Code != "let a = 2;" {
		t.Errorf("Code = %q, want %q", msg.Code, "let a = 2;")
	}
	if msg.Path != w.Path() {
		t.Errorf("Path = %q, want %q", msg.Path, w.Path())
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.ts")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := New(path, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "b.ts"), []byte("y"), 0644); err != nil {
		t.Fatal(err)
	}

	got := make(chan any, 1)
	go func() { got <- w.Next()() }()
	select {
	case msg := <-got:
		t.Errorf("unexpected message %v", msg)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherCloseEndsNext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.ts")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := New(path, 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if w.debounce != DefaultDebounce {
		t.Errorf("debounce = %v, want %v", w.debounce, DefaultDebounce)
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	if _, ok := nextMsg(t, w); ok {
		t.Error("Next should yield nil after Close")
	}
}

func TestNewMissingDirectory(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "missing", "a.ts"), 0); err == nil {
		t.Error("New should fail when the directory does not exist")
	}
}
