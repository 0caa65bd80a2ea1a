package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

type countingLoader struct {
	mu    sync.Mutex
	paths []string
}

func (l *countingLoader) ParseFile(path string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.paths = append(l.paths, path)
	return 0, nil
}

func (l *countingLoader) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.paths)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not reached in time")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestReloadOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "groomrc")
	if err := os.WriteFile(path, []byte("wrap: 68\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	loader := &countingLoader{}
	w, err := New(path, loader, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("wrap: 90\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	waitFor(t, func() bool { return loader.count() >= 1 })
}

func TestReloadOnCreate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "groomrc")

	loader := &countingLoader{}
	w, err := New(path, loader, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("quiet: yes\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	waitFor(t, func() bool { return loader.count() >= 1 })
}

func TestIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "groomrc")
	if err := os.WriteFile(path, []byte("wrap: 68\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	loader := &countingLoader{}
	w, err := New(path, loader, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "unrelated"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(150 * time.Millisecond)
	if loader.count() != 0 {
		t.Errorf("reloaded %d times for an unrelated file", loader.count())
	}
}

func TestDebounceCoalesces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "groomrc")
	if err := os.WriteFile(path, []byte("wrap: 68\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	loader := &countingLoader{}
	w, err := New(path, loader, WithDebounce(100*time.Millisecond))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte("wrap: 90\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}
	waitFor(t, func() bool { return loader.count() >= 1 })
	time.Sleep(200 * time.Millisecond)
	if got := loader.count(); got != 1 {
		t.Errorf("reloaded %d times, want 1", got)
	}
}

func TestCloseStopsReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "groomrc")
	if err := os.WriteFile(path, []byte("wrap: 68\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	loader := &countingLoader{}
	w, err := New(path, loader, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	if err := os.WriteFile(path, []byte("wrap: 90\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(100 * time.Millisecond)
	if loader.count() != 0 {
		t.Error("reload fired after Close")
	}
}

func TestOnReloadCallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "groomrc")
	if err := os.WriteFile(path, []byte("wrap: 68\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var mu sync.Mutex
	calls := 0
	loader := &countingLoader{}
	w, err := New(path, loader,
		WithDebounce(20*time.Millisecond),
		WithOnReload(func(problems int, err error) {
			mu.Lock()
			calls++
			mu.Unlock()
		}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("wrap: 90\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls >= 1
	})
}
