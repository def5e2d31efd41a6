package watcher

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nguyentantai21042004/dramadeck/internal/logger"
)

func TestIsTracked(t *testing.T) {
	dir := t.TempDir()
	names := filepath.Join(dir, "namelist.txt")

	w, err := New([]string{names}, nil, logger.NewWithWriter("error", &bytes.Buffer{}), time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	iw := w.(*implWatcher)
	tests := []struct {
		path string
		want bool
	}{
		{names, true},
		{filepath.Join(dir, ".", "namelist.txt"), true},
		{filepath.Join(dir, "main.tex"), false},
		{filepath.Join(dir, "namelist.txt.swp"), false},
	}

	for _, tt := range tests {
		t.Run(filepath.Base(tt.path), func(t *testing.T) {
			if got := iw.isTracked(tt.path); got != tt.want {
				t.Errorf("isTracked(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestNewMissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope", "cnplot.txt")

	_, err := New([]string{missing}, nil, logger.NewWithWriter("error", &bytes.Buffer{}), 0)
	if err == nil {
		t.Error("New() should fail when the directory does not exist")
	}
}

func TestStartCallsHandlerOnChange(t *testing.T) {
	dir := t.TempDir()
	native := filepath.Join(dir, "cnplot.txt")
	other := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(native, []byte("mom\n"), 0644); err != nil {
		t.Fatal(err)
	}

	calls := make(chan string, 10)
	handler := func(ctx context.Context, filePath string) error {
		calls <- filePath
		return nil
	}

	w, err := New([]string{native}, handler, logger.NewWithWriter("error", &bytes.Buffer{}), 50*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	if err := os.WriteFile(other, []byte("ignored"), 0644); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(native, []byte("mom\n你好\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case got := <-calls:
		if filepath.Base(got) != "cnplot.txt" {
			t.Errorf("handler called with %q, want cnplot.txt", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("handler not called after change")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after cancel")
	}
}
