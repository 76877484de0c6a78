package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/blackwell-systems/anthropac/internal/config"
	"github.com/blackwell-systems/anthropac/internal/freelist"
)

// syncBuffer is a bytes.Buffer safe for the watch goroutine and the test.
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

func waitFor(t *testing.T, buf *syncBuffer, want string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(buf.String(), want) {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %q\nGot:\n%s", want, buf.String())
}

func TestWatchCommand(t *testing.T) {
	if watchCmd.Name() != "watch" {
		t.Errorf("expected name to be 'watch', got '%s'", watchCmd.Name())
	}

	if watchCmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if watchCmd.Long == "" {
		t.Error("expected Long description to be set")
	}

	if watchCmd.Example == "" {
		t.Error("expected Example to be set")
	}

	if watchCmd.RunE == nil {
		t.Error("expected RunE to be set")
	}
}

func TestWatchCommand_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")

	_, err := executeCommand(t, "watch", missing)

	var inputErr *freelist.InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected *freelist.InputError, got %v", err)
	}
}

func TestWatchFile_RerunsOnChange(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	path := writeFreelists(t, "dog cat\n")

	var out, errOut syncBuffer
	settings := &config.Settings{}
	logger := log.New(io.Discard, "", 0)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, path, &out, &errOut, settings, logger)
	}()

	waitFor(t, &out, "Lists: 1")

	if err := os.WriteFile(path, []byte("dog cat\ncat bird\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	waitFor(t, &out, "re-running analysis")
	waitFor(t, &out, "Lists: 2")

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("watchFile() returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watchFile() did not stop after cancel")
	}

	if errOut.String() != "" {
		t.Errorf("unexpected error output:\n%s", errOut.String())
	}
}

func TestWatchFile_IgnoresOtherFiles(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	path := writeFreelists(t, "dog\n")

	var out, errOut syncBuffer
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, path, &out, &errOut, &config.Settings{}, log.New(io.Discard, "", 0))
	}()

	waitFor(t, &out, "Lists: 1")

	other := filepath.Join(filepath.Dir(path), "notes.txt")
	if err := os.WriteFile(other, []byte("unrelated\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	time.Sleep(4 * watchDebounce)

	cancel()
	<-done

	if strings.Contains(out.String(), "re-running analysis") {
		t.Errorf("expected no re-run for unrelated file:\n%s", out.String())
	}
}
