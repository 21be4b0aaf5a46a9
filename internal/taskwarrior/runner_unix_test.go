//go:build unix

package taskwarrior

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"golang.org/x/sys/unix"

	"taskwarrior_web/internal/domain"
)

func TestExportTimeoutKillsDescendants(t *testing.T) {
	pidFile := filepath.Join(t.TempDir(), "pid")
	// sh forks sleep instead of exec'ing it, so sleep is a grandchild of Export
	r := shellRunner(t, `echo $$ > "`+pidFile+`"; sleep 37; echo done`, 200*time.Millisecond)

	start := time.Now()
	_, err := r.Export(context.Background())
	elapsed := time.Since(start)
	if domain.KindOf(err) != domain.ErrTimeout {
		t.Fatalf("expected timeout error, got %v", err)
	}
	if elapsed > time.Second {
		t.Fatalf("Export took %v with a 200ms timeout", elapsed)
	}

	b, err := os.ReadFile(pidFile)
	if err != nil {
		t.Fatalf("read pid file: %v", err)
	}
	pgid, err := strconv.Atoi(strings.TrimSpace(string(b)))
	if err != nil {
		t.Fatalf("bad pid %q: %v", b, err)
	}

	// the killed sleep may linger briefly as a zombie until init reaps it
	deadline := time.Now().Add(2 * time.Second)
	for {
		err := unix.Kill(-pgid, 0)
		if errors.Is(err, unix.ESRCH) {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("process group %d still alive after Export returned (kill -0: %v)", pgid, err)
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func TestExportNotExecutable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "task")
	if err := os.WriteFile(path, []byte("#!/bin/sh\necho '[]'\n"), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}

	_, err := NewRunner(path, time.Second).Export(context.Background())
	if domain.KindOf(err) != domain.ErrLaunch {
		t.Fatalf("expected launch error, got %v", err)
	}
	msg := err.Error()
	if !strings.HasPrefix(msg, "OS error: ") || !strings.Contains(msg, "permission denied") {
		t.Fatalf("message %q should be an OS error with the OS text", msg)
	}
}
