package explorer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/preston-bernstein/character-customizer/internal/teststubs"
)

func TestCommandPerPlatform(t *testing.T) {
	cases := []struct {
		goos string
		want string
	}{
		{"linux", "xdg-open"},
		{"freebsd", "xdg-open"},
		{"windows", "explorer"},
		{"darwin", "open"},
	}
	for _, tc := range cases {
		name, args, err := Command(tc.goos, "characters")
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", tc.goos, err)
		}
		if name != tc.want {
			t.Fatalf("expected %s for %s, got %s", tc.want, tc.goos, name)
		}
		if len(args) != 1 {
			t.Fatalf("expected a single directory argument, got %v", args)
		}
	}
}

func TestCommandUnsupported(t *testing.T) {
	if _, _, err := Command("plan9", "characters"); !errors.Is(err, ErrUnsupportedPlatform) {
		t.Fatalf("expected ErrUnsupportedPlatform, got %v", err)
	}
}

func TestOpenCreatesDirectoryAndLaunches(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "characters")
	starter := &teststubs.StubStarter{}
	o := NewWithStarter("linux", starter)

	if err := o.Open(context.Background(), dir); err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Fatalf("expected directory to be created: %v", err)
	}
	if starter.Calls.Load() != 1 {
		t.Fatalf("expected one launch, got %d", starter.Calls.Load())
	}
	if starter.LastName() != "xdg-open" {
		t.Fatalf("expected xdg-open, got %s", starter.LastName())
	}
	if args := starter.LastArgs(); len(args) != 1 || args[0] != dir {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestOpenReturnsLaunchFailure(t *testing.T) {
	starter := &teststubs.StubStarter{Err: errors.New("no display")}
	o := NewWithStarter("linux", starter)

	err := o.Open(context.Background(), t.TempDir())
	if err == nil || !errors.Is(err, starter.Err) {
		t.Fatalf("expected launch error to be returned, got %v", err)
	}
}

func TestOpenUnsupportedPlatformDoesNotLaunch(t *testing.T) {
	starter := &teststubs.StubStarter{}
	o := NewWithStarter("plan9", starter)

	if err := o.Open(context.Background(), t.TempDir()); !errors.Is(err, ErrUnsupportedPlatform) {
		t.Fatalf("expected ErrUnsupportedPlatform, got %v", err)
	}
	if starter.Calls.Load() != 0 {
		t.Fatalf("expected no launch")
	}
}

func TestOpenNilOpener(t *testing.T) {
	var o *Opener
	if err := o.Open(context.Background(), "x"); err == nil {
		t.Fatalf("expected error for nil opener")
	}
}

func TestOpenCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	starter := &teststubs.StubStarter{}
	if err := NewWithStarter("linux", starter).Open(ctx, t.TempDir()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNewUsesRuntime(t *testing.T) {
	if o := New(); o == nil || o.starter == nil {
		t.Fatalf("expected configured opener")
	}
}
