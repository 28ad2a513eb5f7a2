// Package explorer opens a directory in the operating system's file browser.
package explorer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// ErrUnsupportedPlatform is returned when no file browser command is known for the OS.
var ErrUnsupportedPlatform = errors.New("no file browser for this platform")

// Starter launches a process without waiting for it to finish.
type Starter interface {
	Start(ctx context.Context, name string, args ...string) error
}

// Opener picks the browser command for an OS and launches it through a Starter.
type Opener struct {
	goos    string
	starter Starter
}

// New returns an Opener for the running OS that spawns real processes.
func New() *Opener {
	return NewWithStarter(runtime.GOOS, ExecStarter{})
}

// NewWithStarter returns an Opener for goos using the given Starter.
func NewWithStarter(goos string, starter Starter) *Opener {
	return &Opener{goos: goos, starter: starter}
}

// Command returns the program and arguments used to show dir on goos.
func Command(goos, dir string) (string, []string, error) {
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return "xdg-open", []string{dir}, nil
	case "windows":
		return "explorer", []string{filepath.FromSlash(dir)}, nil
	case "darwin":
		return "open", []string{dir}, nil
	default:
		return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}
}

// Open creates dir when missing and shows it in the file browser.
func (o *Opener) Open(ctx context.Context, dir string) error {
	if o == nil || o.starter == nil {
		return errors.New("explorer not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	name, args, err := Command(o.goos, dir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("prepare %s: %w", dir, err)
	}
	if err := o.starter.Start(ctx, name, args...); err != nil {
		return fmt.Errorf("launch %s: %w", name, err)
	}
	return nil
}

// ExecStarter starts commands with os/exec and reaps them in the background.
type ExecStarter struct{}

// Start launches the command detached from ctx; the browser outlives the request that opened it.
func (ExecStarter) Start(ctx context.Context, name string, args ...string) error {
	_ = ctx
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
