package teststubs

import (
	"context"
	"sync"
	"sync/atomic"
)

// StubStarter is a test double for explorer.Starter.
type StubStarter struct {
	Err   error
	Calls atomic.Int32

	mu       sync.Mutex
	lastName string
	lastArgs []string
}

// Start records the command and returns the configured error.
func (s *StubStarter) Start(ctx context.Context, name string, args ...string) error {
	_ = ctx
	s.Calls.Add(1)
	s.mu.Lock()
	s.lastName = name
	s.lastArgs = append([]string(nil), args...)
	s.mu.Unlock()
	return s.Err
}

// LastName returns the most recently started program.
func (s *StubStarter) LastName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastName
}

// LastArgs returns the arguments of the most recent launch.
func (s *StubStarter) LastArgs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lastArgs...)
}

// StubOpener is a test double for anything that opens a directory.
type StubOpener struct {
	Err   error
	Calls atomic.Int32

	mu      sync.Mutex
	lastDir string
}

// Open records dir and returns the configured error.
func (o *StubOpener) Open(ctx context.Context, dir string) error {
	_ = ctx
	o.Calls.Add(1)
	o.mu.Lock()
	o.lastDir = dir
	o.mu.Unlock()
	return o.Err
}

// LastDir returns the most recently opened directory.
func (o *StubOpener) LastDir() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.lastDir
}
