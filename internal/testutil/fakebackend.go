// Package testutil provides testing utilities.
package testutil

import (
	"errors"
	"sync"
)

// ErrInjected is a generic failure for error injection.
var ErrInjected = errors.New("injected failure")

// FakeBackend is an in-memory storage backend that records writes and can be
// told to fail.
type FakeBackend struct {
	mu     sync.Mutex
	values map[string][]byte
	puts   int

	// Error injection for testing
	GetErr error
	PutErr error
}

// NewFakeBackend creates an empty FakeBackend.
func NewFakeBackend() *FakeBackend {
	return &FakeBackend{values: make(map[string][]byte)}
}

// Seed stores raw data under key without counting it as a write.
func (f *FakeBackend) Seed(key string, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = append([]byte(nil), data...)
}

// Raw returns the data stored under key.
func (f *FakeBackend) Raw(key string) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return v, ok
}

// Puts returns the number of Put calls, failed ones included.
func (f *FakeBackend) Puts() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.puts
}

// Get implements store.Backend.
func (f *FakeBackend) Get(key string) ([]byte, bool, error) {
	if f.GetErr != nil {
		return nil, false, f.GetErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Put implements store.Backend.
func (f *FakeBackend) Put(key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts++
	if f.PutErr != nil {
		return f.PutErr
	}
	f.values[key] = append([]byte(nil), value...)
	return nil
}
