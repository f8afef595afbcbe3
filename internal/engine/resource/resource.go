// Package resource owns the lifecycle of GPU objects. Every buffer, program
// and pick target is registered with a Manager, which guarantees each one is
// released exactly once, whether through normal shutdown or a failed
// construction of a dependent resource.
package resource

import "fmt"

// Resource is any GPU object with managed release. Release must be a no-op
// when called again.
type Resource interface {
	Release()
}

// CreationError reports a failed GPU resource creation. Creation failures
// are fatal to the session; no retry or software fallback is attempted.
type CreationError struct {
	Kind string // "buffer", "program", "framebuffer"
	Err  error
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("creating %s: %v", e.Kind, e.Err)
}

func (e *CreationError) Unwrap() error {
	return e.Err
}

// Manager tracks resources for deterministic release.
type Manager struct {
	resources []Resource
}

// NewManager returns an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// Track registers an externally created resource for managed release.
func (m *Manager) Track(r Resource) {
	m.resources = append(m.resources, r)
}

// Count returns the number of registered resources.
func (m *Manager) Count() int {
	return len(m.resources)
}

// Cleanup releases every registered resource. Calling it again is a no-op:
// the registry is cleared after the first pass, and each resource's Release
// is itself idempotent.
func (m *Manager) Cleanup() {
	for _, r := range m.resources {
		r.Release()
	}
	m.resources = nil
}
