// Package reconcile converges one declared resource against the actual
// state on a Technitium server: probe the current state, decide the
// minimal action, issue at most one mutating API call, and report
// whether anything changed. Check mode reports the intended change
// without issuing the call.
package reconcile

import (
	"context"

	"technitium_sync/internal/technitium"
)

// Intent is the desired end state for a resource.
type Intent string

const (
	IntentPresent Intent = "present"
	IntentAbsent  Intent = "absent"
)

// Action is the operation the engine decided on.
type Action string

const (
	ActionNone   Action = "none"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// State is the probed state of a resource on the server.
type State struct {
	Exists bool
	// Attrs holds the server-reported attributes when the resource
	// exists; nil otherwise.
	Attrs map[string]any
}

// Absent is the probe result for a resource the server does not have.
var Absent = State{}

// Present wraps server attributes into an existing State.
func Present(attrs map[string]any) State {
	return State{Exists: true, Attrs: attrs}
}

// Resource is one declared resource kind. Implementations hold the
// desired attributes and know the API endpoints for their kind; each
// mutating method issues exactly one API call.
type Resource interface {
	// Kind returns the resource kind label used in messages ("Zone",
	// "User", ...).
	Kind() string
	// Name returns the resource identifier ("example.com", "jsmith").
	Name() string
	// Probe queries the current state. A server-side "not found"
	// condition is returned as an absent State, not an error.
	Probe(ctx context.Context, c *technitium.Client) (State, error)
	// Diverged reports whether an existing resource differs from the
	// desired attributes and needs an update.
	Diverged(current State) bool
	// Create brings the resource into existence.
	Create(ctx context.Context, c *technitium.Client) (*technitium.Envelope, error)
	// Update converges an existing, diverged resource.
	Update(ctx context.Context, c *technitium.Client, current State) (*technitium.Envelope, error)
	// Delete removes the resource.
	Delete(ctx context.Context, c *technitium.Client) (*technitium.Envelope, error)
	// Protected reports whether deleting this resource is forbidden.
	// Checked before any API call is made.
	Protected() bool
}
