package technitium

import "fmt"

// TransportError indicates the HTTP request never completed: connection
// refused, DNS failure, timeout. A mutating call that fails this way is
// at-most-once; the caller cannot know whether the remote write landed.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProtocolError indicates the server answered but the body was not a
// parseable JSON envelope.
type ProtocolError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("invalid API response from %s (HTTP %d): %v", e.URL, e.StatusCode, e.Err)
}

func (e *ProtocolError) Unwrap() error { return e.Err }

// RemoteError indicates the API returned a well-formed envelope with a
// status other than "ok". Envelope carries the raw response for
// diagnostics; use Envelope.Sanitized to echo it without the stack trace.
type RemoteError struct {
	Context  string
	Envelope *Envelope
}

func (e *RemoteError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: Technitium API error: %s", e.Context, e.Envelope.ErrMsg())
	}
	return fmt.Sprintf("Technitium API error: %s", e.Envelope.ErrMsg())
}

// PolicyError indicates the operation was rejected locally, before any
// API call was made (deleting a built-in group or user).
type PolicyError struct {
	Message string
}

func (e *PolicyError) Error() string { return e.Message }

// NewRemoteError wraps a non-ok envelope with optional context.
func NewRemoteError(context string, env *Envelope) *RemoteError {
	return &RemoteError{Context: context, Envelope: env}
}
