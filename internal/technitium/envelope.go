package technitium

import (
	"encoding/json"
	"fmt"
)

// StatusOK is the envelope status the API reports on success.
const StatusOK = "ok"

// Envelope represents the uniform JSON wrapper the Technitium API returns
// for every call (API response)
type Envelope struct {
	Status       string          `json:"status"`
	Response     json.RawMessage `json:"response,omitempty"`
	ErrorMessage string          `json:"errorMessage,omitempty"`
	// Older endpoints report errors under "error" or "message" instead
	// of "errorMessage".
	ErrorAlt   string `json:"error,omitempty"`
	MessageAlt string `json:"message,omitempty"`
	StackTrace string `json:"stackTrace,omitempty"`
}

// OK reports whether the envelope's status field is "ok".
func (e *Envelope) OK() bool {
	return e.Status == StatusOK
}

// ErrMsg returns the error message reported by the API, checking
// errorMessage, then error, then message, falling back to "Unknown error".
func (e *Envelope) ErrMsg() string {
	if e.ErrorMessage != "" {
		return e.ErrorMessage
	}
	if e.ErrorAlt != "" {
		return e.ErrorAlt
	}
	if e.MessageAlt != "" {
		return e.MessageAlt
	}
	return "Unknown error"
}

// Sanitized returns the envelope as a generic map with the stackTrace
// field removed, suitable for echoing back to callers as diagnostics.
func (e *Envelope) Sanitized() map[string]any {
	out := map[string]any{
		"status": e.Status,
	}
	if len(e.Response) > 0 {
		var payload any
		if err := json.Unmarshal(e.Response, &payload); err == nil {
			out["response"] = payload
		}
	}
	if e.ErrorMessage != "" {
		out["errorMessage"] = e.ErrorMessage
	}
	if e.ErrorAlt != "" {
		out["error"] = e.ErrorAlt
	}
	if e.MessageAlt != "" {
		out["message"] = e.MessageAlt
	}
	return out
}

// DecodeResponse unmarshals the envelope's response payload into v.
func (e *Envelope) DecodeResponse(v any) error {
	if len(e.Response) == 0 {
		return nil
	}
	if err := json.Unmarshal(e.Response, v); err != nil {
		return fmt.Errorf("failed to decode response payload: %w", err)
	}
	return nil
}
