package reconcile

import (
	"context"
	"errors"
	"fmt"

	"technitium_sync/internal/technitium"
)

// Apply converges one resource to the desired intent. It issues at most
// one mutating API call: zero when the decision is a no-op or check
// mode is on. A timeout during the mutating call surfaces as a
// *technitium.TransportError; the write may or may not have landed on
// the server (at-most-once, not exactly-once).
func Apply(ctx context.Context, c *technitium.Client, res Resource, intent Intent, checkMode bool) (Outcome, error) {
	// Protection is a static check on the identifier; it rejects a
	// delete before any network call.
	if intent == IntentAbsent && res.Protected() {
		err := &technitium.PolicyError{
			Message: fmt.Sprintf("Cannot delete built-in %s '%s'", res.Kind(), res.Name()),
		}
		return failure(res, err, nil), err
	}

	current, err := res.Probe(ctx, c)
	if err != nil {
		return failure(res, err, responseOf(err)), err
	}

	action := decide(res, current, intent)

	if action == ActionNone {
		return report(res.Kind(), res.Name(), action, intent, checkMode, nil), nil
	}

	if checkMode {
		return report(res.Kind(), res.Name(), action, intent, true, nil), nil
	}

	var env *technitium.Envelope
	switch action {
	case ActionCreate:
		env, err = res.Create(ctx, c)
	case ActionUpdate:
		env, err = res.Update(ctx, c, current)
	case ActionDelete:
		env, err = res.Delete(ctx, c)
	}
	if err != nil {
		return failure(res, err, responseOf(err)), err
	}

	var apiResponse map[string]any
	if env != nil {
		apiResponse = env.Sanitized()
	}
	return report(res.Kind(), res.Name(), action, intent, false, apiResponse), nil
}

// decide implements the action table: absent/present crossed with the
// desired intent, with present-divergent mapping to an update.
func decide(res Resource, current State, intent Intent) Action {
	switch intent {
	case IntentAbsent:
		if !current.Exists {
			return ActionNone
		}
		return ActionDelete
	default:
		if !current.Exists {
			return ActionCreate
		}
		if res.Diverged(current) {
			return ActionUpdate
		}
		return ActionNone
	}
}

func failure(res Resource, err error, apiResponse map[string]any) Outcome {
	return Outcome{
		Failed:      true,
		Msg:         err.Error(),
		Kind:        res.Kind(),
		Name:        res.Name(),
		APIResponse: apiResponse,
	}
}

// responseOf extracts the sanitized envelope from a remote error so the
// caller gets the diagnostic payload without the stack trace.
func responseOf(err error) map[string]any {
	var remote *technitium.RemoteError
	if errors.As(err, &remote) && remote.Envelope != nil {
		return remote.Envelope.Sanitized()
	}
	return nil
}
