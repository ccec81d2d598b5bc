package reconcile

import "fmt"

// Outcome is the externally visible result of one reconcile invocation.
type Outcome struct {
	Changed     bool           `json:"changed"`
	Failed      bool           `json:"failed"`
	Msg         string         `json:"msg"`
	Kind        string         `json:"kind"`
	Name        string         `json:"name"`
	Action      Action         `json:"action"`
	CheckMode   bool           `json:"checkMode"`
	APIResponse map[string]any `json:"apiResponse,omitempty"`
}

// report maps (action, intent, check mode, response) to the outcome
// record. It is a pure function: the exact wording is not load-bearing
// but states unambiguously what happened.
func report(kind, name string, action Action, intent Intent, checkMode bool, apiResponse map[string]any) Outcome {
	return Outcome{
		Changed:     action != ActionNone,
		Msg:         message(kind, name, action, intent, checkMode),
		Kind:        kind,
		Name:        name,
		Action:      action,
		CheckMode:   checkMode,
		APIResponse: apiResponse,
	}
}

func message(kind, name string, action Action, intent Intent, checkMode bool) string {
	if action == ActionNone {
		if intent == IntentAbsent {
			return fmt.Sprintf("%s '%s' does not exist.", kind, name)
		}
		return fmt.Sprintf("%s '%s' already exists.", kind, name)
	}
	if checkMode {
		return fmt.Sprintf("%s '%s' would be %s (check mode).", kind, name, pastTense(action))
	}
	return fmt.Sprintf("%s '%s' %s.", kind, name, pastTense(action))
}

func pastTense(action Action) string {
	switch action {
	case ActionCreate:
		return "created"
	case ActionUpdate:
		return "updated"
	case ActionDelete:
		return "deleted"
	}
	return string(action)
}
