// Package hook builds and emits Claude Code hook payloads.
package hook

import (
	"encoding/json"
	"io"
)

// EventSessionStart is the hook event this tool answers.
const EventSessionStart = "SessionStart"

// Output is the JSON Claude Code expects on stdout from hooks.
type Output struct {
	HookSpecificOutput *SpecificOutput `json:"hookSpecificOutput,omitempty"`
}

// SpecificOutput carries the event name and injected context.
type SpecificOutput struct {
	HookEventName     string `json:"hookEventName"`
	AdditionalContext string `json:"additionalContext,omitempty"`
}

// Emit writes a hook payload to w. encoding/json takes care of escaping
// newlines and quotes inside the context string.
func Emit(w io.Writer, eventName, context string) error {
	out := Output{
		HookSpecificOutput: &SpecificOutput{
			HookEventName:     eventName,
			AdditionalContext: context,
		},
	}
	return json.NewEncoder(w).Encode(out)
}
