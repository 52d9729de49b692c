package etoalium

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownStep is returned when a script contains an unsupported action.
var ErrUnknownStep = errors.New("etoalium: unknown script action")

// scriptStep represents a single action in a navigation script.
type scriptStep struct {
	Action string `json:"action"`
	Path   string `json:"path,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure for a navigation script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script replays navigation across update ticks, one step per tick, for
// demos and automated runs. Attach to an App via SetScript.
//
//	{"steps": [
//	  {"action": "navigate", "path": "/works/dm-seigaiha"},
//	  {"action": "wait", "frames": 120},
//	  {"action": "back"},
//	  {"action": "theme"}
//	]}
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses and validates a JSON navigation script.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "navigate", "back", "wait", "theme":
		default:
			return nil, fmt.Errorf("parse script: step %d: %w %q", i, ErrUnknownStep, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// Done reports whether all steps have been executed.
func (s *Script) Done() bool {
	return s.done
}

// step advances the script by one tick. Called from App.Step before queued
// navigation is applied, so a navigate step takes effect the same tick.
func (s *Script) step(a *App) error {
	if s.done {
		return nil
	}
	if s.waitCount > 0 {
		s.waitCount--
		return nil
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return nil
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "navigate":
		a.Navigate(st.Path)
	case "back":
		a.Back()
	case "theme":
		a.SetTheme(a.theme.Toggle())
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this tick counts as one
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownStep, st.Action)
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 {
		s.done = true
	}
	return nil
}
