// Package demo drives scripted key sequences through the murmur model and
// captures the rendered frames. Scenarios run without a terminal, so they
// double as smoke checks.
package demo

import (
	"strconv"
	"time"

	"github.com/zhubert/murmur/internal/model"
	"github.com/zhubert/murmur/internal/state"
)

// StepType represents the type of action in a demo step.
type StepType int

const (
	// StepWait pauses for a duration (for timing/pacing).
	StepWait StepType = iota
	// StepKey sends a single key press.
	StepKey
	// StepTypeText types a string character by character.
	StepTypeText
	// StepPaste delivers text as a bracketed paste.
	StepPaste
	// StepCapture captures the current frame.
	StepCapture
	// StepAnnotate adds an annotation/caption to the next frame.
	StepAnnotate
)

// Step represents a single action in a demo scenario.
type Step struct {
	Type        StepType
	Description string // Human-readable description of what this step does

	// For StepKey
	Key string

	// For StepTypeText and StepPaste
	Text string

	// For StepWait
	Duration time.Duration

	// For StepAnnotate
	Annotation string
}

// Scenario defines a complete demo scenario.
type Scenario struct {
	Name        string
	Description string
	Width       int // Terminal width (default 120)
	Height      int // Terminal height (default 40)
	Setup       *ScenarioSetup
	Steps       []Step
}

// ScenarioSetup defines the initial state for a demo.
type ScenarioSetup struct {
	Variant  model.Variant
	Delivery state.Delivery
}

// DefaultSetup returns the social dataset with local echo, which has the
// most to look at.
func DefaultSetup() *ScenarioSetup {
	return &ScenarioSetup{
		Variant:  model.VariantSocial,
		Delivery: state.DeliveryLocalEcho,
	}
}

// Validate checks that the scenario is valid and fills in defaults.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "Name", Message: "scenario name is required"}
	}
	if s.Width <= 0 {
		s.Width = 120
	}
	if s.Height <= 0 {
		s.Height = 40
	}
	if s.Setup == nil {
		s.Setup = DefaultSetup()
	}
	if _, err := model.ParseVariant(string(s.Setup.Variant)); err != nil {
		return &ValidationError{Field: "Setup.Variant", Message: err.Error()}
	}
	if s.Setup.Delivery == "" {
		s.Setup.Delivery = state.DeliveryDiscard
	}
	if _, err := state.ParseDelivery(string(s.Setup.Delivery)); err != nil {
		return &ValidationError{Field: "Setup.Delivery", Message: err.Error()}
	}
	for i, step := range s.Steps {
		if step.Type == StepKey && step.Key == "" {
			return &ValidationError{Field: "Steps", Message: "key step without a key at index " + strconv.Itoa(i)}
		}
	}
	return nil
}

// ValidationError represents a scenario validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + ": " + e.Message
}

// Step builder functions for fluent scenario construction

// Wait creates a wait step.
func Wait(d time.Duration) Step {
	return Step{
		Type:     StepWait,
		Duration: d,
	}
}

// Key creates a key press step.
func Key(key string) Step {
	return Step{
		Type: StepKey,
		Key:  key,
	}
}

// KeyWithDesc creates a key press step with a description.
func KeyWithDesc(key, description string) Step {
	return Step{
		Type:        StepKey,
		Key:         key,
		Description: description,
	}
}

// Type creates a text typing step.
func Type(text string) Step {
	return Step{
		Type: StepTypeText,
		Text: text,
	}
}

// Paste creates a paste step.
func Paste(text string) Step {
	return Step{
		Type: StepPaste,
		Text: text,
	}
}

// Annotate creates an annotation step.
func Annotate(text string) Step {
	return Step{
		Type:       StepAnnotate,
		Annotation: text,
	}
}

// Capture creates a frame capture step.
func Capture() Step {
	return Step{
		Type: StepCapture,
	}
}

// SignIn returns the steps that fill and submit the login card.
func SignIn(email, password string) []Step {
	return []Step{
		Type(email),
		Key("tab"),
		Type(password),
		KeyWithDesc("enter", "sign in"),
	}
}
