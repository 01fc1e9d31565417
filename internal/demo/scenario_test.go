package demo

import (
	"testing"
	"time"

	"github.com/zhubert/murmur/internal/model"
	"github.com/zhubert/murmur/internal/state"
)

func TestScenarioValidate(t *testing.T) {
	tests := []struct {
		name      string
		scenario  *Scenario
		wantErr   bool
		errField  string
		wantWidth int
	}{
		{
			name: "valid scenario",
			scenario: &Scenario{
				Name:        "test",
				Description: "Test scenario",
				Width:       100,
				Height:      30,
				Setup:       DefaultSetup(),
			},
			wantErr:   false,
			wantWidth: 100,
		},
		{
			name: "missing name",
			scenario: &Scenario{
				Description: "Test scenario",
			},
			wantErr:  true,
			errField: "Name",
		},
		{
			name: "default width and height",
			scenario: &Scenario{
				Name:        "test",
				Description: "Test scenario",
			},
			wantErr:   false,
			wantWidth: 120, // Default
		},
		{
			name: "unknown variant",
			scenario: &Scenario{
				Name:  "test",
				Setup: &ScenarioSetup{Variant: "retro"},
			},
			wantErr:  true,
			errField: "Setup.Variant",
		},
		{
			name: "unknown delivery",
			scenario: &Scenario{
				Name:  "test",
				Setup: &ScenarioSetup{Variant: model.VariantAdmin, Delivery: "carrier-pigeon"},
			},
			wantErr:  true,
			errField: "Setup.Delivery",
		},
		{
			name: "empty key step",
			scenario: &Scenario{
				Name:  "test",
				Steps: []Step{{Type: StepKey}},
			},
			wantErr:  true,
			errField: "Steps",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scenario.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && err != nil {
				if ve, ok := err.(*ValidationError); ok {
					if ve.Field != tt.errField {
						t.Errorf("Validate() error field = %v, want %v", ve.Field, tt.errField)
					}
				} else {
					t.Errorf("Validate() error type = %T", err)
				}
			}
			if !tt.wantErr && tt.wantWidth > 0 {
				if tt.scenario.Width != tt.wantWidth {
					t.Errorf("Width = %v, want %v", tt.scenario.Width, tt.wantWidth)
				}
			}
		})
	}
}

func TestScenarioValidate_Defaults(t *testing.T) {
	s := &Scenario{Name: "test", Setup: &ScenarioSetup{Variant: model.VariantAdmin}}
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if s.Setup.Delivery != state.DeliveryDiscard {
		t.Errorf("Delivery = %q, want discard", s.Setup.Delivery)
	}
	if s.Height != 40 {
		t.Errorf("Height = %d, want 40", s.Height)
	}

	s = &Scenario{Name: "test"}
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if s.Setup.Variant != model.VariantSocial {
		t.Errorf("default setup variant = %q", s.Setup.Variant)
	}
}

func TestStepBuilders(t *testing.T) {
	tests := []struct {
		name string
		step Step
		want Step
	}{
		{"Wait", Wait(500 * time.Millisecond), Step{Type: StepWait, Duration: 500 * time.Millisecond}},
		{"Key", Key("enter"), Step{Type: StepKey, Key: "enter"}},
		{"KeyWithDesc", KeyWithDesc("s", "story"), Step{Type: StepKey, Key: "s", Description: "story"}},
		{"Type", Type("hello"), Step{Type: StepTypeText, Text: "hello"}},
		{"Paste", Paste("a\nb"), Step{Type: StepPaste, Text: "a\nb"}},
		{"Annotate", Annotate("note"), Step{Type: StepAnnotate, Annotation: "note"}},
		{"Capture", Capture(), Step{Type: StepCapture}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.step != tt.want {
				t.Errorf("%s = %+v, want %+v", tt.name, tt.step, tt.want)
			}
		})
	}
}

func TestSignInSteps(t *testing.T) {
	steps := SignIn("a@b.c", "pw")
	if len(steps) != 4 {
		t.Fatalf("len = %d, want 4", len(steps))
	}
	if steps[0].Text != "a@b.c" || steps[1].Key != "tab" || steps[2].Text != "pw" || steps[3].Key != "enter" {
		t.Errorf("steps = %+v", steps)
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "Name", Message: "required"}
	if got := err.Error(); got != "validation error: Name: required" {
		t.Errorf("Error() = %q", got)
	}
}
