// Package scenarios contains built-in demo scenarios for murmur.
package scenarios

import (
	"time"

	"github.com/zhubert/murmur/internal/demo"
	"github.com/zhubert/murmur/internal/model"
	"github.com/zhubert/murmur/internal/state"
)

// Tour walks the social variant:
// - signing in with made-up credentials
// - viewing a story
// - opening a thread, picking an emoji and sending a message
// - filtering the chat list
var Tour = &demo.Scenario{
	Name:        "tour",
	Description: "Sign in, read a story, chat and search",
	Width:       120,
	Height:      40,
	Setup: &demo.ScenarioSetup{
		Variant:  model.VariantSocial,
		Delivery: state.DeliveryLocalEcho,
	},
	Steps: concat(
		[]demo.Step{
			demo.Annotate("Any email and password will do"),
			demo.Wait(1 * time.Second),
		},
		demo.SignIn("kate@example.com", "hunter2"),
		[]demo.Step{
			demo.Wait(1 * time.Second),

			// Stories ring at the top of the chat list
			demo.KeyWithDesc("s", "view story"),
			demo.Wait(800 * time.Millisecond),

			// Open the first thread
			demo.KeyWithDesc("enter", "open chat"),
			demo.Wait(1 * time.Second),

			demo.Type("Looks great "),
			demo.KeyWithDesc("ctrl+e", "emoji picker"),
			demo.Key("right"),
			demo.Wait(800 * time.Millisecond),
			demo.Key("enter"),
			demo.Wait(500 * time.Millisecond),
			demo.KeyWithDesc("enter", "send"),
			demo.Wait(1 * time.Second),

			// Calls are not wired up yet
			demo.KeyWithDesc("ctrl+p", "voice call"),
			demo.Wait(1 * time.Second),

			// Back to the list and filter it
			demo.KeyWithDesc("esc", "back"),
			demo.Key("/"),
			demo.Type("des"),
			demo.Wait(1 * time.Second),
			demo.Key("esc"),

			// Final pause
			demo.Wait(2 * time.Second),
		},
	),
}

// Admin signs in as the administrator and manages the member list.
var Admin = &demo.Scenario{
	Name:        "admin",
	Description: "Sign in as admin, browse the panel, edit the profile",
	Width:       120,
	Height:      40,
	Setup: &demo.ScenarioSetup{
		Variant:  model.VariantAdmin,
		Delivery: state.DeliveryDiscard,
	},
	Steps: concat(
		demo.SignIn("himo@admin.com", "12345678"),
		[]demo.Step{
			demo.Wait(1 * time.Second),

			demo.KeyWithDesc("a", "admin panel"),
			demo.Wait(1 * time.Second),
			demo.Key("tab"),
			demo.Annotate("Totals across the directory"),
			demo.Wait(1 * time.Second),
			demo.Key("esc"),

			demo.KeyWithDesc("p", "edit profile"),
			demo.Wait(1 * time.Second),
			demo.Key("esc"),

			demo.KeyWithDesc("?", "help"),
			demo.Wait(1 * time.Second),
			demo.Key("esc"),

			// Final pause
			demo.Wait(2 * time.Second),
		},
	),
}

func concat(parts ...[]demo.Step) []demo.Step {
	var out []demo.Step
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// All returns all built-in scenarios.
func All() []*demo.Scenario {
	return []*demo.Scenario{
		Tour,
		Admin,
	}
}

// Get returns a scenario by name, or nil if not found.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}
