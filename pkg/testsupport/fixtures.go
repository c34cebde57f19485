// Package testsupport provides shared fixtures and golden-file helpers for
// the package test suites. Fixture forms are built in code rather than
// loaded from JSON because validators and choice entries are closed
// interface sets that do not round-trip through encoding/json.
package testsupport

import (
	"time"

	"github.com/goliatone/go-formwidgets/pkg/fields"
)

// RegistrationForm returns a form exercising most of the widget family:
// textual inputs with length rules, bounded numeric and temporal inputs,
// a grouped single select and a flat multiple select.
func RegistrationForm() fields.Form {
	eventMin := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	eventMax := time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)
	doorsOpen := time.Date(0, time.January, 1, 9, 0, 0, 0, time.UTC)
	doorsClose := time.Date(0, time.January, 1, 17, 30, 0, 0, time.UTC)

	return fields.Form{
		Name:   "registration",
		Action: "/register",
		Legend: "Event registration",
		Fields: []fields.Field{
			{
				Name:  "name",
				Label: "Full name",
				Validators: []fields.Validator{
					fields.Required{},
					fields.Length{Min: fields.IntPtr(2), Max: fields.IntPtr(64)},
				},
			},
			{
				Name:   "email",
				Label:  "Email",
				Format: "email",
				Validators: []fields.Validator{
					fields.Required{},
				},
			},
			{
				Name:  "guests",
				Label: "Guests",
				Data:  1,
				Validators: []fields.Validator{
					fields.NumberRange{Min: fields.Float64Ptr(0), Max: fields.Float64Ptr(6)},
				},
			},
			{
				Name:   "event_date",
				Label:  "Event date",
				Format: "date",
				Validators: []fields.Validator{
					fields.Required{},
					fields.DateRange{Min: &eventMin, Max: &eventMax},
				},
			},
			{
				Name:   "arrival",
				Label:  "Arrival time",
				Format: "time",
				Validators: []fields.Validator{
					fields.TimeRange{Min: &doorsOpen, Max: &doorsClose},
				},
			},
			{
				Name:  "track",
				Label: "Track",
				Data:  "backend",
				Choices: []fields.ChoiceEntry{
					fields.ChoiceGroup{Label: "Engineering", Choices: []fields.Choice{
						fields.NewChoice("backend", "Backend"),
						fields.NewChoice("frontend", "Frontend"),
					}},
					fields.ChoiceGroup{Label: "Other", Choices: []fields.Choice{
						fields.NewChoice("design", "Design"),
						fields.NewChoice("product", "Product"),
					}},
				},
			},
			{
				Name:  "topics",
				Label: "Topics",
				Data:  []string{"go"},
				Choices: []fields.ChoiceEntry{
					fields.NewChoice("go", "Go"),
					fields.NewChoice("python", "Python"),
					fields.NewChoice("rust", "Rust"),
				},
			},
		},
	}
}

// ContactForm returns a minimal form for tests that only need simple
// textual controls.
func ContactForm() fields.Form {
	return fields.Form{
		Name:   "contact",
		Action: "/contact",
		Fields: []fields.Field{
			{
				Name:  "subject",
				Label: "Subject",
				Validators: []fields.Validator{
					fields.Required{},
					fields.Length{Max: fields.IntPtr(120)},
				},
			},
			{
				Name:   "website",
				Label:  "Website",
				Format: "url",
			},
		},
	}
}
