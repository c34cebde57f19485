package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	formwidgets "github.com/goliatone/go-formwidgets"
	"github.com/goliatone/go-formwidgets/components/timezones"
	"github.com/goliatone/go-formwidgets/pkg/fields"
	"github.com/goliatone/go-formwidgets/pkg/formprompt"
	"github.com/goliatone/go-formwidgets/pkg/formrender"
	"github.com/goliatone/go-formwidgets/pkg/openapi"
	"github.com/goliatone/go-formwidgets/pkg/testsupport"
	"github.com/goliatone/go-formwidgets/pkg/uiconfig"
)

var fixtures = map[string]func() fields.Form{
	"registration": testsupport.RegistrationForm,
	"contact":      testsupport.ContactForm,
	"settings":     settingsForm,
}

func main() {
	fixture := flag.String("fixture", "", "fixture form to render (registration, contact, settings)")
	schema := flag.String("schema", "", "OpenAPI document path; renders -operation instead of a fixture")
	operation := flag.String("operation", "", "operation ID to render from -schema")
	output := flag.String("output", "", "output file (stdout if empty)")
	readonly := flag.Bool("readonly", false, "render every control read-only")
	configDir := flag.String("uiconfig", "", "directory of UI config overlays")
	interactive := flag.Bool("prompt", false, "fill the form interactively and emit the submission payload instead of HTML")
	promptFormat := flag.String("prompt-format", "json", "payload format for -prompt (json, form, pretty)")
	flag.Parse()

	ctx := context.Background()

	var options []formwidgets.Option
	if *configDir != "" {
		store, err := uiconfig.LoadFS(os.DirFS(*configDir))
		if err != nil {
			log.Fatalf("Failed to load UI config: %v", err)
		}
		options = append(options, formrender.WithUIConfig(store))
	}

	opts := formwidgets.RenderOptions{ReadOnly: *readonly}

	var form fields.Form
	switch {
	case *schema != "":
		if *operation == "" {
			log.Fatalf("-operation is required with -schema")
		}
		document, err := os.ReadFile(*schema)
		if err != nil {
			log.Fatalf("Failed to read schema: %v", err)
		}
		form, err = openapi.OperationForm(ctx, document, *operation)
		if err != nil {
			log.Fatalf("Failed to build form: %v", err)
		}
	default:
		name := *fixture
		if name == "" {
			picked, err := pickFixture()
			if err != nil {
				log.Fatalf("Failed to pick fixture: %v", err)
			}
			name = picked
		}
		builder, ok := fixtures[name]
		if !ok {
			log.Fatalf("unknown fixture %q (have %v)", name, fixtureNames())
		}
		form = builder()
	}

	var (
		rendered []byte
		err      error
	)
	if *interactive {
		renderer := formprompt.New(formprompt.WithOutputFormat(formprompt.OutputFormat(*promptFormat)))
		rendered, err = renderer.Render(ctx, form, formprompt.RenderOptions{})
	} else {
		rendered, err = formwidgets.RenderHTML(ctx, form, opts, options...)
	}
	if err != nil {
		log.Fatalf("Failed to render form: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, rendered, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Form written to %s\n", *output)
	} else {
		fmt.Println(string(rendered))
	}
}

func settingsForm() fields.Form {
	tz, err := timezones.Field(
		timezones.WithDefault("Europe/Berlin"),
		timezones.WithRequired(true),
	)
	if err != nil {
		log.Fatalf("Failed to build timezone field: %v", err)
	}

	return fields.Form{
		Name:   "settings",
		Action: "/settings",
		Legend: "Account settings",
		Fields: []fields.Field{
			{
				Name:  "display_name",
				Label: "Display name",
				Validators: []fields.Validator{
					fields.Required{},
					fields.Length{Max: fields.IntPtr(60)},
				},
			},
			tz,
		},
	}
}

func fixtureNames() []string {
	names := make([]string, 0, len(fixtures))
	for name := range fixtures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func pickFixture() (string, error) {
	if !stdinIsTerminal() {
		return "", errors.New("no -fixture given and stdin is not a terminal")
	}
	var out string
	prompt := &survey.Select{
		Message: "Pick a fixture form:",
		Options: fixtureNames(),
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", errors.New("aborted")
		}
		return "", err
	}
	return out, nil
}

func stdinIsTerminal() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
