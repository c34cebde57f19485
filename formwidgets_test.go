package formwidgets_test

import (
	"strings"
	"testing"

	formwidgets "github.com/goliatone/go-formwidgets"
	"github.com/goliatone/go-formwidgets/pkg/testsupport"
)

func TestRenderHTMLDefaultPipeline(t *testing.T) {
	output, err := formwidgets.RenderHTML(testsupport.Context(), testsupport.ContactForm(), formwidgets.RenderOptions{})
	if err != nil {
		t.Fatalf("render html: %v", err)
	}

	html := string(output)
	if !strings.Contains(html, `<form name="contact" method="post" action="/contact"`) {
		t.Fatalf("expected form tag, got:\n%s", html)
	}
	if !strings.Contains(html, `type="url"`) {
		t.Fatalf("expected url input from format hint, got:\n%s", html)
	}
	if !strings.Contains(html, `maxlength="120"`) {
		t.Fatalf("expected derived maxlength, got:\n%s", html)
	}
}

func TestRenderHTMLReadOnly(t *testing.T) {
	output, err := formwidgets.RenderHTML(testsupport.Context(), testsupport.ContactForm(), formwidgets.RenderOptions{ReadOnly: true})
	if err != nil {
		t.Fatalf("render html: %v", err)
	}

	if !strings.Contains(string(output), " readonly") {
		t.Fatalf("expected readonly controls, got:\n%s", output)
	}
}

func TestRenderOperationHTML(t *testing.T) {
	const document = `{
  "openapi": "3.0.3",
  "info": {"title": "Events", "version": "1.0.0"},
  "paths": {
    "/register": {
      "post": {
        "operationId": "registerAttendee",
        "summary": "Register an attendee",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["email"],
                "properties": {
                  "email": {"type": "string", "format": "email"},
                  "guests": {"type": "integer", "minimum": 0, "maximum": 6}
                }
              }
            }
          }
        },
        "responses": {
          "201": {"description": "created"}
        }
      }
    }
  }
}`

	output, err := formwidgets.RenderOperationHTML(testsupport.Context(), []byte(document), "registerAttendee", formwidgets.RenderOptions{})
	if err != nil {
		t.Fatalf("render operation html: %v", err)
	}

	html := string(output)
	if !strings.Contains(html, `<form name="registerAttendee" method="post" action="/register"`) {
		t.Fatalf("expected operation-bound form tag, got:\n%s", html)
	}
	if !strings.Contains(html, `required type="email"`) {
		t.Fatalf("expected required email input, got:\n%s", html)
	}
	if !strings.Contains(html, `max="6" min="0"`) {
		t.Fatalf("expected numeric bounds, got:\n%s", html)
	}
}
