package openapi

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formwidgets/pkg/fields"
)

// requestMediaTypes lists the body content types considered form sources,
// in preference order.
var requestMediaTypes = []string{
	"application/json",
	"application/x-www-form-urlencoded",
	"multipart/form-data",
}

// OperationForm loads an OpenAPI document from raw bytes, locates the
// operation by id and converts its request body schema into a form. The
// form name is the operation id, the action its path, the method the
// lowercased HTTP verb; the operation summary becomes the legend when the
// schema has no title.
func OperationForm(ctx context.Context, raw []byte, operationID string) (fields.Form, error) {
	if len(raw) == 0 {
		return fields.Form{}, errors.New("openapi: document payload is empty")
	}
	id := strings.TrimSpace(operationID)
	if id == "" {
		return fields.Form{}, errors.New("openapi: operation id is required")
	}

	loader := &openapi3.Loader{Context: ctx, IsExternalRefsAllowed: false}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return fields.Form{}, fmt.Errorf("openapi: load document: %w", err)
	}
	if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return fields.Form{}, fmt.Errorf("openapi: validate document: %w", err)
	}

	method, path, operation, ok := findOperation(spec, id)
	if !ok {
		return fields.Form{}, fmt.Errorf("openapi: operation %q not found", id)
	}

	schema := requestSchema(operation)
	if schema == nil {
		return fields.Form{}, fmt.Errorf("openapi: operation %q has no request body schema", id)
	}

	form, err := FormFromSchema(id, schema)
	if err != nil {
		return fields.Form{}, err
	}
	form.Action = path
	form.Method = strings.ToLower(method)
	if form.Legend == "" {
		form.Legend = operation.Summary
	}
	return form, nil
}

func findOperation(spec *openapi3.T, id string) (string, string, *openapi3.Operation, bool) {
	if spec == nil || spec.Paths == nil {
		return "", "", nil, false
	}
	for path, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		candidates := []struct {
			method string
			op     *openapi3.Operation
		}{
			{"GET", item.Get}, {"PUT", item.Put}, {"POST", item.Post},
			{"DELETE", item.Delete}, {"PATCH", item.Patch}, {"HEAD", item.Head},
			{"OPTIONS", item.Options}, {"TRACE", item.Trace},
		}
		for _, candidate := range candidates {
			if candidate.op != nil && candidate.op.OperationID == id {
				return candidate.method, path, candidate.op, true
			}
		}
	}
	return "", "", nil, false
}

func requestSchema(operation *openapi3.Operation) *openapi3.Schema {
	if operation == nil || operation.RequestBody == nil || operation.RequestBody.Value == nil {
		return nil
	}
	content := operation.RequestBody.Value.Content
	for _, mediaType := range requestMediaTypes {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}
