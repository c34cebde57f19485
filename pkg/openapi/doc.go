// Package openapi imports forms from OpenAPI 3 documents. Request body
// schemas convert into field models: property constraints become
// validators, enums become choices and formats become widget hints, so a
// schema-described operation renders without hand-writing the form.
package openapi
