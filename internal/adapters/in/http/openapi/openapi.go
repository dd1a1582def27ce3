// Package openapi embeds the OpenAPI document of the warehouse HTTP API.
package openapi

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var document []byte

var registerOnce sync.Once

// spec serves a rendered document to swag.
type spec string

func (s spec) ReadDoc() string {
	return string(s)
}

// Raw returns the document as shipped.
func Raw() []byte {
	return document
}

// Load parses and validates the document.
func Load(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

// Register publishes doc as JSON under swag.Name, the instance the swagger
// UI handler reads doc.json from. Only the first call registers; swag
// panics on a second registration of the same name.
func Register(doc *openapi3.T) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("render openapi document: %w", err)
	}

	registerOnce.Do(func() {
		swag.Register(swag.Name, spec(raw))
	})
	return nil
}
