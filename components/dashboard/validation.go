package dashboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ConfigValidator validates widget configuration payloads against their schema.
type ConfigValidator interface {
	Validate(def WidgetDefinition, config map[string]any) error
}

// JSONSchemaValidator checks layout widget configuration against the schema
// of its definition. Compiled schemas are cached per widget code.
type JSONSchemaValidator struct {
	schemas sync.Map
}

// NewJSONSchemaValidator builds a validator backed by jsonschema v5.
func NewJSONSchemaValidator() *JSONSchemaValidator {
	return &JSONSchemaValidator{}
}

// Validate reports ErrInvalidConfig with the first failing location when
// config breaks the schema. Definitions without a schema accept anything.
func (v *JSONSchemaValidator) Validate(def WidgetDefinition, config map[string]any) error {
	if len(def.Schema) == 0 {
		return nil
	}
	schema, err := v.compile(def)
	if err != nil {
		return err
	}
	doc, err := jsonDocument(config)
	if err != nil {
		return fmt.Errorf("dashboard: config for %s is not JSON: %w", def.Code, err)
	}
	err = schema.Validate(doc)
	if err == nil {
		return nil
	}
	var verr *jsonschema.ValidationError
	if errors.As(err, &verr) {
		return fmt.Errorf("%w: %s: %s", ErrInvalidConfig, def.Code, firstCause(verr))
	}
	return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, def.Code, err)
}

// cached reports how many schemas have been compiled.
func (v *JSONSchemaValidator) cached() int {
	n := 0
	v.schemas.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func (v *JSONSchemaValidator) compile(def WidgetDefinition) (*jsonschema.Schema, error) {
	if schema, ok := v.schemas.Load(def.Code); ok {
		return schema.(*jsonschema.Schema), nil
	}
	raw, err := json.Marshal(def.Schema)
	if err != nil {
		return nil, fmt.Errorf("dashboard: marshal schema %s: %w", def.Code, err)
	}
	schema, err := jsonschema.CompileString(def.Code+".schema.json", string(raw))
	if err != nil {
		return nil, fmt.Errorf("dashboard: compile schema %s: %w", def.Code, err)
	}
	stored, _ := v.schemas.LoadOrStore(def.Code, schema)
	return stored.(*jsonschema.Schema), nil
}

// jsonDocument turns YAML-decoded config (ints, nested maps) into the plain
// JSON values the schema validator expects.
func jsonDocument(config map[string]any) (any, error) {
	if len(config) == 0 {
		return map[string]any{}, nil
	}
	raw, err := json.Marshal(config)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func firstCause(verr *jsonschema.ValidationError) string {
	for len(verr.Causes) > 0 {
		verr = verr.Causes[0]
	}
	if verr.InstanceLocation == "" {
		return verr.Message
	}
	return verr.InstanceLocation + ": " + verr.Message
}
