package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const (
	valuesSchemaName  = "hadiant.settings.values.json"
	profileSchemaName = "hadiant.settings.profile.json"
)

var (
	schemaOnce     sync.Once
	valuesSchema   *jsonschema.Schema
	profileSchema  *jsonschema.Schema
	errSchemaSetup error
)

// ValuesSchema describes a settings save payload.
func ValuesSchema() map[string]any {
	props := map[string]any{}
	for _, integration := range integrations {
		for _, field := range integration.Fields {
			prop := map[string]any{"type": "string"}
			switch field.Kind {
			case KindURL:
				prop["format"] = "uri"
			case KindSelect:
				prop["enum"] = field.Options
			}
			props[field.Key] = prop
		}
	}
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}
}

// ProfileSchema describes the admin profile payload.
func ProfileSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"full_name", "email"},
		"properties": map[string]any{
			"full_name": map[string]any{"type": "string", "minLength": 1, "maxLength": 120},
			"email":     map[string]any{"type": "string", "format": "email"},
		},
		"additionalProperties": false,
	}
}

func compileSchemas() error {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.AssertFormat = true
		if err := addSchema(compiler, valuesSchemaName, ValuesSchema()); err != nil {
			errSchemaSetup = err
			return
		}
		if err := addSchema(compiler, profileSchemaName, ProfileSchema()); err != nil {
			errSchemaSetup = err
			return
		}
		if valuesSchema, errSchemaSetup = compiler.Compile(valuesSchemaName); errSchemaSetup != nil {
			return
		}
		profileSchema, errSchemaSetup = compiler.Compile(profileSchemaName)
	})
	return errSchemaSetup
}

func addSchema(compiler *jsonschema.Compiler, name string, schema map[string]any) error {
	data, err := json.Marshal(schema)
	if err != nil {
		return fmt.Errorf("settings: marshal schema %s: %w", name, err)
	}
	if err := compiler.AddResource(name, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("settings: load schema %s: %w", name, err)
	}
	return nil
}

// ValidateValues checks a settings payload against ValuesSchema.
func ValidateValues(values map[string]string) error {
	if err := compileSchemas(); err != nil {
		return err
	}
	return validate(valuesSchema, values, "settings")
}

// ValidateProfile checks a profile against ProfileSchema.
func ValidateProfile(profile Profile) error {
	if err := compileSchemas(); err != nil {
		return err
	}
	return validate(profileSchema, profile, "profile")
}

func validate(schema *jsonschema.Schema, value any, label string) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("settings: marshal %s: %w", label, err)
	}
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("settings: normalize %s: %w", label, err)
	}
	if err := schema.Validate(payload); err != nil {
		return fmt.Errorf("%w: %s failed validation: %v", ErrInvalid, label, err)
	}
	return nil
}
