package dashboard

import (
	"errors"
	"strings"
	"testing"
)

func TestJSONSchemaValidatorRejectsInvalidPayload(t *testing.T) {
	validator := NewJSONSchemaValidator()
	def, _ := NewRegistry().Definition(WidgetChatAnalytics)
	if err := validator.Validate(def, map[string]any{"days": 30}); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
	err := validator.Validate(def, map[string]any{"days": 3})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for days below minimum, got %v", err)
	}
	if err := validator.Validate(def, map[string]any{"range": "7d"}); err == nil {
		t.Fatalf("expected unknown config keys to be rejected")
	}
	if !strings.Contains(err.Error(), "/days") {
		t.Fatalf("expected failing location in %q", err)
	}
}

func TestJSONSchemaValidatorCachesCompiledSchemas(t *testing.T) {
	validator := NewJSONSchemaValidator()
	def := WidgetDefinition{
		Code:   "hadiant.widget.cache",
		Schema: map[string]any{"type": "object"},
	}
	if err := validator.Validate(def, nil); err != nil {
		t.Fatalf("unexpected error validating config: %v", err)
	}
	if n := validator.cached(); n != 1 {
		t.Fatalf("expected schema cache to contain 1 entry, got %d", n)
	}
	if err := validator.Validate(def, map[string]any{}); err != nil {
		t.Fatalf("unexpected error on cached validation: %v", err)
	}
	if n := validator.cached(); n != 1 {
		t.Fatalf("expected schema cache to remain 1 entry, got %d", n)
	}
}

func TestJSONSchemaValidatorSkipsSchemaless(t *testing.T) {
	validator := NewJSONSchemaValidator()
	if err := validator.Validate(WidgetDefinition{Code: "free"}, map[string]any{"any": true}); err != nil {
		t.Fatalf("expected schemaless definition to accept config, got %v", err)
	}
}
