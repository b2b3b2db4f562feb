package settings

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ettle/strcase"
	"gopkg.in/yaml.v3"
)

// DisplayMode controls how a settings field value is shown.
type DisplayMode string

const (
	DisplayPlaintext DisplayMode = "plaintext"
	DisplayMasked    DisplayMode = "masked"
)

// MaskPlaceholder is shown instead of a masked value.
const MaskPlaceholder = "****"

// ParseDisplayMode resolves a display mode case-insensitively.
func ParseDisplayMode(value string) (DisplayMode, bool) {
	switch DisplayMode(strings.ToLower(strings.TrimSpace(value))) {
	case DisplayPlaintext:
		return DisplayPlaintext, true
	case DisplayMasked:
		return DisplayMasked, true
	default:
		return "", false
	}
}

// DisplayConfig maps scoped field keys (integration.field) to display modes.
type DisplayConfig map[string]DisplayMode

// Mode returns the configured mode for a field. Secret fields without an
// explicit entry are masked, everything else is plaintext.
func (c DisplayConfig) Mode(field Field) DisplayMode {
	if mode, ok := c[field.Key]; ok {
		return mode
	}
	if field.Secret {
		return DisplayMasked
	}
	return DisplayPlaintext
}

// Merge returns a copy of c with overrides applied on top.
func (c DisplayConfig) Merge(overrides DisplayConfig) DisplayConfig {
	out := make(DisplayConfig, len(c)+len(overrides))
	for key, mode := range c {
		out[key] = mode
	}
	for key, mode := range overrides {
		out[key] = mode
	}
	return out
}

// DefaultDisplayConfig masks every secret field and shows the rest.
func DefaultDisplayConfig() DisplayConfig {
	cfg := DisplayConfig{}
	for _, integration := range Integrations() {
		for _, field := range integration.Fields {
			if field.Secret {
				cfg[field.Key] = DisplayMasked
			} else {
				cfg[field.Key] = DisplayPlaintext
			}
		}
	}
	return cfg
}

// FieldKey builds the scoped key for an integration field. Both parts are
// normalised to snake_case so "Stability AI"/"APIKey" becomes
// "stability_ai.api_key".
func FieldKey(integration, field string) string {
	return normalizeSegment(integration) + "." + normalizeSegment(field)
}

// NormalizeKey normalises a scoped key segment by segment.
func NormalizeKey(key string) string {
	parts := strings.Split(strings.TrimSpace(key), ".")
	for i, part := range parts {
		parts[i] = normalizeSegment(part)
	}
	return strings.Join(parts, ".")
}

func normalizeSegment(value string) string {
	return strcase.ToSnake(strings.TrimSpace(value))
}

type displayDocument struct {
	Fields map[string]string `yaml:"fields"`
}

// LoadDisplayConfig reads display overrides from a YAML file.
func LoadDisplayConfig(path string) (DisplayConfig, error) {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("settings: open display config %s: %w", path, err)
	}
	defer f.Close()
	cfg, err := DecodeDisplayConfig(f)
	if err != nil {
		return nil, fmt.Errorf("settings: decode display config %s: %w", path, err)
	}
	return cfg, nil
}

// DecodeDisplayConfig parses display overrides. Keys must name a known field.
func DecodeDisplayConfig(r io.Reader) (DisplayConfig, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	var doc displayDocument
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return DisplayConfig{}, nil
		}
		return nil, fmt.Errorf("settings: parse display config: %w", err)
	}
	cfg := make(DisplayConfig, len(doc.Fields))
	var errs error
	for rawKey, rawMode := range doc.Fields {
		key := NormalizeKey(rawKey)
		if _, ok := lookupField(key); !ok {
			errs = errors.Join(errs, fmt.Errorf("settings: unknown field %q", rawKey))
			continue
		}
		mode, ok := ParseDisplayMode(rawMode)
		if !ok {
			errs = errors.Join(errs, fmt.Errorf("settings: field %q has unknown display mode %q", rawKey, rawMode))
			continue
		}
		cfg[key] = mode
	}
	if errs != nil {
		return nil, errs
	}
	return cfg, nil
}
