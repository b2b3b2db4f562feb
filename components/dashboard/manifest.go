package dashboard

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	layoutVersionV1 = "1"
	// LayoutVersion exposes the current layout manifest version for tooling.
	LayoutVersion = layoutVersionV1
)

//go:embed layouts/default.yaml
var defaultLayout []byte

// LayoutManifest maps every page to the widgets it shows.
type LayoutManifest struct {
	Version string       `json:"version" yaml:"version"`
	Pages   []PageLayout `json:"pages" yaml:"pages"`
	Source  string       `json:"-" yaml:"-"`
}

// PageLayout lists the widgets of one page in display order.
type PageLayout struct {
	Page    Page           `json:"page" yaml:"page"`
	Widgets []LayoutWidget `json:"widgets" yaml:"widgets"`
}

// LayoutWidget places a widget definition on a page, optionally on a tab.
type LayoutWidget struct {
	ID     string         `json:"id" yaml:"id"`
	Code   string         `json:"code" yaml:"code"`
	Tab    string         `json:"tab,omitempty" yaml:"tab,omitempty"`
	Config map[string]any `json:"config,omitempty" yaml:"config,omitempty"`
}

// LoadLayout reads the manifest at path, or the built-in layout when path is empty.
func LoadLayout(path string) (*LayoutManifest, error) {
	if path == "" {
		return DefaultLayout()
	}
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("dashboard: open layout %s: %w", path, err)
	}
	defer f.Close()
	doc, err := DecodeLayout(f)
	if err != nil {
		return nil, fmt.Errorf("dashboard: decode layout %s: %w", path, err)
	}
	doc.Source = path
	return doc, nil
}

// DefaultLayout decodes the embedded layout.
func DefaultLayout() (*LayoutManifest, error) {
	doc, err := DecodeLayout(bytes.NewReader(defaultLayout))
	if err != nil {
		return nil, err
	}
	doc.Source = "embedded:layouts/default.yaml"
	return doc, nil
}

// DecodeLayout reads a layout manifest from any reader. Unknown keys are rejected.
func DecodeLayout(r io.Reader) (*LayoutManifest, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	var doc LayoutManifest
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("dashboard: layout is empty")
		}
		return nil, fmt.Errorf("dashboard: parse layout: %w", err)
	}
	if doc.Version == "" {
		doc.Version = layoutVersionV1
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks the manifest structure: version, known pages and tabs, and
// unique non-empty widget ids per page.
func (doc *LayoutManifest) Validate() error {
	if doc.Version != layoutVersionV1 {
		return fmt.Errorf("dashboard: unsupported layout version %q", doc.Version)
	}
	var errs []error
	seenPages := make(map[Page]struct{}, len(doc.Pages))
	for _, layout := range doc.Pages {
		if !layout.Page.Valid() {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownPage, layout.Page))
			continue
		}
		if _, dup := seenPages[layout.Page]; dup {
			errs = append(errs, fmt.Errorf("dashboard: layout lists page %s twice", layout.Page))
		}
		seenPages[layout.Page] = struct{}{}
		seen := make(map[string]struct{}, len(layout.Widgets))
		for idx, widget := range layout.Widgets {
			if widget.Code == "" {
				errs = append(errs, fmt.Errorf("dashboard: page %s widget at index %d is missing code", layout.Page, idx))
			}
			if widget.ID == "" {
				errs = append(errs, fmt.Errorf("dashboard: page %s widget at index %d is missing id", layout.Page, idx))
				continue
			}
			if _, dup := seen[widget.ID]; dup {
				errs = append(errs, fmt.Errorf("dashboard: page %s duplicates widget id %s", layout.Page, widget.ID))
			}
			seen[widget.ID] = struct{}{}
			if !tabAllowed(layout.Page, widget.Tab) {
				errs = append(errs, fmt.Errorf("dashboard: page %s has no tab %q (widget %s)", layout.Page, widget.Tab, widget.ID))
			}
		}
	}
	return errors.Join(errs...)
}

// Check verifies every widget code is registered and its config passes the
// definition schema.
func (doc *LayoutManifest) Check(reg ProviderRegistry, validator ConfigValidator) error {
	var errs []error
	for _, layout := range doc.Pages {
		for _, widget := range layout.Widgets {
			def, ok := reg.Definition(widget.Code)
			if !ok {
				errs = append(errs, fmt.Errorf("%w: %s on page %s", ErrUnknownWidget, widget.Code, layout.Page))
				continue
			}
			if validator == nil {
				continue
			}
			if err := validator.Validate(def, widget.Config); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// Instances returns the widgets of page visible on tab. Widgets without a
// tab appear on every tab.
func (doc *LayoutManifest) Instances(page Page, tab string) []WidgetInstance {
	for _, layout := range doc.Pages {
		if layout.Page != page {
			continue
		}
		out := make([]WidgetInstance, 0, len(layout.Widgets))
		for _, widget := range layout.Widgets {
			if widget.Tab != "" && widget.Tab != tab {
				continue
			}
			out = append(out, WidgetInstance{
				ID:            string(page) + "." + widget.ID,
				DefinitionID:  widget.Code,
				Page:          page,
				Tab:           widget.Tab,
				Configuration: copyConfig(widget.Config),
			})
		}
		return out
	}
	return nil
}

func tabAllowed(page Page, tab string) bool {
	if tab == "" {
		return true
	}
	for _, candidate := range pages[page].tabs {
		if candidate.Code == tab {
			return true
		}
	}
	return false
}

func copyConfig(config map[string]any) map[string]any {
	if config == nil {
		return nil
	}
	out := make(map[string]any, len(config))
	for k, v := range config {
		out[k] = v
	}
	return out
}
