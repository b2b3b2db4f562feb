package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ettle/strcase"
	"gopkg.in/yaml.v3"

	"github.com/hadiant/go-admin-dashboard/components/dashboard"
)

type layoutCmd struct {
	Check     layoutCheckCmd     `cmd:"" help:"Validate a layout manifest against the widget registry."`
	AddWidget layoutAddWidgetCmd `cmd:"" name:"add-widget" help:"Place a registered widget on a page of a layout manifest."`
}

type layoutCheckCmd struct {
	Path string `arg:"" optional:"" type:"path" help:"Layout manifest to check (defaults to --layout or the built-in layout)."`
}

func (cmd *layoutCheckCmd) Run(g *Globals) error {
	path := cmd.Path
	if path == "" {
		path = g.Layout
	}
	layout, err := dashboard.LoadLayout(path)
	if err != nil {
		return err
	}
	if err := layout.Check(dashboard.NewRegistry(), dashboard.NewJSONSchemaValidator()); err != nil {
		return fmt.Errorf("layout %s: %w", layout.Source, err)
	}
	_, err = fmt.Fprintf(g.Stdout, "✓ %s: %d pages, %d widgets\n", layout.Source, len(layout.Pages), countWidgets(layout))
	return err
}

type layoutAddWidgetCmd struct {
	ManifestPath string            `name:"manifest" required:"" type:"path" help:"Layout manifest to update; created from the built-in layout when missing."`
	Page         string            `required:"" help:"Page to place the widget on (dashboard, tenants, analytics, settings)."`
	Code         string            `required:"" help:"Registered widget code (e.g. hadiant.widget.recent_tenants)."`
	ID           string            `help:"Widget id on the page (defaults to the kebab-cased last segment of the code)."`
	Tab          string            `help:"Tab the widget belongs to."`
	Config       map[string]string `help:"Configuration values as key=value."`
	Overwrite    bool              `help:"Replace an existing widget with the same id."`
}

func (cmd *layoutAddWidgetCmd) Run(g *Globals) error {
	page, ok := dashboard.ParsePage(cmd.Page)
	if !ok {
		return fmt.Errorf("layout: %w: %s", dashboard.ErrUnknownPage, cmd.Page)
	}
	layout, err := loadOrInitLayout(cmd.ManifestPath)
	if err != nil {
		return err
	}
	widget := dashboard.LayoutWidget{
		ID:     cmd.ID,
		Code:   cmd.Code,
		Tab:    cmd.Tab,
		Config: parseConfig(cmd.Config),
	}
	if widget.ID == "" {
		widget.ID = deriveWidgetID(cmd.Code)
	}
	if err := placeWidget(layout, page, widget, cmd.Overwrite); err != nil {
		return err
	}
	if err := errors.Join(layout.Validate(), layout.Check(dashboard.NewRegistry(), dashboard.NewJSONSchemaValidator())); err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	if err := writeLayout(cmd.ManifestPath, layout); err != nil {
		return err
	}
	_, err = fmt.Fprintf(g.Stdout, "✓ Added %s as %s.%s to %s\n", cmd.Code, page, widget.ID, cmd.ManifestPath)
	return err
}

func placeWidget(layout *dashboard.LayoutManifest, page dashboard.Page, widget dashboard.LayoutWidget, overwrite bool) error {
	for i := range layout.Pages {
		if layout.Pages[i].Page != page {
			continue
		}
		for j, existing := range layout.Pages[i].Widgets {
			if existing.ID != widget.ID {
				continue
			}
			if !overwrite {
				return fmt.Errorf("layout: page %s already has widget %s (use --overwrite to replace)", page, widget.ID)
			}
			layout.Pages[i].Widgets[j] = widget
			return nil
		}
		layout.Pages[i].Widgets = append(layout.Pages[i].Widgets, widget)
		return nil
	}
	layout.Pages = append(layout.Pages, dashboard.PageLayout{Page: page, Widgets: []dashboard.LayoutWidget{widget}})
	return nil
}

func loadOrInitLayout(path string) (*dashboard.LayoutManifest, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return dashboard.DefaultLayout()
		}
		return nil, fmt.Errorf("layout: stat manifest: %w", err)
	}
	return dashboard.LoadLayout(path)
}

func writeLayout(path string, layout *dashboard.LayoutManifest) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("layout: mkdir %s: %w", filepath.Dir(path), err)
	}
	file, err := os.Create(path) //nolint:gosec
	if err != nil {
		return fmt.Errorf("layout: create manifest %s: %w", path, err)
	}
	defer file.Close()
	return encodeLayout(file, layout)
}

func encodeLayout(w io.Writer, layout *dashboard.LayoutManifest) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(layout); err != nil {
		return fmt.Errorf("layout: write manifest: %w", err)
	}
	return encoder.Close()
}

// deriveWidgetID turns hadiant.widget.recent_tenants into recent-tenants.
func deriveWidgetID(code string) string {
	slug := code
	if idx := strings.LastIndex(code, "."); idx >= 0 {
		slug = code[idx+1:]
	}
	return strcase.ToKebab(strings.TrimSpace(slug))
}

// parseConfig keeps numeric values numeric so schema checks on integers pass.
func parseConfig(raw map[string]string) map[string]any {
	if len(raw) == 0 {
		return nil
	}
	out := make(map[string]any, len(raw))
	for key, value := range raw {
		var decoded any
		if err := yaml.Unmarshal([]byte(value), &decoded); err == nil && decoded != nil {
			out[key] = decoded
			continue
		}
		out[key] = value
	}
	return out
}

func countWidgets(layout *dashboard.LayoutManifest) int {
	n := 0
	for _, page := range layout.Pages {
		n += len(page.Widgets)
	}
	return n
}
