package dashboard

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
)

type stubRenderer struct {
	lastTemplate string
	lastPayload  map[string]any
	err          error
}

func (r *stubRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	r.lastTemplate = name
	if payload, ok := data.(map[string]any); ok {
		r.lastPayload = payload
	}
	if len(out) > 0 && out[0] != nil {
		out[0].Write([]byte("<html></html>"))
	}
	return "<html></html>", r.err
}

func TestControllerRenderPage(t *testing.T) {
	renderer := &stubRenderer{}
	controller := NewController(ControllerOptions{Renderer: renderer})

	var buf bytes.Buffer
	if err := controller.RenderPage(context.Background(), AppState{Page: PageTenants}, &buf); err != nil {
		t.Fatalf("RenderPage returned error: %v", err)
	}
	if renderer.lastTemplate != DefaultPageTemplate {
		t.Fatalf("expected %s template, got %s", DefaultPageTemplate, renderer.lastTemplate)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected rendered output")
	}
	page, ok := renderer.lastPayload["page"].(map[string]any)
	if !ok {
		t.Fatalf("expected page map in payload, got %#v", renderer.lastPayload)
	}
	if page["title"] != "Tenants" {
		t.Fatalf("expected Tenants title, got %v", page["title"])
	}
	widgets, _ := page["widgets"].([]any)
	if len(widgets) != 1 {
		t.Fatalf("expected one widget, got %d", len(widgets))
	}
	widget := widgets[0].(map[string]any)
	if widget["kind"] != "tenant_directory" || widget["id"] != "tenants.directory" {
		t.Fatalf("unexpected widget payload %#v", widget)
	}
	if renderer.lastPayload["brand"] != "HADIANT" {
		t.Fatalf("expected default brand, got %v", renderer.lastPayload["brand"])
	}
}

func TestControllerRenderPageRequiresRenderer(t *testing.T) {
	controller := NewController(ControllerOptions{})
	if err := controller.RenderPage(context.Background(), AppState{}, io.Discard); !errors.Is(err, errMissingRenderer) {
		t.Fatalf("expected missing renderer error, got %v", err)
	}
}

func TestControllerRenderPageWrapsRendererErrors(t *testing.T) {
	controller := NewController(ControllerOptions{Renderer: &stubRenderer{err: errors.New("bad template")}})
	err := controller.RenderPage(context.Background(), AppState{Page: PageDashboard}, io.Discard)
	if err == nil {
		t.Fatalf("expected renderer error")
	}
}

func TestControllerPagePayload(t *testing.T) {
	controller := NewController(ControllerOptions{})
	view, err := controller.PagePayload(context.Background(), AppState{Page: PageAnalytics})
	if err != nil {
		t.Fatalf("PagePayload returned error: %v", err)
	}
	if view.Tab != "chat" || len(view.Widgets) != 1 {
		t.Fatalf("expected chat tab with one widget, got %s / %d", view.Tab, len(view.Widgets))
	}
}
