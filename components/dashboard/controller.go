package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// DefaultPageTemplate is the template rendered for every page.
const DefaultPageTemplate = "dashboard"

var errMissingRenderer = errors.New("dashboard: renderer not configured")

// ControllerOptions wires a controller.
type ControllerOptions struct {
	Service  *Service
	Renderer Renderer
	Template string
	Brand    string
}

// Controller turns navigation state into rendered pages or JSON payloads.
type Controller struct {
	service  *Service
	renderer Renderer
	template string
	brand    string
}

// NewController wires the service and renderer into a controller.
func NewController(opts ControllerOptions) *Controller {
	if opts.Service == nil {
		opts.Service = NewService(Options{})
	}
	if opts.Template == "" {
		opts.Template = DefaultPageTemplate
	}
	if opts.Brand == "" {
		opts.Brand = "HADIANT"
	}
	return &Controller{
		service:  opts.Service,
		renderer: opts.Renderer,
		template: opts.Template,
		brand:    opts.Brand,
	}
}

// PagePayload resolves the page for state.
func (c *Controller) PagePayload(ctx context.Context, state AppState) (PageView, error) {
	return c.service.ResolvePage(ctx, state)
}

// RenderPage resolves the page for state and renders it into out.
func (c *Controller) RenderPage(ctx context.Context, state AppState, out io.Writer) error {
	if c.renderer == nil {
		return errMissingRenderer
	}
	view, err := c.service.ResolvePage(ctx, state)
	if err != nil {
		return err
	}
	data, err := templateContext(view)
	if err != nil {
		return err
	}
	data["brand"] = c.brand
	if _, err := c.renderer.Render(c.template, data, out); err != nil {
		return fmt.Errorf("dashboard: render %s: %w", view.Page, err)
	}
	return nil
}

// templateContext flattens the view into JSON-shaped maps so templates see
// the same snake_case keys as the JSON payload.
func templateContext(view PageView) (map[string]any, error) {
	raw, err := json.Marshal(view)
	if err != nil {
		return nil, fmt.Errorf("dashboard: encode page view: %w", err)
	}
	var page map[string]any
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("dashboard: decode page view: %w", err)
	}
	return map[string]any{"page": page}, nil
}
