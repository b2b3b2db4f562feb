package dashboard

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// RegistryHook lets packages add widgets to every new registry from init().
type RegistryHook func(reg *Registry) error

var hooks struct {
	sync.Mutex
	list []RegistryHook
}

// RegisterWidgetHook queues h to run against registries created afterwards.
func RegisterWidgetHook(h RegistryHook) {
	hooks.Lock()
	defer hooks.Unlock()
	hooks.list = append(hooks.list, h)
}

// WidgetManifest pairs a definition with its provider for bulk registration.
type WidgetManifest struct {
	Definition WidgetDefinition
	Provider   Provider
}

type registryEntry struct {
	def      WidgetDefinition
	provider Provider
}

// Registry holds widget definitions and the providers that feed them.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]registryEntry
	hookErr error
}

// NewRegistry builds a registry with the built-in widgets backed by demo data.
func NewRegistry() *Registry {
	return NewRegistryWith(ProviderDeps{})
}

// NewRegistryWith builds a registry whose built-in providers read from deps,
// then runs the registered hooks. Hook failures are reported by Err.
func NewRegistryWith(deps ProviderDeps) *Registry {
	reg := &Registry{entries: map[string]registryEntry{}}
	providers := DefaultProviders(deps)
	builtins := DefaultWidgetDefinitions()
	manifest := make([]WidgetManifest, len(builtins))
	for i, def := range builtins {
		manifest[i] = WidgetManifest{Definition: def, Provider: providers[def.Code]}
	}
	if err := reg.LoadManifest(manifest); err != nil {
		panic(fmt.Sprintf("dashboard: built-in widgets: %v", err))
	}
	reg.hookErr = reg.applyHooks()
	return reg
}

// Err returns the errors raised by registry hooks, if any.
func (r *Registry) Err() error {
	return r.hookErr
}

func (r *Registry) applyHooks() error {
	hooks.Lock()
	pending := append([]RegistryHook(nil), hooks.list...)
	hooks.Unlock()
	var errs []error
	for _, hook := range pending {
		errs = append(errs, hook(r))
	}
	return errors.Join(errs...)
}

// LoadManifest registers every item and reports all failures together.
func (r *Registry) LoadManifest(items []WidgetManifest) error {
	var errs []error
	for _, item := range items {
		if err := r.RegisterDefinition(item.Definition); err != nil {
			errs = append(errs, err)
			continue
		}
		if item.Provider == nil {
			continue
		}
		errs = append(errs, r.RegisterProvider(item.Definition.Code, item.Provider))
	}
	return errors.Join(errs...)
}

// RegisterDefinition stores or replaces widget metadata, keeping any provider.
func (r *Registry) RegisterDefinition(def WidgetDefinition) error {
	if def.Code == "" {
		return errMissingWidgetCode
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	entry := r.entries[def.Code]
	entry.def = def
	r.entries[def.Code] = entry
	return nil
}

// RegisterProvider attaches provider to an already registered definition.
func (r *Registry) RegisterProvider(code string, provider Provider) error {
	switch {
	case code == "":
		return errMissingWidgetCode
	case provider == nil:
		return fmt.Errorf("dashboard: nil provider for %s", code)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[code]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownWidget, code)
	}
	entry.provider = provider
	r.entries[code] = entry
	return nil
}

// Definition looks up a widget definition by code.
func (r *Registry) Definition(code string) (WidgetDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[code]
	return entry.def, ok
}

// Provider looks up the provider of a widget; ok is false until one is attached.
func (r *Registry) Provider(code string) (Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry := r.entries[code]
	return entry.provider, entry.provider != nil
}

// Definitions lists every definition ordered by code.
func (r *Registry) Definitions() []WidgetDefinition {
	r.mu.RLock()
	defs := make([]WidgetDefinition, 0, len(r.entries))
	for _, entry := range r.entries {
		defs = append(defs, entry.def)
	}
	r.mu.RUnlock()
	sort.Slice(defs, func(i, j int) bool { return defs[i].Code < defs[j].Code })
	return defs
}
