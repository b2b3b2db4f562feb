package settings

// FieldKind hints how a field is edited.
type FieldKind string

const (
	KindText   FieldKind = "text"
	KindURL    FieldKind = "url"
	KindSecret FieldKind = "secret"
	KindSelect FieldKind = "select"
)

// Field is a single configurable value of an integration.
type Field struct {
	Key      string    `json:"key"`
	Label    string    `json:"label"`
	Kind     FieldKind `json:"kind"`
	Secret   bool      `json:"secret"`
	ReadOnly bool      `json:"read_only"`
	Options  []string  `json:"options,omitempty"`
	Default  string    `json:"-"`
}

// Integration groups the fields of one external service shown on the
// settings page. Values are placeholders only; nothing here talks to the
// services.
type Integration struct {
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	Icon     string  `json:"icon"`
	Expanded bool    `json:"expanded"`
	Fields   []Field `json:"fields"`
}

// GroqModels lists the selectable GROQ models.
var GroqModels = []string{"llama-3.3-70b-versatile", "mixtral-8x7b-32768"}

var integrations = []Integration{
	{
		Code:     "supabase",
		Name:     "Supabase",
		Icon:     "database",
		Expanded: true,
		Fields: []Field{
			{Key: FieldKey("supabase", "project_url"), Label: "Project URL", Kind: KindURL, ReadOnly: true, Default: "https://edcmmwadqnpwybflmgtx.supabase.co"},
			{Key: FieldKey("supabase", "api_key"), Label: "API Key", Kind: KindSecret, Secret: true},
		},
	},
	{
		Code: "groq",
		Name: "GROQ",
		Icon: "brain",
		Fields: []Field{
			{Key: FieldKey("groq", "api_key"), Label: "API Key", Kind: KindSecret, Secret: true},
			{Key: FieldKey("groq", "model"), Label: "Model", Kind: KindSelect, Options: GroqModels, Default: GroqModels[0]},
		},
	},
	{
		Code: "stability_ai",
		Name: "Stability AI",
		Icon: "palette",
		Fields: []Field{
			{Key: FieldKey("Stability AI", "api_key"), Label: "API Key", Kind: KindSecret, Secret: true},
		},
	},
	{
		Code: "waha",
		Name: "WAHA",
		Icon: "smartphone",
		Fields: []Field{
			{Key: FieldKey("waha", "instance_url"), Label: "Instance URL", Kind: KindURL, Default: "https://waha-xxx.sumopod.my.id"},
			{Key: FieldKey("waha", "api_key"), Label: "API Key", Kind: KindSecret, Secret: true},
		},
	},
}

// Integrations returns the integrations in display order.
func Integrations() []Integration {
	out := make([]Integration, len(integrations))
	for i, integration := range integrations {
		out[i] = integration
		out[i].Fields = make([]Field, len(integration.Fields))
		for j, field := range integration.Fields {
			field.Options = append([]string(nil), field.Options...)
			out[i].Fields[j] = field
		}
	}
	return out
}

// DefaultValues returns the placeholder values shown before any save.
func DefaultValues() map[string]string {
	values := map[string]string{}
	for _, integration := range integrations {
		for _, field := range integration.Fields {
			values[field.Key] = field.Default
		}
	}
	return values
}

func lookupField(key string) (Field, bool) {
	for _, integration := range integrations {
		for _, field := range integration.Fields {
			if field.Key == key {
				return field, true
			}
		}
	}
	return Field{}, false
}

// FieldView is a field prepared for display.
type FieldView struct {
	Field
	Mode  DisplayMode `json:"mode"`
	Value string      `json:"value"`
}

// IntegrationView is an integration prepared for display.
type IntegrationView struct {
	Code     string      `json:"code"`
	Name     string      `json:"name"`
	Icon     string      `json:"icon"`
	Expanded bool        `json:"expanded"`
	Fields   []FieldView `json:"fields"`
}

// Render applies the display config to the given values. Masked fields always
// show MaskPlaceholder.
func Render(values map[string]string, config DisplayConfig) []IntegrationView {
	out := make([]IntegrationView, 0, len(integrations))
	for _, integration := range Integrations() {
		view := IntegrationView{
			Code:     integration.Code,
			Name:     integration.Name,
			Icon:     integration.Icon,
			Expanded: integration.Expanded,
			Fields:   make([]FieldView, 0, len(integration.Fields)),
		}
		for _, field := range integration.Fields {
			mode := config.Mode(field)
			value := values[field.Key]
			if mode == DisplayMasked {
				value = MaskPlaceholder
			}
			view.Fields = append(view.Fields, FieldView{Field: field, Mode: mode, Value: value})
		}
		out = append(out, view)
	}
	return out
}
