package maven

// SettingKind distinguishes the two shapes a plugin configuration setting
// can take.
type SettingKind int

// Setting kinds.
const (
	SettingScalar SettingKind = iota
	SettingNested
)

// Setting is a node of a plugin configuration tree: either a scalar with text
// content or a nested, ordered list of child settings. Plugin configuration
// has no fixed schema, so trees may be arbitrarily deep.
type Setting struct {
	Name string

	kind     SettingKind
	value    string
	children []Setting
}

// Scalar returns a setting with text content.
func Scalar(name, value string) Setting {
	return Setting{Name: name, kind: SettingScalar, value: value}
}

// Nested returns a setting wrapping children.
func Nested(name string, children ...Setting) Setting {
	return Setting{Name: name, kind: SettingNested, children: children}
}

// Kind reports the shape of the setting.
func (s Setting) Kind() SettingKind {
	return s.kind
}

// Value returns the text content of a scalar setting.
func (s Setting) Value() string {
	return s.value
}

// Children returns the child settings of a nested setting.
func (s Setting) Children() []Setting {
	return s.children
}

// ConfigurationBuilder stages a configuration tree.
type ConfigurationBuilder struct {
	entries []*configEntry
}

type configEntry struct {
	name   string
	value  string
	nested *ConfigurationBuilder
}

// Add appends a scalar setting. Repeated names produce repeated elements,
// which is how list-valued plugin parameters are expressed.
func (c *ConfigurationBuilder) Add(name, value string) *ConfigurationBuilder {
	c.entries = append(c.entries, &configEntry{name: name, value: value})
	return c
}

// Configure customises the first nested setting called name, creating it
// when absent.
func (c *ConfigurationBuilder) Configure(name string, fn func(*ConfigurationBuilder)) *ConfigurationBuilder {
	for _, e := range c.entries {
		if e.name == name && e.nested != nil {
			fn(e.nested)
			return c
		}
	}

	return c.AddConfigure(name, fn)
}

// AddConfigure always appends a new nested setting called name.
func (c *ConfigurationBuilder) AddConfigure(name string, fn func(*ConfigurationBuilder)) *ConfigurationBuilder {
	nested := &ConfigurationBuilder{}
	fn(nested)
	c.entries = append(c.entries, &configEntry{name: name, nested: nested})

	return c
}

// IsEmpty reports whether no setting has been added.
func (c *ConfigurationBuilder) IsEmpty() bool {
	return c == nil || len(c.entries) == 0
}

// Build freezes the staged tree.
func (c *ConfigurationBuilder) Build() []Setting {
	if c.IsEmpty() {
		return nil
	}

	settings := make([]Setting, 0, len(c.entries))

	for _, e := range c.entries {
		if e.nested != nil {
			settings = append(settings, Nested(e.name, e.nested.Build()...))
		} else {
			settings = append(settings, Scalar(e.name, e.value))
		}
	}

	return settings
}
