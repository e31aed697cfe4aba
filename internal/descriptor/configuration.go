package descriptor

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/pomgen/internal/maputil"
	"github.com/hupe1980/pomgen/internal/maven"
)

// Configuration is a free-form plugin configuration tree. Scalars become
// leaf elements and mappings become nested elements. A sequence of mappings
// becomes a single nested element holding the entries of every item in
// order, which is how repeated elements such as <exclude> are expressed:
//
//	excludes:
//	  - exclude: "**/*Tests.java"
//	  - exclude: "**/Abstract*.java"
type Configuration []maven.Setting

// UnmarshalYAML decodes a configuration mapping, keeping document order.
func (c *Configuration) UnmarshalYAML(node *yaml.Node) error {
	settings, err := settingsFromYAML(node)
	if err != nil {
		return err
	}

	*c = settings

	return nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	return node
}

func settingsFromYAML(node *yaml.Node) ([]maven.Setting, error) {
	node = resolveAlias(node)

	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: configuration must be a mapping", node.Line)
	}

	settings := make([]maven.Setting, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		s, err := settingFromYAML(node.Content[i].Value, node.Content[i+1])
		if err != nil {
			return nil, err
		}

		settings = append(settings, s)
	}

	return settings, nil
}

func settingFromYAML(name string, node *yaml.Node) (maven.Setting, error) {
	node = resolveAlias(node)

	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return maven.Scalar(name, ""), nil
		}

		return maven.Scalar(name, node.Value), nil
	case yaml.MappingNode:
		children, err := settingsFromYAML(node)
		if err != nil {
			return maven.Setting{}, err
		}

		return maven.Nested(name, children...), nil
	case yaml.SequenceNode:
		var children []maven.Setting

		for _, item := range node.Content {
			item = resolveAlias(item)
			if item.Kind != yaml.MappingNode {
				return maven.Setting{}, fmt.Errorf("line %d: items of %q must be mappings such as '- %s: value'",
					item.Line, name, singular(name))
			}

			entries, err := settingsFromYAML(item)
			if err != nil {
				return maven.Setting{}, err
			}

			children = append(children, entries...)
		}

		return maven.Nested(name, children...), nil
	default:
		return maven.Setting{}, fmt.Errorf("line %d: unsupported value for %q", node.Line, name)
	}
}

// UnmarshalTOML decodes a configuration table. Keys of a table are sorted.
func (c *Configuration) UnmarshalTOML(data any) error {
	table, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("configuration must be a table, got %T", data)
	}

	settings, err := settingsFromTOML(table)
	if err != nil {
		return err
	}

	*c = settings

	return nil
}

func settingsFromTOML(table map[string]any) ([]maven.Setting, error) {
	settings := make([]maven.Setting, 0, len(table))

	for _, key := range maputil.SortedKeys(table) {
		s, err := settingFromTOML(key, table[key])
		if err != nil {
			return nil, err
		}

		settings = append(settings, s)
	}

	return settings, nil
}

func settingFromTOML(name string, value any) (maven.Setting, error) {
	switch v := value.(type) {
	case map[string]any:
		children, err := settingsFromTOML(v)
		if err != nil {
			return maven.Setting{}, err
		}

		return maven.Nested(name, children...), nil
	case []map[string]any:
		var children []maven.Setting

		for _, item := range v {
			entries, err := settingsFromTOML(item)
			if err != nil {
				return maven.Setting{}, err
			}

			children = append(children, entries...)
		}

		return maven.Nested(name, children...), nil
	case []any:
		var children []maven.Setting

		for _, item := range v {
			table, ok := item.(map[string]any)
			if !ok {
				return maven.Setting{}, fmt.Errorf("items of %q must be tables such as { %s = \"value\" }", name, singular(name))
			}

			entries, err := settingsFromTOML(table)
			if err != nil {
				return maven.Setting{}, err
			}

			children = append(children, entries...)
		}

		return maven.Nested(name, children...), nil
	case string:
		return maven.Scalar(name, v), nil
	default:
		return maven.Scalar(name, fmt.Sprint(v)), nil
	}
}

// singular guesses the element name of a list item for error messages.
func singular(name string) string {
	if len(name) > 1 && name[len(name)-1] == 's' {
		return name[:len(name)-1]
	}

	return "item"
}
