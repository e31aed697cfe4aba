package descriptor

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a descriptor file format.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var (
	// ErrUnsupportedFormat is returned for a file extension or format name
	// that is neither YAML nor TOML.
	ErrUnsupportedFormat = errors.New("unsupported descriptor format")

	// ErrInvalidDescriptor is returned when a descriptor fails validation.
	ErrInvalidDescriptor = errors.New("invalid descriptor")
)

// FormatFromPath derives the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q (use .yaml, .yml or .toml)", ErrUnsupportedFormat, filepath.Base(path))
	}
}

// Load reads, parses and validates the descriptor at path.
func Load(path string) (*Descriptor, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // user-provided CLI arg
	if err != nil {
		return nil, fmt.Errorf("reading descriptor %s: %w", path, err)
	}

	d, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// Parse decodes and validates data in the given format. Unknown YAML keys are
// rejected; unknown TOML keys are reported as well.
func Parse(data []byte, format Format) (*Descriptor, error) {
	var (
		d   Descriptor
		err error
	)

	switch format {
	case FormatYAML:
		err = decodeYAML(data, &d)
	case FormatTOML:
		err = decodeTOML(data, &d)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err != nil {
		return nil, err
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

func decodeYAML(data []byte, d *Descriptor) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(d); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty document", ErrInvalidDescriptor)
		}

		return fmt.Errorf("parsing YAML descriptor: %w", err)
	}

	return nil
}

func decodeTOML(data []byte, d *Descriptor) error {
	md, err := toml.Decode(string(data), d)
	if err != nil {
		return fmt.Errorf("parsing TOML descriptor: %w", err)
	}

	if undecoded := unknownTOMLKeys(md); len(undecoded) > 0 {
		return fmt.Errorf("parsing TOML descriptor: unknown keys %s", strings.Join(undecoded, ", "))
	}

	return nil
}

// unknownTOMLKeys lists keys that did not map to a field. Keys below a
// configuration table are consumed by Configuration and ignored here.
func unknownTOMLKeys(md toml.MetaData) []string {
	var keys []string

	for _, key := range md.Undecoded() {
		if containsConfiguration(key) {
			continue
		}

		keys = append(keys, key.String())
	}

	return keys
}

func containsConfiguration(key toml.Key) bool {
	for _, part := range key {
		if part == "configuration" {
			return true
		}
	}

	return false
}
