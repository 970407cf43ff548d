package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/flexcircuit/errors"
)

// key aliases: the long names and the single-letter keys of the layer diagram
// (F fixed, U trainable, M measure).
var specKeys = map[string]string{
	"fixed":     "fixed",
	"F":         "fixed",
	"trainable": "trainable",
	"U":         "trainable",
	"measure":   "measure",
	"M":         "measure",
	"encoding":  "encoding",
	"repeat":    "repeat",
}

// UnmarshalYAML decodes a mapping with either long or single-letter keys.
// Unknown and duplicate keys are rejected.
func (s *Spec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: configuration must be a mapping", node.Line)
	}

	var out Spec
	seen := make(map[string]string)
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		field, ok := specKeys[k.Value]
		if !ok {
			return fmt.Errorf("line %d: unknown key %q", k.Line, k.Value)
		}
		if prev, dup := seen[field]; dup {
			return fmt.Errorf("line %d: key %q duplicates %q", k.Line, k.Value, prev)
		}
		seen[field] = k.Value

		var err error
		switch field {
		case "fixed":
			err = v.Decode(&out.Fixed)
		case "trainable":
			err = v.Decode(&out.Trainable)
		case "measure":
			err = v.Decode(&out.Measure)
		case "encoding":
			err = v.Decode(&out.Encoding)
		case "repeat":
			err = v.Decode(&out.Repeat)
		}
		if err != nil {
			return fmt.Errorf("key %q: %w", k.Value, err)
		}
	}
	*s = out
	return nil
}

// Parse decodes a YAML or JSON configuration and applies Repeat to the
// trainable block. The result still needs Validate.
func Parse(data []byte) (Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return Spec{}, errors.Load("decode configuration", err)
	}
	if spec.Repeat < 0 {
		return Spec{}, errors.Load(fmt.Sprintf("repeat must be positive, got %d", spec.Repeat), nil)
	}
	if spec.Repeat > 1 {
		spec.Trainable = RepeatColumns(spec.Trainable, spec.Repeat)
	}
	return spec, nil
}

// Load reads and decodes a configuration file.
func Load(path string) (Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, errors.Load("read "+path, err)
	}
	return Parse(data)
}
