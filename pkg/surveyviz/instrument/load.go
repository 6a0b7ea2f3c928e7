package instrument

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes an instrument definition, fills empty sections from
// the default, and validates the result.
func ParseYAML(data []byte) (Instrument, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Instrument{}, fmt.Errorf("instrument: definition payload is empty")
	}
	var inst Instrument
	if err := yaml.Unmarshal(data, &inst); err != nil {
		return Instrument{}, fmt.Errorf("instrument: decode definition: %w", err)
	}
	inst = inst.Normalized()
	if err := inst.Validate(); err != nil {
		return Instrument{}, err
	}
	return inst, nil
}

// LoadFile reads a YAML instrument definition from disk.
func LoadFile(path string) (Instrument, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Instrument{}, fmt.Errorf("instrument: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return Instrument{}, fmt.Errorf("instrument: %s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Instrument{}, fmt.Errorf("instrument: read %s: %w", path, err)
	}
	inst, err := ParseYAML(data)
	if err != nil {
		return Instrument{}, fmt.Errorf("instrument: %s: %w", path, err)
	}
	return inst, nil
}
