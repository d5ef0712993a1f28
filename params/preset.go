package params

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// LoadPreset applies a preset file to the panel. Files ending in .toml are
// read as TOML, anything else as JSON.
func (p *Panel) LoadPreset(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read preset file: %w", err)
	}
	if isTOML(path) {
		return p.ApplyTOMLPreset(data)
	}
	return p.ApplyPreset(data)
}

// ApplyPreset applies a JSON object of parameter values. Values may be JSON
// strings or numbers; numbers are stored as their literal text.
func (p *Panel) ApplyPreset(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid preset: %w", err)
	}
	values := make(map[string]string, len(raw))
	for name, msg := range raw {
		var value string
		if err := json.Unmarshal(msg, &value); err != nil {
			value = strings.TrimSpace(string(msg))
		}
		values[name] = value
	}
	return p.apply(values)
}

// ApplyTOMLPreset applies a flat TOML table of parameter values.
func (p *Panel) ApplyTOMLPreset(data []byte) error {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid preset: %w", err)
	}
	values := make(map[string]string, len(raw))
	for name, v := range raw {
		switch v := v.(type) {
		case string:
			values[name] = v
		case int64:
			values[name] = strconv.FormatInt(v, 10)
		case float64:
			values[name] = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			return fmt.Errorf("invalid preset: %s has unsupported type %T", name, v)
		}
	}
	return p.apply(values)
}

func (p *Panel) apply(values map[string]string) error {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := p.Set(name, values[name]); err != nil {
			return fmt.Errorf("invalid preset: %w", err)
		}
	}
	return nil
}

// SavePreset writes the panel's current values, as TOML when path ends in
// .toml and as indented JSON otherwise.
func (p *Panel) SavePreset(path string) error {
	var data []byte
	var err error
	if isTOML(path) {
		data, err = toml.Marshal(p.Values())
	} else {
		data, err = json.MarshalIndent(p.Values(), "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("could not write preset file: %w", err)
	}
	return nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
