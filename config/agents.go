package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/automoto/isoward/behavior"
)

type agentFile struct {
	Default string               `yaml:"default"`
	Agents  map[string]yaml.Node `yaml:"agents"`
}

// ParseAgentSpecs decodes a YAML agent file on top of base. Fields an entry
// leaves out keep the value base already has for that type. The returned
// map is a fresh copy; base is never modified.
func ParseAgentSpecs(data []byte, base EnemyConfig) (EnemyConfig, error) {
	var file agentFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return base, fmt.Errorf("config: parse agent specs: %w", err)
	}

	out := EnemyConfig{
		Types:       make(map[string]AgentTypeConfig, len(base.Types)+len(file.Agents)),
		DefaultType: base.DefaultType,
	}
	for name, t := range base.Types {
		out.Types[name] = t
	}

	names := make([]string, 0, len(file.Agents))
	for name := range file.Agents {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []error
	for _, name := range names {
		node := file.Agents[name]
		t, ok := out.Types[name]
		if !ok {
			t = AgentTypeConfig{Name: name, TintColor: White}
		}
		if err := node.Decode(&t); err != nil {
			errs = append(errs, fmt.Errorf("agent %q: %w", name, err))
			continue
		}
		if t.Name == "" {
			t.Name = name
		}
		if err := validateAgent(t); err != nil {
			errs = append(errs, fmt.Errorf("agent %q: %w", name, err))
			continue
		}
		out.Types[name] = t
	}

	if file.Default != "" {
		if _, ok := out.Types[file.Default]; !ok {
			errs = append(errs, fmt.Errorf("default agent %q is not defined", file.Default))
		} else {
			out.DefaultType = file.Default
		}
	}

	if len(errs) > 0 {
		return base, fmt.Errorf("config: agent specs: %w", errors.Join(errs...))
	}
	return out, nil
}

// LoadAgentSpecs reads a YAML agent file from fsys and replaces Enemy with
// the merged result. Enemy is left untouched on error.
func LoadAgentSpecs(fsys fs.FS, path string) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("config: read agent specs: %w", err)
	}
	merged, err := ParseAgentSpecs(data, Enemy)
	if err != nil {
		return err
	}
	Enemy = merged
	return nil
}

func validateAgent(t AgentTypeConfig) error {
	var errs []error
	if _, err := behavior.ParseMovementMode(t.Movement); err != nil {
		errs = append(errs, err)
	}
	if _, err := behavior.ParseDetectionMode(t.Detection); err != nil {
		errs = append(errs, err)
	}
	if t.AlertRadius < 0 {
		errs = append(errs, errors.New("alertRadius must not be negative"))
	}
	if t.CanEscape && t.EscapeRadius <= 0 {
		errs = append(errs, errors.New("canEscape needs a positive escapeRadius"))
	}
	if t.Speed < 0 {
		errs = append(errs, errors.New("speed must not be negative"))
	}
	return errors.Join(errs...)
}
