package processdescriptor

import (
	"fmt"

	"github.com/google/shlex"
	"gopkg.in/yaml.v3"
)

// EcosystemConfig represents the top-level configuration source structure
type EcosystemConfig struct {
	Apps []AppConfig `yaml:"apps"`
}

// AppConfig represents a single process entry as written in the configuration source
type AppConfig struct {
	Name        string            `yaml:"name"`
	Script      string            `yaml:"script"`                // Executable to invoke
	Args        ArgumentList      `yaml:"args,omitempty"`        // List, or a single shell-quoted string
	Interpreter string            `yaml:"interpreter,omitempty"` // Runs Script when set
	ExecMode    ExecutionMode     `yaml:"exec_mode,omitempty"`
	Watch       bool              `yaml:"watch"`
	Env         map[string]string `yaml:"env,omitempty"`
}

// ExecutionMode represents the spawn strategy the supervisor applies
type ExecutionMode string

const (
	ExecutionModeFork    ExecutionMode = "fork"    // Single process
	ExecutionModeCluster ExecutionMode = "cluster" // Clustered instances

	DefaultExecutionMode = ExecutionModeFork
)

var executionModeAliases = map[ExecutionMode]ExecutionMode{
	ExecutionModeFork:    ExecutionModeFork,
	ExecutionModeCluster: ExecutionModeCluster,
	"fork_mode":          ExecutionModeFork,
	"cluster_mode":       ExecutionModeCluster,
}

// ParseExecutionMode returns the canonical mode for a recognized name or alias
func ParseExecutionMode(mode ExecutionMode) (ExecutionMode, bool) {
	canonical, ok := executionModeAliases[mode]
	return canonical, ok
}

// ArgumentList holds process arguments. In YAML it may be written as a
// sequence of strings or as one string, which is split using shell word rules.
type ArgumentList []string

func (a *ArgumentList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.ShortTag() == "!!null" {
			*a = nil
			return nil
		}
		words, err := shlex.Split(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: cannot split args %q: %w", value.Line, value.Value, err)
		}
		*a = words
		return nil

	case yaml.SequenceNode:
		// Null items are rejected, never dropped
		words := make([]string, 0, len(value.Content))
		for i, item := range value.Content {
			if item.Kind == yaml.ScalarNode && item.ShortTag() == "!!null" {
				return fmt.Errorf("line %d: args item at index %d is null", item.Line, i)
			}
			var word string
			if err := item.Decode(&word); err != nil {
				return err
			}
			words = append(words, word)
		}
		*a = words
		return nil

	default:
		return fmt.Errorf("line %d: args must be a string or a list of strings", value.Line)
	}
}

func (a ArgumentList) MarshalYAML() (interface{}, error) {
	return []string(a), nil
}

// ecosystemDocument is the decoding target. The outer pointer tells an
// absent apps key apart from an empty list; element pointers keep null
// entries, which a struct element would silently drop.
type ecosystemDocument struct {
	Apps *[]*AppConfig `yaml:"apps"`
}

// nullEntries returns the indices of apps entries written as null
func (d *ecosystemDocument) nullEntries() []int {
	var indices []int
	if d.Apps == nil {
		return nil
	}
	for i, app := range *d.Apps {
		if app == nil {
			indices = append(indices, i)
		}
	}
	return indices
}

func (d *ecosystemDocument) toConfig() *EcosystemConfig {
	config := &EcosystemConfig{}
	if d.Apps != nil {
		config.Apps = make([]AppConfig, 0, len(*d.Apps))
		for _, app := range *d.Apps {
			config.Apps = append(config.Apps, *app)
		}
	}
	return config
}
