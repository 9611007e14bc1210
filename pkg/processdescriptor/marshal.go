package processdescriptor

import (
	"bytes"

	"github.com/core-tools/hsu-procdesc-go/pkg/errors"

	"gopkg.in/yaml.v3"
)

// Config returns the canonical configuration for the list: arguments as
// sequences and execution modes spelled out.
func (l *DescriptorList) Config() *EcosystemConfig {
	config := &EcosystemConfig{Apps: make([]AppConfig, 0, len(l.descriptors))}
	for _, d := range l.descriptors {
		config.Apps = append(config.Apps, d.AppConfig())
	}
	return config
}

// Marshal serializes the list as YAML that Load reads back to an equal list
func Marshal(list *DescriptorList) ([]byte, error) {
	if list == nil {
		return nil, errors.NewValidationError("descriptor list cannot be nil", nil)
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(list.Config()); err != nil {
		return nil, errors.NewInternalError("failed to encode descriptor list", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, errors.NewInternalError("failed to encode descriptor list", err)
	}

	return buf.Bytes(), nil
}
