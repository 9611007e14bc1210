package processdescriptor

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/core-tools/hsu-procdesc-go/pkg/errors"
	"github.com/core-tools/hsu-procdesc-go/pkg/logging"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

type loadOptions struct {
	strictFields bool
	logger       logging.Logger
}

// LoadOption configures Load and NewDescriptorList
type LoadOption func(*loadOptions)

// WithStrictFields rejects keys the schema does not know
func WithStrictFields() LoadOption {
	return func(o *loadOptions) {
		o.strictFields = true
	}
}

// WithLogger logs defaulting decisions at debug level
func WithLogger(logger logging.Logger) LoadOption {
	return func(o *loadOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newLoadOptions(opts []LoadOption) loadOptions {
	options := loadOptions{logger: logging.NewNopLogger()}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

// Load parses a YAML (or JSON) configuration source into a validated descriptor list
func Load(r io.Reader, opts ...LoadOption) (*DescriptorList, error) {
	options := newLoadOptions(opts)

	config, err := decode(r, options.strictFields)
	if err != nil {
		return nil, err
	}

	return NewDescriptorList(config, opts...)
}

func LoadBytes(data []byte, opts ...LoadOption) (*DescriptorList, error) {
	return Load(bytes.NewReader(data), opts...)
}

// LoadFile reads and loads the configuration file at filename
func LoadFile(filename string, opts ...LoadOption) (*DescriptorList, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.NewIOError("failed to read configuration file", err).WithContext("filename", filename)
	}

	list, err := LoadBytes(data, opts...)
	if err != nil {
		if de, ok := err.(*errors.DomainError); ok {
			return nil, de.WithContext("filename", filename)
		}
		return nil, err
	}

	return list, nil
}

func decode(r io.Reader, strictFields bool) (*EcosystemConfig, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(strictFields)

	var document ecosystemDocument
	if err := decoder.Decode(&document); err != nil {
		if err == io.EOF {
			return nil, errors.NewParseError("configuration source is empty", nil)
		}
		return nil, errors.NewParseError("failed to parse configuration", err)
	}

	var extra yaml.Node
	if err := decoder.Decode(&extra); err != io.EOF {
		if err != nil {
			return nil, errors.NewParseError("failed to parse configuration", err)
		}
		return nil, errors.NewParseError("configuration source must contain a single document", nil).
			WithContext("line", strconv.Itoa(extra.Line))
	}

	if indices := document.nullEntries(); len(indices) > 0 {
		var issues error
		for _, i := range indices {
			issues = multierr.Append(issues, errors.NewValidationError(
				fmt.Sprintf("entry at index %d is empty", i),
				nil,
			).WithContext("app_index", strconv.Itoa(i)))
		}
		return nil, errors.NewValidationError("invalid process descriptor list", issues).
			WithContext("issues", strconv.Itoa(len(indices)))
	}

	return document.toConfig(), nil
}

// setConfigDefaults normalizes execution modes in place
func setConfigDefaults(config *EcosystemConfig, logger logging.Logger) {
	for i := range config.Apps {
		app := &config.Apps[i]

		if app.ExecMode == "" {
			app.ExecMode = DefaultExecutionMode
			logger.Debugf("Defaulted execution mode, name: %s, exec_mode: %s", app.Name, app.ExecMode)
			continue
		}

		if canonical, ok := ParseExecutionMode(app.ExecMode); ok && canonical != app.ExecMode {
			logger.Debugf("Normalized execution mode, name: %s, from: %s, to: %s", app.Name, app.ExecMode, canonical)
			app.ExecMode = canonical
		}
	}
}
