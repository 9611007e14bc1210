package processdescriptor

import (
	"fmt"

	"github.com/core-tools/hsu-procdesc-go/pkg/errors"
)

// ProcessDescriptor describes how to launch one process. It is immutable:
// accessors return copies of slices and maps.
type ProcessDescriptor struct {
	name            string
	executablePath  string
	arguments       []string
	interpreterPath string
	executionMode   ExecutionMode
	watchEnabled    bool
	environment     map[string]string
}

func newProcessDescriptor(app AppConfig) ProcessDescriptor {
	descriptor := ProcessDescriptor{
		name:            app.Name,
		executablePath:  app.Script,
		interpreterPath: app.Interpreter,
		executionMode:   app.ExecMode,
		watchEnabled:    app.Watch,
	}

	if len(app.Args) > 0 {
		descriptor.arguments = make([]string, len(app.Args))
		copy(descriptor.arguments, app.Args)
	}

	if len(app.Env) > 0 {
		descriptor.environment = make(map[string]string, len(app.Env))
		for k, v := range app.Env {
			descriptor.environment[k] = v
		}
	}

	return descriptor
}

func (d ProcessDescriptor) Name() string {
	return d.name
}

func (d ProcessDescriptor) ExecutablePath() string {
	return d.executablePath
}

func (d ProcessDescriptor) Arguments() []string {
	if d.arguments == nil {
		return nil
	}
	arguments := make([]string, len(d.arguments))
	copy(arguments, d.arguments)
	return arguments
}

// InterpreterPath is empty when the executable is run directly
func (d ProcessDescriptor) InterpreterPath() string {
	return d.interpreterPath
}

func (d ProcessDescriptor) ExecutionMode() ExecutionMode {
	return d.executionMode
}

func (d ProcessDescriptor) WatchEnabled() bool {
	return d.watchEnabled
}

func (d ProcessDescriptor) Environment() map[string]string {
	if d.environment == nil {
		return nil
	}
	environment := make(map[string]string, len(d.environment))
	for k, v := range d.environment {
		environment[k] = v
	}
	return environment
}

// AppConfig converts the descriptor back to its canonical source form
func (d ProcessDescriptor) AppConfig() AppConfig {
	return AppConfig{
		Name:        d.name,
		Script:      d.executablePath,
		Args:        ArgumentList(d.Arguments()),
		Interpreter: d.interpreterPath,
		ExecMode:    d.executionMode,
		Watch:       d.watchEnabled,
		Env:         d.Environment(),
	}
}

func (d ProcessDescriptor) String() string {
	return fmt.Sprintf("%s (%s, mode: %s, watch: %t)", d.name, d.executablePath, d.executionMode, d.watchEnabled)
}

// DescriptorList is the ordered, validated result of loading a configuration source
type DescriptorList struct {
	descriptors []ProcessDescriptor
	index       map[string]int
}

// NewDescriptorList applies defaults to a copy of config, validates it and
// builds the list. Nothing is returned unless every entry is valid.
func NewDescriptorList(config *EcosystemConfig, opts ...LoadOption) (*DescriptorList, error) {
	if config == nil {
		return nil, errors.NewValidationError("configuration cannot be nil", nil)
	}

	options := newLoadOptions(opts)

	working := &EcosystemConfig{}
	if config.Apps != nil {
		working.Apps = make([]AppConfig, len(config.Apps))
		copy(working.Apps, config.Apps)
	}

	setConfigDefaults(working, options.logger)

	if err := Validate(working); err != nil {
		return nil, err
	}

	list := &DescriptorList{
		descriptors: make([]ProcessDescriptor, 0, len(working.Apps)),
		index:       make(map[string]int, len(working.Apps)),
	}
	for i, app := range working.Apps {
		list.descriptors = append(list.descriptors, newProcessDescriptor(app))
		list.index[app.Name] = i
	}

	options.logger.Debugf("Built process descriptor list, descriptors: %d", len(list.descriptors))
	return list, nil
}

func (l *DescriptorList) Len() int {
	return len(l.descriptors)
}

// Descriptors returns the descriptors in source order
func (l *DescriptorList) Descriptors() []ProcessDescriptor {
	descriptors := make([]ProcessDescriptor, len(l.descriptors))
	copy(descriptors, l.descriptors)
	return descriptors
}

func (l *DescriptorList) Get(name string) (ProcessDescriptor, bool) {
	i, ok := l.index[name]
	if !ok {
		return ProcessDescriptor{}, false
	}
	return l.descriptors[i], true
}

func (l *DescriptorList) Names() []string {
	names := make([]string, len(l.descriptors))
	for i, d := range l.descriptors {
		names[i] = d.name
	}
	return names
}
