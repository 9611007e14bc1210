package processdescriptor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/core-tools/hsu-procdesc-go/pkg/errors"

	"go.uber.org/multierr"
)

// Validate checks a decoded configuration. Every problem found is reported;
// the returned ValidationError carries them individually (see errors.Issues).
func Validate(config *EcosystemConfig) error {
	if config == nil {
		return errors.NewValidationError("configuration cannot be nil", nil)
	}

	if config.Apps == nil {
		return errors.NewValidationError("apps is required", nil)
	}

	var issues error
	seenNames := make(map[string]int)

	for i, app := range config.Apps {
		index := strconv.Itoa(i)

		if strings.TrimSpace(app.Name) == "" {
			issues = multierr.Append(issues, errors.NewValidationError(
				fmt.Sprintf("name is required for app at index %d", i),
				nil,
			).WithContext("app_index", index))
		} else if prevIndex, exists := seenNames[app.Name]; exists {
			issues = multierr.Append(issues, errors.NewValidationError(
				fmt.Sprintf("duplicate name '%s' found at indices %d and %d", app.Name, prevIndex, i),
				nil,
			).WithContext("name", app.Name))
		} else {
			seenNames[app.Name] = i
		}

		if strings.TrimSpace(app.Script) == "" {
			issues = multierr.Append(issues, errors.NewValidationError(
				fmt.Sprintf("script is required for app at index %d", i),
				nil,
			).WithContext("app_index", index).WithContext("name", app.Name))
		}

		if app.Interpreter != "" && strings.TrimSpace(app.Interpreter) == "" {
			issues = multierr.Append(issues, errors.NewValidationError(
				fmt.Sprintf("interpreter is blank for app at index %d", i),
				nil,
			).WithContext("app_index", index).WithContext("name", app.Name))
		}

		if err := validateExecutionMode(app.ExecMode); err != nil {
			issues = multierr.Append(issues, err.WithContext("app_index", index).WithContext("name", app.Name))
		}

		for key := range app.Env {
			if err := validateEnvironmentKey(key); err != nil {
				issues = multierr.Append(issues, err.WithContext("app_index", index).WithContext("name", app.Name))
			}
		}
	}

	if issues != nil {
		return errors.NewValidationError("invalid process descriptor list", issues).
			WithContext("issues", strconv.Itoa(len(multierr.Errors(issues))))
	}

	return nil
}

func validateExecutionMode(mode ExecutionMode) *errors.DomainError {
	if mode == "" {
		return nil // Will be defaulted
	}

	if _, ok := ParseExecutionMode(mode); ok {
		return nil
	}

	return errors.NewValidationError(
		fmt.Sprintf("unsupported execution mode: %s", mode),
		nil,
	).WithContext("supported_modes", "fork, cluster")
}

func validateEnvironmentKey(key string) *errors.DomainError {
	if key == "" {
		return errors.NewValidationError("environment variable name cannot be empty", nil)
	}
	if strings.ContainsAny(key, "=\x00") {
		return errors.NewValidationError(
			fmt.Sprintf("invalid environment variable name: %q", key),
			nil,
		)
	}
	return nil
}
