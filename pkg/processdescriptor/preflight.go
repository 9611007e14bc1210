package processdescriptor

import (
	"fmt"
	"os"
	"strconv"

	"github.com/core-tools/hsu-procdesc-go/pkg/errors"

	"go.uber.org/multierr"
)

// StatFunc matches os.Stat
type StatFunc func(name string) (os.FileInfo, error)

// LookupEnvFunc matches os.LookupEnv
type LookupEnvFunc func(key string) (string, bool)

// CheckPaths verifies that every executable and interpreter path exists and
// is not a directory. All missing paths are reported in one ValidationError.
// A nil stat uses os.Stat.
func CheckPaths(list *DescriptorList, stat StatFunc) error {
	if list == nil {
		return errors.NewValidationError("descriptor list cannot be nil", nil)
	}
	if stat == nil {
		stat = os.Stat
	}

	checked := make(map[string]error)
	check := func(path string) error {
		if err, done := checked[path]; done {
			return err
		}
		var err error
		info, statErr := stat(path)
		switch {
		case statErr != nil:
			err = statErr
		case info.IsDir():
			err = fmt.Errorf("%s is a directory", path)
		}
		checked[path] = err
		return err
	}

	var issues error
	for _, d := range list.descriptors {
		if err := check(d.executablePath); err != nil {
			issues = multierr.Append(issues, errors.NewValidationError(
				fmt.Sprintf("executable not usable for '%s'", d.name),
				err,
			).WithContext("name", d.name).WithContext("path", d.executablePath))
		}

		if d.interpreterPath == "" {
			continue
		}
		if err := check(d.interpreterPath); err != nil {
			issues = multierr.Append(issues, errors.NewValidationError(
				fmt.Sprintf("interpreter not usable for '%s'", d.name),
				err,
			).WithContext("name", d.name).WithContext("path", d.interpreterPath))
		}
	}

	if issues != nil {
		return errors.NewValidationError("process paths check failed", issues).
			WithContext("issues", strconv.Itoa(len(multierr.Errors(issues))))
	}

	return nil
}

// CheckEnvironment verifies that each required variable has a non-empty value
// for every descriptor, either from its own environment or from the host
// environment it inherits. A nil lookup uses os.LookupEnv.
func CheckEnvironment(list *DescriptorList, required []string, lookup LookupEnvFunc) error {
	if list == nil {
		return errors.NewValidationError("descriptor list cannot be nil", nil)
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}

	var issues error
	for _, key := range required {
		if err := validateEnvironmentKey(key); err != nil {
			issues = multierr.Append(issues, err.WithContext("variable", key))
			continue
		}

		hostValue, _ := lookup(key)
		for _, d := range list.descriptors {
			if d.environment[key] != "" || (hostValue != "" && !hasKey(d.environment, key)) {
				continue
			}
			issues = multierr.Append(issues, errors.NewValidationError(
				fmt.Sprintf("required environment variable %s is not set for '%s'", key, d.name),
				nil,
			).WithContext("name", d.name).WithContext("variable", key))
		}
	}

	if issues != nil {
		return errors.NewValidationError("environment check failed", issues).
			WithContext("issues", strconv.Itoa(len(multierr.Errors(issues))))
	}

	return nil
}

func hasKey(environment map[string]string, key string) bool {
	_, ok := environment[key]
	return ok
}
