package processdescriptor

import (
	"sort"
	"strings"
)

// Argv returns the command line a supervisor should execute: the
// interpreter when one is set, then the executable, then the arguments.
func (d ProcessDescriptor) Argv() []string {
	argv := make([]string, 0, len(d.arguments)+2)
	if d.interpreterPath != "" {
		argv = append(argv, d.interpreterPath)
	}
	argv = append(argv, d.executablePath)
	return append(argv, d.arguments...)
}

// Environ merges the descriptor environment over base, which uses the
// KEY=VALUE form of os.Environ. Overridden variables keep their position;
// new ones are appended sorted by name.
func (d ProcessDescriptor) Environ(base []string) []string {
	result := make([]string, 0, len(base)+len(d.environment))
	applied := make(map[string]bool, len(d.environment))

	for _, entry := range base {
		key := entry
		if i := strings.IndexByte(entry, '='); i >= 0 {
			key = entry[:i]
		}

		value, ok := d.environment[key]
		if !ok {
			result = append(result, entry)
			continue
		}
		if applied[key] {
			continue // Duplicate in base, already overridden
		}
		result = append(result, key+"="+value)
		applied[key] = true
	}

	added := make([]string, 0, len(d.environment))
	for key := range d.environment {
		if !applied[key] {
			added = append(added, key)
		}
	}
	sort.Strings(added)

	for _, key := range added {
		result = append(result, key+"="+d.environment[key])
	}

	return result
}
