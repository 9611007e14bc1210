package processdescriptor

// Summary provides a high-level overview of a descriptor list
type Summary struct {
	TotalApps      int                   `json:"total_apps"`
	WatchedApps    int                   `json:"watched_apps"`
	ExecutionModes map[ExecutionMode]int `json:"execution_modes"`
	Apps           []AppSummary          `json:"apps"`
	Error          string                `json:"error,omitempty"`
}

// AppSummary provides a summary of one descriptor
type AppSummary struct {
	Name            string        `json:"name"`
	ExecutablePath  string        `json:"executable_path"`
	InterpreterPath string        `json:"interpreter_path,omitempty"`
	ExecutionMode   ExecutionMode `json:"execution_mode"`
	WatchEnabled    bool          `json:"watch_enabled"`
	ArgumentCount   int           `json:"argument_count"`
	EnvironmentKeys int           `json:"environment_keys"`
}

// GetSummary returns a summary of the list for operational visibility
func GetSummary(list *DescriptorList) Summary {
	if list == nil {
		return Summary{Error: "descriptor list is nil"}
	}

	summary := Summary{
		ExecutionModes: make(map[ExecutionMode]int),
		Apps:           make([]AppSummary, 0, list.Len()),
	}

	for _, d := range list.descriptors {
		summary.Apps = append(summary.Apps, AppSummary{
			Name:            d.name,
			ExecutablePath:  d.executablePath,
			InterpreterPath: d.interpreterPath,
			ExecutionMode:   d.executionMode,
			WatchEnabled:    d.watchEnabled,
			ArgumentCount:   len(d.arguments),
			EnvironmentKeys: len(d.environment),
		})

		summary.ExecutionModes[d.executionMode]++
		if d.watchEnabled {
			summary.WatchedApps++
		}
	}

	summary.TotalApps = len(summary.Apps)
	return summary
}
