package config

import (
	"fmt"
)

// ValidationError represents a semantic problem in a loaded runner config.
type ValidationError struct {
	// Path locates the problem, e.g. "mysql(a).min_mpl"
	Path string

	// Message describes the validation error
	Message string
}

// Error returns the error message.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidateConfig checks that every DBSystem describes a runnable benchmark
// and returns a slice of validation errors. An empty slice indicates the
// configuration is valid.
//
// Load does not call ValidateConfig; a config can load successfully and
// still fail validation.
//
// Example:
//
//	errors := config.ValidateConfig(cfg)
//	if len(errors) > 0 {
//	    for _, err := range errors {
//	        log.Printf("Validation error: %s", err)
//	    }
//	}
func ValidateConfig(cfg *RunnerConfig) []ValidationError {
	var errors []ValidationError

	if cfg == nil || len(cfg.DBs) == 0 {
		return append(errors, ValidationError{
			Path:    "databases",
			Message: "at least one supported database is required",
		})
	}

	seen := make(map[string]bool, len(cfg.DBs))
	for _, db := range cfg.DBs {
		id := db.ID()
		if seen[id] {
			errors = append(errors, ValidationError{
				Path:    id,
				Message: "declared more than once; use a label to benchmark the same database twice",
			})
		}
		seen[id] = true

		errors = append(errors, validateOptions(id, db.Options)...)
	}

	return errors
}

func validateOptions(id string, o Options) []ValidationError {
	var errors []ValidationError
	add := func(key OptionKey, format string, args ...any) {
		errors = append(errors, ValidationError{
			Path:    fmt.Sprintf("%s.%s", id, key),
			Message: fmt.Sprintf(format, args...),
		})
	}

	if o.Trials < 1 {
		add(KeyTrials, "must be at least 1, got %d", o.Trials)
	}
	if o.MinMPL < 1 {
		add(KeyMinMPL, "must be at least 1, got %d", o.MinMPL)
	}
	if o.MaxMPL < o.MinMPL {
		add(KeyMaxMPL, "must not be less than min_mpl (%d), got %d", o.MinMPL, o.MaxMPL)
	}
	if o.IncMPL < 1 {
		add(KeyIncMPL, "must be at least 1, got %d", o.IncMPL)
	} else if _, ok := o.sweepSteps(); !ok && o.MaxMPL >= o.MinMPL {
		add(KeyIncMPL, "sweep from %d to %d step %d exceeds %d levels",
			o.MinMPL, o.MaxMPL, o.IncMPL, MaxSweepLevels)
	}
	if o.Output == "" {
		add(KeyOutput, "output format is required")
	}
	if o.Workload == "" {
		add(KeyWorkload, "workload path is required")
	}

	return errors
}
