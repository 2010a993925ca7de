package config

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOptions() Options {
	return Options{
		Trials:   3,
		MinMPL:   1,
		MaxMPL:   8,
		IncMPL:   1,
		Output:   "csv",
		Workload: "workloads/workloada",
	}
}

func TestValidateConfig_Valid(t *testing.T) {
	cfg := &RunnerConfig{DBs: []DBSystem{
		NewDBSystem("mysql", validOptions(), "a", DefaultTableName),
		NewDBSystem("mysql", validOptions(), "b", DefaultTableName),
		NewDBSystem("postgres", validOptions(), "", DefaultTableName),
	}}

	assert.Empty(t, ValidateConfig(cfg))
}

func TestValidateConfig_NoDatabases(t *testing.T) {
	errs := ValidateConfig(&RunnerConfig{})
	require.Len(t, errs, 1)
	assert.Equal(t, "databases", errs[0].Path)

	assert.Len(t, ValidateConfig(nil), 1)
}

func TestValidateConfig_DuplicateID(t *testing.T) {
	cfg := &RunnerConfig{DBs: []DBSystem{
		NewDBSystem("redis", validOptions(), "", DefaultTableName),
		NewDBSystem("redis", validOptions(), "", DefaultTableName),
	}}

	errs := ValidateConfig(cfg)
	require.Len(t, errs, 1)
	assert.Equal(t, "redis", errs[0].Path)
	assert.Contains(t, errs[0].Error(), "label")
}

func TestValidateConfig_Options(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(o *Options)
		expected []string
	}{
		{
			name:     "zero trials",
			mutate:   func(o *Options) { o.Trials = 0 },
			expected: []string{"mysql(x).trials"},
		},
		{
			name:     "max below min",
			mutate:   func(o *Options) { o.MinMPL, o.MaxMPL = 4, 2 },
			expected: []string{"mysql(x).max_mpl"},
		},
		{
			name:     "non positive sweep",
			mutate:   func(o *Options) { o.MinMPL, o.IncMPL = 0, 0 },
			expected: []string{"mysql(x).min_mpl", "mysql(x).inc_mpl"},
		},
		{
			name:     "empty strings",
			mutate:   func(o *Options) { o.Output, o.Workload = "", "" },
			expected: []string{"mysql(x).output", "mysql(x).workload"},
		},
		{
			name:     "sweep too large",
			mutate:   func(o *Options) { o.MinMPL, o.MaxMPL, o.IncMPL = 1, math.MaxInt, 1 },
			expected: []string{"mysql(x).inc_mpl"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := validOptions()
			tt.mutate(&opts)
			cfg := &RunnerConfig{DBs: []DBSystem{NewDBSystem("mysql", opts, "x", DefaultTableName)}}

			var paths []string
			for _, err := range ValidateConfig(cfg) {
				paths = append(paths, err.Path)
			}
			assert.Equal(t, tt.expected, paths)
		})
	}
}

func TestValidateConfig_LoadedFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[mysql(a), postgres]\n"+baseOptions))
	require.NoError(t, err)
	assert.Empty(t, ValidateConfig(cfg))
}
