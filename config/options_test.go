package config

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/ini.v1"
)

func newKey(t *testing.T, value string) *ini.Key {
	t.Helper()
	k, err := ini.Empty().Section("test").NewKey("k", value)
	require.NoError(t, err)
	return k
}

func TestBoolOption(t *testing.T) {
	coerce := BoolOption(func(o *Options) *bool { return &o.OutputPlots })

	for _, raw := range []string{"true", "True", "TrUe", "yes", "YES", "on", "oN", "1", " on "} {
		t.Run(raw, func(t *testing.T) {
			var o Options
			require.NoError(t, coerce(&o, newKey(t, raw)))
			assert.True(t, o.OutputPlots)
		})
	}

	for _, raw := range []string{"false", "FALSE", "no", "No", "off", "OfF", "0"} {
		t.Run(raw, func(t *testing.T) {
			o := Options{OutputPlots: true}
			require.NoError(t, coerce(&o, newKey(t, raw)))
			assert.False(t, o.OutputPlots)
		})
	}

	for _, raw := range []string{"maybe", "", "2", "t", "f", "y", "n", "enabled"} {
		t.Run("invalid "+raw, func(t *testing.T) {
			var o Options
			assert.Error(t, coerce(&o, newKey(t, raw)))
		})
	}
}

func TestIntOption(t *testing.T) {
	coerce := IntOption(func(o *Options) *int { return &o.Trials })

	tests := []struct {
		raw      string
		expected int
		wantErr  bool
	}{
		{raw: "5", expected: 5},
		{raw: "-3", expected: -3},
		{raw: "007", expected: 7},
		{raw: "0x10", wantErr: true},
		{raw: "1e3", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var o Options
			err := coerce(&o, newKey(t, tt.raw))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, o.Trials)
		})
	}
}

func TestTransformOption(t *testing.T) {
	var o Options
	require.NoError(t, TransformOption(func(o *Options) *string { return &o.Output }, strings.ToLower)(&o, newKey(t, "JSON")))
	assert.Equal(t, "json", o.Output)

	require.NoError(t, StringOption(func(o *Options) *string { return &o.Workload })(&o, newKey(t, "Workloads/A")))
	assert.Equal(t, "Workloads/A", o.Workload)
}

func TestDefaultSchema(t *testing.T) {
	s := DefaultSchema()
	require.Len(t, s.Keys, 7)
	for _, key := range s.Keys {
		assert.NotNil(t, s.Coercions[key], "key %s has a coercion", key)
	}

	s.Keys = s.Keys[:1]
	delete(s.Coercions, KeyTrials)
	assert.Len(t, DefaultSchema().Keys, 7, "default schema is not shared")
	assert.NotNil(t, DefaultSchema().Coercions[KeyTrials])
}

func sweep(from, to int) []int {
	var mpls []int
	for mpl := from; mpl <= to; mpl++ {
		mpls = append(mpls, mpl)
	}
	return mpls
}

func TestOptions_MPLs(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		expected []int
	}{
		{
			name:     "unit steps",
			opts:     Options{MinMPL: 1, MaxMPL: 4, IncMPL: 1},
			expected: []int{1, 2, 3, 4},
		},
		{
			name:     "step past max",
			opts:     Options{MinMPL: 1, MaxMPL: 10, IncMPL: 4},
			expected: []int{1, 5, 9},
		},
		{
			name:     "single level",
			opts:     Options{MinMPL: 8, MaxMPL: 8, IncMPL: 2},
			expected: []int{8},
		},
		{
			name:     "zero increment",
			opts:     Options{MinMPL: 1, MaxMPL: 4, IncMPL: 0},
			expected: nil,
		},
		{
			name:     "min above max",
			opts:     Options{MinMPL: 5, MaxMPL: 4, IncMPL: 1},
			expected: nil,
		},
		{
			name:     "next step overflows",
			opts:     Options{MinMPL: math.MaxInt - 1, MaxMPL: math.MaxInt, IncMPL: 2},
			expected: []int{math.MaxInt - 1},
		},
		{
			name:     "full int range",
			opts:     Options{MinMPL: math.MinInt, MaxMPL: math.MaxInt, IncMPL: math.MaxInt},
			expected: []int{math.MinInt, -1, math.MaxInt - 1},
		},
		{
			name:     "too many levels",
			opts:     Options{MinMPL: -math.MaxInt, MaxMPL: math.MaxInt, IncMPL: 1},
			expected: nil,
		},
		{
			name:     "limit",
			opts:     Options{MinMPL: 1, MaxMPL: MaxSweepLevels, IncMPL: 1},
			expected: sweep(1, MaxSweepLevels),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.opts.MPLs())
		})
	}
}
